package notification

import "errors"

// Types
const (
	TypeGrade        = "grade"
	TypeAnnouncement = "announcement"
	TypeEnrollment   = "enrollment"
	TypeApproval     = "approval"
	TypeGeneral      = "general"
)

var ErrNotFound = errors.New("notification not found")

// Notification is a per-user message shown in the notification tray.
// Read state lives in the session only; it is never written back.
type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

// Repository is read-only access to the fixture notification pool.
type Repository interface {
	// ListNotificationsForUser returns all notifications owned by the given user id.
	ListNotificationsForUser(userID string) ([]Notification, error)
}
