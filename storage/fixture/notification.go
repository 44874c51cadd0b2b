package fixture

import "github.com/eduflowhq/eduflow/core/notification"

type notificationRepository struct {
	db *notificationTable
}

var _ notification.Repository = (*notificationRepository)(nil)

func NewNotificationRepository(db *DB) notification.Repository {
	return &notificationRepository{db: db.notification}
}

func (repo *notificationRepository) ListNotificationsForUser(userID string) ([]notification.Notification, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	notifs := make([]notification.Notification, 0, len(repo.db.rows))
	for _, n := range repo.db.rows {
		if n.UserID == userID {
			notifs = append(notifs, n)
		}
	}
	return notifs, nil
}
