package announcement

type (
	Announcement struct {
		ID             string `json:"id"`
		CourseID       string `json:"courseId"`
		InstructorID   string `json:"instructorId"`
		InstructorName string `json:"instructorName"`
		Title          string `json:"title"`
		Content        string `json:"content"`
		CreatedAt      string `json:"createdAt"`
	}

	Repository interface {
		QueryAllAnnouncements() ([]Announcement, error)
	}
)
