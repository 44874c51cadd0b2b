package enrollment

import "github.com/eduflowhq/eduflow/core/course"

type (
	Enrollment struct {
		ID         string `json:"id"`
		UserID     string `json:"userId"`
		CourseID   string `json:"courseId"`
		Progress   int    `json:"progress"` // percent, 0-100
		EnrolledAt string `json:"enrolledAt"`
	}

	// CourseProgress is an enrollment joined with its course, as shown on the
	// "my learning" screen.
	CourseProgress struct {
		Course     course.Course `json:"course"`
		Progress   int           `json:"progress"`
		EnrolledAt string        `json:"enrolledAt"`
	}

	Repository interface {
		QueryEnrollmentsForUser(userID string) ([]Enrollment, error)
	}
)
