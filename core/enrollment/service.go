package enrollment

import (
	"github.com/pkg/errors"

	"github.com/eduflowhq/eduflow/core/course"
)

type Service struct {
	repo    Repository
	courses course.Repository
}

func NewService(repo Repository, courses course.Repository) *Service {
	return &Service{repo: repo, courses: courses}
}

// Learning returns the given student's enrollments joined with their courses.
// Enrollments pointing at unknown courses are skipped.
func (svc *Service) Learning(userID string) ([]CourseProgress, error) {
	enrs, err := svc.repo.QueryEnrollmentsForUser(userID)
	if err != nil {
		return nil, errors.Wrap(err, "querying enrollments")
	}

	learning := make([]CourseProgress, 0, len(enrs))
	for _, enr := range enrs {
		crs, err := svc.courses.GetCourseByID(enr.CourseID)
		if err != nil {
			if errors.Is(err, course.ErrNotFound) {
				continue
			}
			return nil, errors.Wrap(err, "getting enrolled course")
		}
		learning = append(learning, CourseProgress{
			Course:     crs,
			Progress:   enr.Progress,
			EnrolledAt: enr.EnrolledAt,
		})
	}
	return learning, nil
}
