package assignment

import "github.com/pkg/errors"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) ForCourse(courseID string) ([]Assignment, error) {
	return svc.repo.QueryAssignmentsForCourse(courseID)
}

func (svc *Service) Get(id string) (Assignment, error) {
	return svc.repo.GetAssignmentByID(id)
}

func (svc *Service) Submissions(assignmentID string) ([]Submission, error) {
	return svc.repo.QuerySubmissionsForAssignment(assignmentID)
}

// Grades returns the given student's graded submissions joined with their
// assignments. Pending and late submissions are left out.
func (svc *Service) Grades(studentID string) ([]Grade, error) {
	subs, err := svc.repo.QuerySubmissionsForStudent(studentID)
	if err != nil {
		return nil, errors.Wrap(err, "querying submissions")
	}

	grades := make([]Grade, 0, len(subs))
	for _, sub := range subs {
		if sub.Status != StatusGraded {
			continue
		}
		asg, err := svc.repo.GetAssignmentByID(sub.AssignmentID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, errors.Wrap(err, "getting graded assignment")
		}
		grades = append(grades, Grade{
			Assignment: asg,
			Grade:      sub.Grade,
			Feedback:   sub.Feedback,
		})
	}
	return grades, nil
}
