package course

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Published returns the browsable catalog.
func (svc *Service) Published() ([]Course, error) {
	return svc.filter(func(c Course) bool { return c.Status == StatusPublished })
}

// ByInstructor returns every course owned by the given instructor, any status.
func (svc *Service) ByInstructor(instructorID string) ([]Course, error) {
	return svc.filter(func(c Course) bool { return c.InstructorID == instructorID })
}

// PendingApproval returns courses awaiting an admin decision.
func (svc *Service) PendingApproval() ([]Course, error) {
	return svc.filter(func(c Course) bool { return c.Status == StatusPending })
}

func (svc *Service) Get(id string) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

// Lessons returns a course's lessons in their defined order.
func (svc *Service) Lessons(courseID string) ([]Lesson, error) {
	return svc.repo.QueryLessonsForCourse(courseID)
}

func (svc *Service) filter(keep func(Course) bool) ([]Course, error) {
	courses, err := svc.repo.QueryAllCourses()
	if err != nil {
		return nil, err
	}
	filtered := make([]Course, 0, len(courses))
	for _, c := range courses {
		if keep(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}
