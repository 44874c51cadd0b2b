package announcement

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) ForCourse(courseID string) ([]Announcement, error) {
	return svc.filter(func(a Announcement) bool { return a.CourseID == courseID })
}

func (svc *Service) ByInstructor(instructorID string) ([]Announcement, error) {
	return svc.filter(func(a Announcement) bool { return a.InstructorID == instructorID })
}

func (svc *Service) filter(keep func(Announcement) bool) ([]Announcement, error) {
	anns, err := svc.repo.QueryAllAnnouncements()
	if err != nil {
		return nil, err
	}
	filtered := make([]Announcement, 0, len(anns))
	for _, a := range anns {
		if keep(a) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}
