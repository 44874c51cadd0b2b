package course_test

import (
	"testing"

	"github.com/eduflowhq/eduflow/core/course"
	"github.com/eduflowhq/eduflow/storage/fixture"
)

func newTestService(t *testing.T) *course.Service {
	t.Helper()
	db, err := fixture.Open()
	if err != nil {
		t.Fatalf("fixture.Open() failed: %v", err)
	}
	return course.NewService(fixture.NewCourseRepository(db))
}

func courseIDs(courses []course.Course) []string {
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestService_Published(t *testing.T) {
	svc := newTestService(t)

	courses, err := svc.Published()
	if err != nil {
		t.Fatalf("Published() failed: %v", err)
	}
	want := []string{"c1", "c2", "c3", "c6"}
	if got := courseIDs(courses); len(got) != len(want) {
		t.Fatalf("Published() = %v, want %v", got, want)
	}
	for _, c := range courses {
		if c.Status != course.StatusPublished {
			t.Errorf("Published() returned %s with status %s", c.ID, c.Status)
		}
	}
}

func TestService_ByInstructor(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name         string
		instructorID string
		wantCount    int
	}{
		{name: "instructor with drafts", instructorID: "u2", wantCount: 4},
		{name: "instructor with pending", instructorID: "u6", wantCount: 3},
		{name: "not an instructor", instructorID: "u3", wantCount: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courses, err := svc.ByInstructor(tt.instructorID)
			if err != nil {
				t.Fatalf("ByInstructor() failed: %v", err)
			}
			if len(courses) != tt.wantCount {
				t.Errorf("ByInstructor() = %v, want %d courses", courseIDs(courses), tt.wantCount)
			}
			for _, c := range courses {
				if c.InstructorID != tt.instructorID {
					t.Errorf("ByInstructor() returned %s owned by %s", c.ID, c.InstructorID)
				}
			}
		})
	}
}

func TestService_PendingApproval(t *testing.T) {
	svc := newTestService(t)

	courses, err := svc.PendingApproval()
	if err != nil {
		t.Fatalf("PendingApproval() failed: %v", err)
	}
	if len(courses) != 1 || courses[0].ID != "c4" {
		t.Errorf("PendingApproval() = %v, want [c4]", courseIDs(courses))
	}
}

func TestService_Get(t *testing.T) {
	svc := newTestService(t)

	crs, err := svc.Get("c1")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if crs.Title != "Introduction to Machine Learning" {
		t.Errorf("Get().Title = %s", crs.Title)
	}

	if _, err := svc.Get("nope"); err != course.ErrNotFound {
		t.Errorf("Get() error = %v, want %v", err, course.ErrNotFound)
	}
}

func TestService_Lessons(t *testing.T) {
	svc := newTestService(t)

	lessons, err := svc.Lessons("c1")
	if err != nil {
		t.Fatalf("Lessons() failed: %v", err)
	}
	if len(lessons) != 4 {
		t.Fatalf("len(Lessons()) = %d, want 4", len(lessons))
	}
	for i, l := range lessons {
		if l.Order != i+1 {
			t.Errorf("Lessons()[%d].Order = %d, want %d", i, l.Order, i+1)
		}
	}

	lessons, err = svc.Lessons("c7")
	if err != nil {
		t.Fatalf("Lessons() failed: %v", err)
	}
	if len(lessons) != 0 {
		t.Errorf("len(Lessons()) = %d, want 0", len(lessons))
	}
}
