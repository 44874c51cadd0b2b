package assignment_test

import (
	"testing"

	"github.com/eduflowhq/eduflow/core/assignment"
	"github.com/eduflowhq/eduflow/storage/fixture"
)

func newTestService(t *testing.T) *assignment.Service {
	t.Helper()
	db, err := fixture.Open()
	if err != nil {
		t.Fatalf("fixture.Open() failed: %v", err)
	}
	return assignment.NewService(fixture.NewAssignmentRepository(db))
}

func TestService_ForCourse(t *testing.T) {
	svc := newTestService(t)

	asgs, err := svc.ForCourse("c1")
	if err != nil {
		t.Fatalf("ForCourse() failed: %v", err)
	}
	if len(asgs) != 2 {
		t.Errorf("len(ForCourse()) = %d, want 2", len(asgs))
	}

	asgs, err = svc.ForCourse("c3")
	if err != nil {
		t.Fatalf("ForCourse() failed: %v", err)
	}
	if len(asgs) != 0 {
		t.Errorf("len(ForCourse()) = %d, want 0", len(asgs))
	}
}

func TestService_Get(t *testing.T) {
	svc := newTestService(t)

	asg, err := svc.Get("a1")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if asg.Title != "Build a Linear Regression Model" {
		t.Errorf("Get().Title = %s", asg.Title)
	}

	if _, err := svc.Get("nope"); err != assignment.ErrNotFound {
		t.Errorf("Get() error = %v, want %v", err, assignment.ErrNotFound)
	}
}

func TestService_Submissions(t *testing.T) {
	svc := newTestService(t)

	subs, err := svc.Submissions("a1")
	if err != nil {
		t.Fatalf("Submissions() failed: %v", err)
	}
	if len(subs) != 3 {
		t.Errorf("len(Submissions()) = %d, want 3", len(subs))
	}
}

func TestService_Grades(t *testing.T) {
	svc := newTestService(t)

	// u3 submitted s1 (graded) and s3 (pending); only the graded one counts
	grades, err := svc.Grades("u3")
	if err != nil {
		t.Fatalf("Grades() failed: %v", err)
	}
	if len(grades) != 1 {
		t.Fatalf("len(Grades()) = %d, want 1", len(grades))
	}
	if grades[0].Assignment.ID != "a1" || grades[0].Grade != 92 {
		t.Errorf("Grades()[0] = %v, want a1 at 92", grades[0])
	}

	// late submissions are not grades either
	grades, err = svc.Grades("u8")
	if err != nil {
		t.Fatalf("Grades() failed: %v", err)
	}
	if len(grades) != 0 {
		t.Errorf("len(Grades()) = %d, want 0", len(grades))
	}
}
