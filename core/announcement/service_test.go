package announcement_test

import (
	"testing"

	"github.com/eduflowhq/eduflow/core/announcement"
	"github.com/eduflowhq/eduflow/storage/fixture"
)

func newTestService(t *testing.T) *announcement.Service {
	t.Helper()
	db, err := fixture.Open()
	if err != nil {
		t.Fatalf("fixture.Open() failed: %v", err)
	}
	return announcement.NewService(fixture.NewAnnouncementRepository(db))
}

func TestService_ForCourse(t *testing.T) {
	svc := newTestService(t)

	anns, err := svc.ForCourse("c1")
	if err != nil {
		t.Fatalf("ForCourse() failed: %v", err)
	}
	if len(anns) != 1 || anns[0].ID != "ann1" {
		t.Errorf("ForCourse() = %v, want [ann1]", anns)
	}

	anns, err = svc.ForCourse("c3")
	if err != nil {
		t.Fatalf("ForCourse() failed: %v", err)
	}
	if len(anns) != 0 {
		t.Errorf("len(ForCourse()) = %d, want 0", len(anns))
	}
}

func TestService_ByInstructor(t *testing.T) {
	svc := newTestService(t)

	anns, err := svc.ByInstructor("u2")
	if err != nil {
		t.Fatalf("ByInstructor() failed: %v", err)
	}
	if len(anns) != 2 {
		t.Errorf("len(ByInstructor()) = %d, want 2", len(anns))
	}
}
