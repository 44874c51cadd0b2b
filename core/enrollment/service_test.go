package enrollment_test

import (
	"testing"

	"github.com/eduflowhq/eduflow/core/enrollment"
	"github.com/eduflowhq/eduflow/storage/fixture"
)

func newTestService(t *testing.T) *enrollment.Service {
	t.Helper()
	db, err := fixture.Open()
	if err != nil {
		t.Fatalf("fixture.Open() failed: %v", err)
	}
	return enrollment.NewService(fixture.NewEnrollmentRepository(db), fixture.NewCourseRepository(db))
}

func TestService_Learning(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name      string
		userID    string
		wantCount int
	}{
		{name: "student with enrollments", userID: "u3", wantCount: 3},
		{name: "student with two", userID: "u5", wantCount: 2},
		{name: "no enrollments", userID: "u1", wantCount: 0},
		{name: "unknown user", userID: "nope", wantCount: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			learning, err := svc.Learning(tt.userID)
			if err != nil {
				t.Fatalf("Learning() failed: %v", err)
			}
			if len(learning) != tt.wantCount {
				t.Errorf("len(Learning()) = %d, want %d", len(learning), tt.wantCount)
			}
		})
	}
}

func TestService_Learning_joinsCourse(t *testing.T) {
	svc := newTestService(t)

	learning, err := svc.Learning("u3")
	if err != nil {
		t.Fatalf("Learning() failed: %v", err)
	}
	byCourse := make(map[string]int, len(learning))
	for _, cp := range learning {
		if cp.Course.Title == "" {
			t.Errorf("Learning() course %s missing its catalog row", cp.Course.ID)
		}
		byCourse[cp.Course.ID] = cp.Progress
	}
	if byCourse["c1"] != 42 || byCourse["c2"] != 67 || byCourse["c3"] != 15 {
		t.Errorf("Learning() progress = %v", byCourse)
	}
}
