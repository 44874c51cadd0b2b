package assignment

import "errors"

// Submission statuses
const (
	StatusSubmitted = "submitted"
	StatusGraded    = "graded"
	StatusLate      = "late"
)

var ErrNotFound = errors.New("assignment not found")

type (
	Assignment struct {
		ID          string `json:"id"`
		CourseID    string `json:"courseId"`
		Title       string `json:"title"`
		Description string `json:"description"`
		DueDate     string `json:"dueDate"`
		MaxScore    int    `json:"maxScore"`
	}

	Submission struct {
		ID           string `json:"id"`
		AssignmentID string `json:"assignmentId"`
		StudentID    string `json:"studentId"`
		StudentName  string `json:"studentName"`
		Status       string `json:"status"`
		Grade        int    `json:"grade,omitempty"`
		Feedback     string `json:"feedback,omitempty"`
		SubmittedAt  string `json:"submittedAt"`
	}

	// Grade is a graded submission joined with its assignment, as shown on the
	// student grades screen.
	Grade struct {
		Assignment Assignment `json:"assignment"`
		Grade      int        `json:"grade"`
		Feedback   string     `json:"feedback,omitempty"`
	}

	Repository interface {
		QueryAssignmentsForCourse(courseID string) ([]Assignment, error)
		GetAssignmentByID(id string) (Assignment, error)
		QuerySubmissionsForAssignment(assignmentID string) ([]Submission, error)
		QuerySubmissionsForStudent(studentID string) ([]Submission, error)
	}
)
