package course

import "errors"

// Statuses
const (
	StatusDraft     = "draft"
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusPublished = "published"
)

// Lesson content types
const (
	ContentVideo = "video"
	ContentPDF   = "pdf"
)

var ErrNotFound = errors.New("course not found")

type (
	Course struct {
		ID              string   `json:"id"`
		Title           string   `json:"title"`
		Description     string   `json:"description"`
		InstructorID    string   `json:"instructorId"`
		InstructorName  string   `json:"instructorName"`
		Status          string   `json:"status"`
		Category        string   `json:"category"`
		Tags            []string `json:"tags"`
		EnrollmentCount int      `json:"enrollmentCount"`
		LessonCount     int      `json:"lessonCount"`
		CreatedAt       string   `json:"createdAt"`
		UpdatedAt       string   `json:"updatedAt"`
	}

	Lesson struct {
		ID          string `json:"id"`
		CourseID    string `json:"courseId"`
		Title       string `json:"title"`
		ContentType string `json:"contentType"`
		Duration    string `json:"duration,omitempty"`
		Order       int    `json:"order"`
		Completed   bool   `json:"completed"`
	}

	Repository interface {
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id string) (Course, error)
		QueryLessonsForCourse(courseID string) ([]Lesson, error)
	}
)
