package fixture

import (
	"github.com/eduflowhq/eduflow/core/analytics"
	"github.com/eduflowhq/eduflow/core/announcement"
	"github.com/eduflowhq/eduflow/core/assignment"
	"github.com/eduflowhq/eduflow/core/course"
	"github.com/eduflowhq/eduflow/core/enrollment"
	"github.com/eduflowhq/eduflow/core/notification"
	"github.com/eduflowhq/eduflow/core/user"
)

// Seed users have no stored password: any password signs them in.
var demoUsers = []user.User{
	{ID: "u1", Email: "admin@edumanage.com", Name: "Sarah Chen", Role: user.RoleAdmin, CreatedAt: "2024-01-15"},
	{ID: "u2", Email: "instructor@edumanage.com", Name: "Dr. James Wilson", Role: user.RoleInstructor, CreatedAt: "2024-02-01"},
	{ID: "u3", Email: "student@edumanage.com", Name: "Alex Rivera", Role: user.RoleStudent, CreatedAt: "2024-03-10"},
	{ID: "u4", Email: "creator@edumanage.com", Name: "Maya Patel", Role: user.RoleContentCreator, CreatedAt: "2024-02-20"},
	{ID: "u5", Email: "jane@student.com", Name: "Jane Cooper", Role: user.RoleStudent, CreatedAt: "2024-04-01"},
	{ID: "u6", Email: "bob@instructor.com", Name: "Prof. Bob Martinez", Role: user.RoleInstructor, CreatedAt: "2024-01-20"},
	{ID: "u7", Email: "emma@student.com", Name: "Emma Thompson", Role: user.RoleStudent, CreatedAt: "2024-05-15"},
	{ID: "u8", Email: "liam@student.com", Name: "Liam O'Brien", Role: user.RoleStudent, CreatedAt: "2024-06-01"},
}

var demoCourses = []course.Course{
	{
		ID: "c1", Title: "Introduction to Machine Learning",
		Description:    "Learn the fundamentals of ML with hands-on projects covering supervised and unsupervised learning, neural networks, and real-world applications.",
		InstructorID:   "u2", InstructorName: "Dr. James Wilson",
		Status:         course.StatusPublished, Category: "Computer Science", Tags: []string{"AI", "Python", "Data Science"},
		EnrollmentCount: 234, LessonCount: 24, CreatedAt: "2024-03-01", UpdatedAt: "2024-06-15",
	},
	{
		ID: "c2", Title: "Advanced React Patterns",
		Description:    "Master advanced React patterns including compound components, render props, hooks composition, and performance optimization techniques.",
		InstructorID:   "u2", InstructorName: "Dr. James Wilson",
		Status:         course.StatusPublished, Category: "Web Development", Tags: []string{"React", "JavaScript", "Frontend"},
		EnrollmentCount: 189, LessonCount: 18, CreatedAt: "2024-04-10", UpdatedAt: "2024-07-20",
	},
	{
		ID: "c3", Title: "Data Structures & Algorithms",
		Description:    "Comprehensive DSA course covering arrays, trees, graphs, dynamic programming, and competitive programming techniques.",
		InstructorID:   "u6", InstructorName: "Prof. Bob Martinez",
		Status:         course.StatusPublished, Category: "Computer Science", Tags: []string{"DSA", "Algorithms", "Programming"},
		EnrollmentCount: 312, LessonCount: 32, CreatedAt: "2024-02-15", UpdatedAt: "2024-05-10",
	},
	{
		ID: "c4", Title: "UX Design Fundamentals",
		Description:    "Learn user experience design principles, wireframing, prototyping, and user research methodologies.",
		InstructorID:   "u6", InstructorName: "Prof. Bob Martinez",
		Status:         course.StatusPending, Category: "Design", Tags: []string{"UX", "UI", "Design"},
		EnrollmentCount: 0, LessonCount: 15, CreatedAt: "2024-07-01", UpdatedAt: "2024-07-01",
	},
	{
		ID: "c5", Title: "Cloud Architecture with AWS",
		Description:    "Design and deploy scalable cloud solutions using AWS services including EC2, S3, Lambda, and more.",
		InstructorID:   "u2", InstructorName: "Dr. James Wilson",
		Status:         course.StatusDraft, Category: "Cloud Computing", Tags: []string{"AWS", "Cloud", "DevOps"},
		EnrollmentCount: 0, LessonCount: 8, CreatedAt: "2024-08-01", UpdatedAt: "2024-08-01",
	},
	{
		ID: "c6", Title: "Digital Marketing Mastery",
		Description:    "Complete digital marketing course covering SEO, social media marketing, email campaigns, and analytics.",
		InstructorID:   "u6", InstructorName: "Prof. Bob Martinez",
		Status:         course.StatusPublished, Category: "Marketing", Tags: []string{"SEO", "Marketing", "Social Media"},
		EnrollmentCount: 156, LessonCount: 20, CreatedAt: "2024-03-20", UpdatedAt: "2024-06-25",
	},
	{
		ID: "c7", Title: "Python for Data Analysis",
		Description:    "Master Python programming for data analysis, visualization, and statistical computing with pandas and matplotlib.",
		InstructorID:   "u2", InstructorName: "Dr. James Wilson",
		Status:         course.StatusApproved, Category: "Data Science", Tags: []string{"Python", "Data Analysis", "Pandas"},
		EnrollmentCount: 98, LessonCount: 16, CreatedAt: "2024-05-01", UpdatedAt: "2024-07-10",
	},
}

var demoLessons = []course.Lesson{
	{ID: "l1", CourseID: "c1", Title: "What is Machine Learning?", ContentType: course.ContentVideo, Duration: "15:30", Order: 1, Completed: true},
	{ID: "l2", CourseID: "c1", Title: "Supervised vs Unsupervised Learning", ContentType: course.ContentVideo, Duration: "22:45", Order: 2, Completed: true},
	{ID: "l3", CourseID: "c1", Title: "Linear Regression Deep Dive", ContentType: course.ContentVideo, Duration: "30:00", Order: 3},
	{ID: "l4", CourseID: "c1", Title: "Python for ML - Setup Guide", ContentType: course.ContentPDF, Order: 4},
	{ID: "l5", CourseID: "c2", Title: "Compound Components Pattern", ContentType: course.ContentVideo, Duration: "25:00", Order: 1, Completed: true},
	{ID: "l6", CourseID: "c2", Title: "Custom Hooks Composition", ContentType: course.ContentVideo, Duration: "20:15", Order: 2},
}

var demoEnrollments = []enrollment.Enrollment{
	{ID: "e1", UserID: "u3", CourseID: "c1", Progress: 42, EnrolledAt: "2024-04-01"},
	{ID: "e2", UserID: "u3", CourseID: "c2", Progress: 67, EnrolledAt: "2024-05-15"},
	{ID: "e3", UserID: "u3", CourseID: "c3", Progress: 15, EnrolledAt: "2024-06-01"},
	{ID: "e4", UserID: "u5", CourseID: "c1", Progress: 88, EnrolledAt: "2024-03-20"},
	{ID: "e5", UserID: "u7", CourseID: "c2", Progress: 33, EnrolledAt: "2024-06-10"},
	{ID: "e6", UserID: "u8", CourseID: "c1", Progress: 55, EnrolledAt: "2024-05-01"},
	{ID: "e7", UserID: "u5", CourseID: "c6", Progress: 72, EnrolledAt: "2024-04-15"},
}

var demoAssignments = []assignment.Assignment{
	{
		ID: "a1", CourseID: "c1", Title: "Build a Linear Regression Model",
		Description: "Implement linear regression from scratch using Python and NumPy.",
		DueDate:     "2025-03-15", MaxScore: 100,
	},
	{
		ID: "a2", CourseID: "c2", Title: "Create a Compound Component Library",
		Description: "Build a reusable compound component following the patterns taught.",
		DueDate:     "2025-03-20", MaxScore: 100,
	},
	{
		ID: "a3", CourseID: "c1", Title: "Classification Project",
		Description: "Build a classification model using a real-world dataset.",
		DueDate:     "2025-04-01", MaxScore: 100,
	},
}

var demoSubmissions = []assignment.Submission{
	{
		ID: "s1", AssignmentID: "a1", StudentID: "u3", StudentName: "Alex Rivera",
		Status: assignment.StatusGraded, Grade: 92,
		Feedback:    "Excellent implementation! Clean code with good documentation.",
		SubmittedAt: "2025-03-12",
	},
	{ID: "s2", AssignmentID: "a1", StudentID: "u5", StudentName: "Jane Cooper", Status: assignment.StatusSubmitted, SubmittedAt: "2025-03-14"},
	{ID: "s3", AssignmentID: "a2", StudentID: "u3", StudentName: "Alex Rivera", Status: assignment.StatusSubmitted, SubmittedAt: "2025-03-18"},
	{ID: "s4", AssignmentID: "a1", StudentID: "u8", StudentName: "Liam O'Brien", Status: assignment.StatusLate, SubmittedAt: "2025-03-17"},
}

var demoNotifications = []notification.Notification{
	{
		ID: "n1", UserID: "u3", Title: "Assignment Graded",
		Message: `Your submission for "Build a Linear Regression Model" has been graded. Score: 92/100`,
		Type:    notification.TypeGrade, CreatedAt: "2025-03-13",
	},
	{
		ID: "n2", UserID: "u3", Title: "New Announcement",
		Message: "Dr. James Wilson posted a new announcement in Machine Learning.",
		Type:    notification.TypeAnnouncement, CreatedAt: "2025-03-10",
	},
	{
		ID: "n3", UserID: "u3", Title: "Enrollment Confirmed",
		Message: "You have been enrolled in Data Structures & Algorithms.",
		Type:    notification.TypeEnrollment, Read: true, CreatedAt: "2025-06-01",
	},
	{
		ID: "n4", UserID: "u1", Title: "Course Pending Approval",
		Message: "UX Design Fundamentals is awaiting your approval.",
		Type:    notification.TypeApproval, CreatedAt: "2025-07-01",
	},
	{
		ID: "n5", UserID: "u2", Title: "New Submission",
		Message: `Jane Cooper submitted "Build a Linear Regression Model".`,
		Type:    notification.TypeGeneral, CreatedAt: "2025-03-14",
	},
}

var demoAnnouncements = []announcement.Announcement{
	{
		ID: "ann1", CourseID: "c1", InstructorID: "u2", InstructorName: "Dr. James Wilson",
		Title:   "Mid-term Project Guidelines",
		Content: "Please review the updated mid-term project guidelines. The deadline has been extended by one week.",
		CreatedAt: "2025-03-10",
	},
	{
		ID: "ann2", CourseID: "c2", InstructorID: "u2", InstructorName: "Dr. James Wilson",
		Title:   "Live Q&A Session",
		Content: "Join us for a live Q&A session this Friday at 3 PM EST. We will cover compound components in depth.",
		CreatedAt: "2025-03-08",
	},
}

var demoAnalytics = analytics.Stats{
	TotalUsers:       1247,
	TotalCourses:     48,
	TotalEnrollments: 3892,
	ActiveStudents:   876,
	CompletionRate:   68,
	Revenue:          124500,
	MonthlyEnrollments: []analytics.MonthCount{
		{Month: "Jan", Count: 245}, {Month: "Feb", Count: 312}, {Month: "Mar", Count: 398},
		{Month: "Apr", Count: 356}, {Month: "May", Count: 421}, {Month: "Jun", Count: 489},
		{Month: "Jul", Count: 534}, {Month: "Aug", Count: 478},
	},
	CoursesByCategory: []analytics.CategoryCount{
		{Category: "Computer Science", Count: 15}, {Category: "Web Development", Count: 12},
		{Category: "Design", Count: 8}, {Category: "Marketing", Count: 6},
		{Category: "Cloud Computing", Count: 4}, {Category: "Data Science", Count: 3},
	},
	UserGrowth: []analytics.MonthCount{
		{Month: "Jan", Count: 890}, {Month: "Feb", Count: 945}, {Month: "Mar", Count: 1020},
		{Month: "Apr", Count: 1078}, {Month: "May", Count: 1134}, {Month: "Jun", Count: 1189},
		{Month: "Jul", Count: 1223}, {Month: "Aug", Count: 1247},
	},
}
