// Package fixture is the read-only seed dataset standing in for a real
// backend: demo users, the course catalog and everything hanging off it.
// Repositories here satisfy the domain repository interfaces so an actual
// database can replace them without touching the services.
package fixture

import (
	"sync"

	"github.com/eduflowhq/eduflow/core/analytics"
	"github.com/eduflowhq/eduflow/core/announcement"
	"github.com/eduflowhq/eduflow/core/assignment"
	"github.com/eduflowhq/eduflow/core/course"
	"github.com/eduflowhq/eduflow/core/enrollment"
	"github.com/eduflowhq/eduflow/core/notification"
	"github.com/eduflowhq/eduflow/core/user"
)

type (
	DB struct {
		user         *userTable
		notification *notificationTable
		course       *courseTable
		enrollment   *enrollmentTable
		assignment   *assignmentTable
		announcement *announcementTable
		analytics    *analyticsTable
	}

	userTable struct {
		sync.RWMutex
		rows []user.User
	}

	notificationTable struct {
		sync.RWMutex
		rows []notification.Notification
	}

	courseTable struct {
		sync.RWMutex
		rows    []course.Course
		lessons []course.Lesson
	}

	enrollmentTable struct {
		sync.RWMutex
		rows []enrollment.Enrollment
	}

	assignmentTable struct {
		sync.RWMutex
		rows        []assignment.Assignment
		submissions []assignment.Submission
	}

	announcementTable struct {
		sync.RWMutex
		rows []announcement.Announcement
	}

	analyticsTable struct {
		sync.RWMutex
		stats analytics.Stats
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:         &userTable{rows: demoUsers},
		notification: &notificationTable{rows: demoNotifications},
		course:       &courseTable{rows: demoCourses, lessons: demoLessons},
		enrollment:   &enrollmentTable{rows: demoEnrollments},
		assignment:   &assignmentTable{rows: demoAssignments, submissions: demoSubmissions},
		announcement: &announcementTable{rows: demoAnnouncements},
		analytics:    &analyticsTable{stats: demoAnalytics},
	}
	return db, nil
}
