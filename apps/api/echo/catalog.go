package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/eduflowhq/eduflow/core/analytics"
	"github.com/eduflowhq/eduflow/core/announcement"
	"github.com/eduflowhq/eduflow/core/assignment"
	"github.com/eduflowhq/eduflow/core/course"
	"github.com/eduflowhq/eduflow/core/enrollment"
	"github.com/eduflowhq/eduflow/core/session"
	"github.com/eduflowhq/eduflow/core/user"
)

type (
	catalogDeps struct {
		store      *session.Store
		courses    *course.Service
		learning   *enrollment.Service
		grading    *assignment.Service
		briefings  *announcement.Service
		dashboards analytics.Repository
	}

	catalogApi struct {
		catalogDeps
	}
)

func registerCatalogAPI(g *echo.Group, deps catalogDeps) {
	api := catalogApi{catalogDeps: deps}

	cg := g.Group("/courses")
	cg.GET("", api.queryCourses)
	cg.GET("/:id", api.retrieveCourse)
	cg.GET("/:id/lessons", api.queryLessons)
	cg.GET("/:id/assignments", api.queryCourseAssignments)
	cg.GET("/:id/announcements", api.queryCourseAnnouncements)

	mg := g.Group("/my")
	mg.GET("/learning", api.myLearning)
	mg.GET("/grades", api.myGrades)

	g.GET("/assignments/:id/submissions", api.querySubmissions)
	g.GET("/analytics", api.retrieveAnalytics)
}

// Handlers

func (api *catalogApi) queryCourses(ctx echo.Context) error {
	var (
		courses []course.Course
		err     error
	)
	switch {
	case ctx.QueryParam("instructor") != "":
		courses, err = api.courses.ByInstructor(ctx.QueryParam("instructor"))
	case ctx.QueryParam("status") == course.StatusPending:
		if err = api.requireRole(user.RoleAdmin); err != nil {
			return err
		}
		courses, err = api.courses.PendingApproval()
	default:
		courses, err = api.courses.Published()
	}
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *catalogApi) retrieveCourse(ctx echo.Context) error {
	crs, err := api.courses.Get(ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting course")
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *catalogApi) queryLessons(ctx echo.Context) error {
	lessons, err := api.courses.Lessons(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying lessons")
	}
	return ctx.JSON(http.StatusOK, lessons)
}

func (api *catalogApi) queryCourseAssignments(ctx echo.Context) error {
	asgs, err := api.grading.ForCourse(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	return ctx.JSON(http.StatusOK, asgs)
}

func (api *catalogApi) queryCourseAnnouncements(ctx echo.Context) error {
	anns, err := api.briefings.ForCourse(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying announcements")
	}
	return ctx.JSON(http.StatusOK, anns)
}

func (api *catalogApi) myLearning(ctx echo.Context) error {
	usr, ok := api.store.CurrentUser()
	if !ok {
		return errNotAuthenticated
	}
	learning, err := api.learning.Learning(usr.ID)
	if err != nil {
		return errors.Wrap(err, "querying learning")
	}
	return ctx.JSON(http.StatusOK, learning)
}

func (api *catalogApi) myGrades(ctx echo.Context) error {
	usr, ok := api.store.CurrentUser()
	if !ok {
		return errNotAuthenticated
	}
	grades, err := api.grading.Grades(usr.ID)
	if err != nil {
		return errors.Wrap(err, "querying grades")
	}
	return ctx.JSON(http.StatusOK, grades)
}

func (api *catalogApi) querySubmissions(ctx echo.Context) error {
	if err := api.requireRole(user.RoleInstructor, user.RoleAdmin); err != nil {
		return err
	}
	subs, err := api.grading.Submissions(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying submissions")
	}
	return ctx.JSON(http.StatusOK, subs)
}

func (api *catalogApi) retrieveAnalytics(ctx echo.Context) error {
	if err := api.requireRole(user.RoleAdmin); err != nil {
		return err
	}
	stats, err := api.dashboards.GetStats()
	if err != nil {
		return errors.Wrap(err, "getting stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

// requireRole returns errNotAuthenticated when signed out and errHttpForbidden
// when the signed-in user holds none of the given roles.
func (api *catalogApi) requireRole(roles ...string) error {
	usr, ok := api.store.CurrentUser()
	if !ok {
		return errNotAuthenticated
	}
	for _, role := range roles {
		if usr.Role == role {
			return nil
		}
	}
	return errHttpForbidden
}
