package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/eduflowhq/eduflow/core"
	"github.com/eduflowhq/eduflow/core/analytics"
	"github.com/eduflowhq/eduflow/core/announcement"
	"github.com/eduflowhq/eduflow/core/assignment"
	"github.com/eduflowhq/eduflow/core/course"
	"github.com/eduflowhq/eduflow/core/enrollment"
	"github.com/eduflowhq/eduflow/core/session"
)

type (
	ServerDeps struct {
		Conf            *core.Config
		Logger          core.Logger
		Store           *session.Store
		CourseSvc       *course.Service
		EnrollmentSvc   *enrollment.Service
		AssignmentSvc   *assignment.Service
		AnnouncementSvc *announcement.Service
		AnalyticsRepo   analytics.Repository
		Validate        *validator.Validate
		Translator      ut.Translator
		DisableReqLogs  bool
	}

	Server interface {
		http.Handler
		Start()
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
		Shutdown(context.Context) error
		Close() error
	}

	server struct {
		deps     ServerDeps
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.deps.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Store, s.deps.Translator, s.signalShutdown)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home(conf.AppName))

	v1 := s.app.Group("/v1")

	registerSessionAPI(v1, s.deps.Store, s.deps.Validate, s.deps.Translator)
	registerCatalogAPI(v1, catalogDeps{
		store:      s.deps.Store,
		courses:    s.deps.CourseSvc,
		learning:   s.deps.EnrollmentSvc,
		grading:    s.deps.AssignmentSvc,
		briefings:  s.deps.AnnouncementSvc,
		dashboards: s.deps.AnalyticsRepo,
	})
}

func (s *server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.errs <- s.app.Start(s.deps.Conf.Server.Addr)
}

func (s *server) Errors() <-chan error {
	return s.errs
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// signalShutdown initiates a graceful shutdown, as if a SIGTERM was received.
func (s *server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(appName string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Welcome to "+appName+" API!")
	}
}
