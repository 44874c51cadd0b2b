package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"

	echoapi "github.com/eduflowhq/eduflow/apps/api/echo"
	"github.com/eduflowhq/eduflow/core"
	"github.com/eduflowhq/eduflow/core/announcement"
	"github.com/eduflowhq/eduflow/core/assignment"
	"github.com/eduflowhq/eduflow/core/course"
	"github.com/eduflowhq/eduflow/core/enrollment"
	"github.com/eduflowhq/eduflow/core/session"
	"github.com/eduflowhq/eduflow/core/user"
	emailsvc "github.com/eduflowhq/eduflow/services/email"
	logsvc "github.com/eduflowhq/eduflow/services/logger"
	"github.com/eduflowhq/eduflow/storage/fixture"
	"github.com/eduflowhq/eduflow/storage/kv"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up storage
	store := kv.NewFileStore(afero.NewOsFs(), conf.KV.Path)
	db, err := fixture.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening fixture database: %v", err), err)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	sessionStore := session.NewStore(session.Deps{
		KV:     store,
		Seed:   fixture.NewUserDirectory(db),
		Notifs: fixture.NewNotificationRepository(db),
		Scheme: user.SchemeFromName(conf.PasswordScheme),
		Logger: logger,
		Mail:   mailSvc,
	})

	courseRepo := fixture.NewCourseRepository(db)
	courseSvc := course.NewService(courseRepo)
	enrollmentSvc := enrollment.NewService(fixture.NewEnrollmentRepository(db), courseRepo)
	assignmentSvc := assignment.NewService(fixture.NewAssignmentRepository(db))
	announcementSvc := announcement.NewService(fixture.NewAnnouncementRepository(db))
	analyticsRepo := fixture.NewAnalyticsRepository(db)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.RegisterValidators(validate, translator)

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:            conf,
			Logger:          logger,
			Store:           sessionStore,
			CourseSvc:       courseSvc,
			EnrollmentSvc:   enrollmentSvc,
			AssignmentSvc:   assignmentSvc,
			AnnouncementSvc: announcementSvc,
			AnalyticsRepo:   analyticsRepo,
			Validate:        validate,
			Translator:      translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
