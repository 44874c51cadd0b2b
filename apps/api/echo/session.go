package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/eduflowhq/eduflow/core"
	"github.com/eduflowhq/eduflow/core/notification"
	"github.com/eduflowhq/eduflow/core/session"
	"github.com/eduflowhq/eduflow/core/user"
)

type sessionApi struct {
	store      *session.Store
	validate   *validator.Validate
	translator ut.Translator
}

func registerSessionAPI(g *echo.Group, store *session.Store, validate *validator.Validate, translator ut.Translator) {
	api := sessionApi{
		store:      store,
		validate:   validate,
		translator: translator,
	}

	ag := g.Group("/auth")
	ag.POST("/login", api.login)
	ag.POST("/register", api.register)
	ag.POST("/logout", api.logout)
	ag.GET("/me", api.me)

	ng := g.Group("/notifications")
	ng.GET("", api.queryNotifications)
	ng.POST("/:id/read", api.markNotificationRead)
}

// Handlers

func (api *sessionApi) login(ctx echo.Context) error {
	var data user.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.store.Login(data.Email, data.Password, data.Role); err != nil {
		if errors.Cause(err) == session.ErrInvalidCredentials {
			return core.NewValidationError(errors.New("invalid credentials"))
		}
		return errors.Wrap(err, "logging in")
	}

	return ctx.JSON(http.StatusOK, api.sessionResponse())
}

func (api *sessionApi) register(ctx echo.Context) error {
	var data user.Registration
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Registration")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.store.Register(data.Name, data.Email, data.Password, data.Role); err != nil {
		if errors.Cause(err) == session.ErrEmailTaken {
			return core.NewValidationError(nil, core.FieldError{Field: "email", Error: err.Error()})
		}
		return errors.Wrap(err, "registering")
	}

	return ctx.JSON(http.StatusCreated, api.sessionResponse())
}

func (api *sessionApi) logout(ctx echo.Context) error {
	api.store.Logout()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *sessionApi) me(ctx echo.Context) error {
	usr, ok := api.store.CurrentUser()
	if !ok {
		return errNotAuthenticated
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *sessionApi) queryNotifications(ctx echo.Context) error {
	if _, ok := api.store.CurrentUser(); !ok {
		return errNotAuthenticated
	}
	return ctx.JSON(http.StatusOK, api.notificationsResponse())
}

func (api *sessionApi) markNotificationRead(ctx echo.Context) error {
	if _, ok := api.store.CurrentUser(); !ok {
		return errNotAuthenticated
	}
	api.store.MarkNotificationRead(ctx.Param("id"))
	return ctx.JSON(http.StatusOK, api.notificationsResponse())
}

func (api *sessionApi) sessionResponse() SessionResponse {
	usr, _ := api.store.CurrentUser()
	return SessionResponse{
		User:          usr,
		Notifications: api.store.Notifications(),
		UnreadCount:   api.store.UnreadCount(),
	}
}

func (api *sessionApi) notificationsResponse() NotificationsResponse {
	return NotificationsResponse{
		Notifications: api.store.Notifications(),
		UnreadCount:   api.store.UnreadCount(),
	}
}

type (
	SessionResponse struct {
		User          user.User                   `json:"user"`
		Notifications []notification.Notification `json:"notifications"`
		UnreadCount   int                         `json:"unreadCount"`
	}

	NotificationsResponse struct {
		Notifications []notification.Notification `json:"notifications"`
		UnreadCount   int                         `json:"unreadCount"`
	}
)
