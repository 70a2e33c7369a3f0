// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"roster/internal/delivery/http/response"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request. Validation happens before
// any store access; the acknowledgment echoes no sensitive data.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid registration payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if _, err := h.uc.Register(c.Request().Context(), &input); err != nil {
		return h.fail(c, err, domainerrors.ErrRegistrationFailed)
	}

	return response.JSONMessage(c, http.StatusCreated, "User registered successfully")
}

// Login handles the user login request and returns the session token plus
// the display name, never the stored hash.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid login payload")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return h.fail(c, err, domainerrors.ErrLoginFailed)
	}

	return c.JSON(http.StatusOK, response.Login{
		Token: output.Token,
		Name:  output.User.Name,
	})
}

// fail passes expected rejections through untouched and converts anything
// else into the operation's opaque internal-fault error. The original error
// is logged here; the caller only ever sees the canonical message.
func (h *UserHandler) fail(c echo.Context, err error, fallback *domainerrors.BaseError) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return errors.WithStack(err)
	}

	h.logger.Error("Request failed",
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)

	return errors.WithStack(fallback)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
