package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sleepsound/storefront/internal/logging"
	"github.com/sleepsound/storefront/internal/service"
	"github.com/sleepsound/storefront/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.register")

	var req transport.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, service.ErrMissingFields)
	}

	user, err := h.Svc.Register(ctx, req)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusCreated, echo.Map{"user": user})
}

func (h *UserHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.login")

	var req transport.LoginUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 401, "reason", "invalid body", "error", err)
		return fail(c, service.ErrInvalidLogin)
	}

	user, token, err := h.Svc.Login(ctx, req)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, echo.Map{"user": user, "token": token})
}
