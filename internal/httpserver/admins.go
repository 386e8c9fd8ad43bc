package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sleepsound/storefront/internal/logging"
	"github.com/sleepsound/storefront/internal/service"
	"github.com/sleepsound/storefront/internal/transport"
)

type AdminHTTP struct {
	Svc *service.AdminService
}

func (h *AdminHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admins.login")

	var req transport.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 401, "reason", "invalid body", "error", err)
		return fail(c, service.ErrInvalidCredentials)
	}

	admin, token, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, echo.Map{"admin": admin, "token": token})
}

func (h *AdminHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admins.register")

	var req transport.AdminRegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, service.ErrMissingFields)
	}

	admin, err := h.Svc.Register(ctx, req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusCreated, echo.Map{"admin": admin})
}

func (h *AdminHTTP) Pending(c echo.Context) error {
	pending, err := h.Svc.Pending(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, echo.Map{"pending": pending})
}

func (h *AdminHTTP) All(c echo.Context) error {
	admins, err := h.Svc.All(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, echo.Map{"admins": admins})
}

func (h *AdminHTTP) Approve(c echo.Context) error {
	id, err := adminID(c)
	if err != nil {
		return fail(c, err)
	}
	admin, err := h.Svc.Approve(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, echo.Map{"admin": admin})
}

func (h *AdminHTTP) Reject(c echo.Context) error {
	id, err := adminID(c)
	if err != nil {
		return fail(c, err)
	}
	admin, err := h.Svc.Reject(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, echo.Map{"admin": admin})
}

func (h *AdminHTTP) Remove(c echo.Context) error {
	id, err := adminID(c)
	if err != nil {
		return fail(c, err)
	}
	if err := h.Svc.Remove(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, echo.Map{})
}

// adminID parses the :id path segment; a non-numeric id is indistinguishable
// from an unknown one.
func adminID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, service.ErrAdminNotFound
	}
	return id, nil
}
