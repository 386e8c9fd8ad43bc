package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sleepsound/storefront/internal/logging"
	"github.com/sleepsound/storefront/internal/service"
	"github.com/sleepsound/storefront/internal/transport"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.create")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_error", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, service.ErrMissingFields)
	}

	order, err := h.Svc.Create(ctx, req)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusCreated, echo.Map{"order": order})
}

func (h *OrderHTTP) Get(c echo.Context) error {
	order, err := h.Svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, echo.Map{"order": order})
}

func (h *OrderHTTP) List(c echo.Context) error {
	orders, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, echo.Map{"orders": orders})
}

func (h *OrderHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.update_status")

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_error", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, service.ErrMissingStatus)
	}

	order, err := h.Svc.UpdateStatus(ctx, c.Param("id"), req)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, echo.Map{"order": order})
}
