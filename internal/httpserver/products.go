package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sleepsound/storefront/internal/logging"
	"github.com/sleepsound/storefront/internal/service"
	"github.com/sleepsound/storefront/internal/transport"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) List(c echo.Context) error {
	products, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, echo.Map{"products": products})
}

func (h *ProductHTTP) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, service.ErrProductNotFound)
	}
	product, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, echo.Map{"product": product})
}

func (h *ProductHTTP) UpdatePrice(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "products.update_price")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, service.ErrProductNotFound)
	}

	var req transport.UpdateProductPriceRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_price_error", "status", 400, "reason", "invalid body", "error", err)
		return fail(c, service.ErrInvalidPrice)
	}

	product, err := h.Svc.UpdatePrice(ctx, id, req.Price)
	if err != nil {
		return fail(c, err)
	}
	return success(c, http.StatusOK, echo.Map{"product": product})
}
