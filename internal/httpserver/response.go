package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sleepsound/storefront/internal/logging"
	"github.com/sleepsound/storefront/internal/service"
)

// Every response carries "ok"; failures add "message" and nothing else.

func success(c echo.Context, code int, kv echo.Map) error {
	body := echo.Map{"ok": true}
	for k, v := range kv {
		body[k] = v
	}
	return c.JSON(code, body)
}

func fail(c echo.Context, err error) error {
	var se *service.Error
	if errors.As(err, &se) {
		return c.JSON(se.Status, echo.Map{"ok": false, "message": se.Message})
	}
	logging.FromContext(c.Request().Context()).Error("request_error", "error", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"ok": false, "message": "Internal server error"})
}
