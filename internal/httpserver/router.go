package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sleepsound/storefront/internal/service"
)

type Deps struct {
	UserHandler    *UserHTTP
	AdminHandler   *AdminHTTP
	OrderHandler   *OrderHTTP
	ProductHandler *ProductHTTP
	Admins         *service.AdminService
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	users := api.Group("/users")
	users.POST("/register", d.UserHandler.Register)
	users.POST("/login", d.UserHandler.Login)

	api.POST("/orders", d.OrderHandler.Create)
	api.GET("/orders/:id", d.OrderHandler.Get)

	api.GET("/products", d.ProductHandler.List)
	api.GET("/products/:id", d.ProductHandler.Get)

	admin := api.Group("/admin")
	admin.POST("/login", d.AdminHandler.Login)
	admin.POST("/register", d.AdminHandler.Register)

	// any approved admin
	approved := admin.Group("", RequireAdmin(d.Admins, false))
	approved.GET("/orders", d.OrderHandler.List)
	approved.PATCH("/orders/:id/status", d.OrderHandler.UpdateStatus)
	approved.PATCH("/products/:id/price", d.ProductHandler.UpdatePrice)

	// main admin only
	main := admin.Group("", RequireAdmin(d.Admins, true))
	main.GET("/pending", d.AdminHandler.Pending)
	main.GET("/all", d.AdminHandler.All)
	main.POST("/approve/:id", d.AdminHandler.Approve)
	main.POST("/reject/:id", d.AdminHandler.Reject)
	main.DELETE("/remove/:id", d.AdminHandler.Remove)
}
