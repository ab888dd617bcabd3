package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/atelier-service/internal/api/http/handlers"
	"github.com/spec-kit/atelier-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Clients        *handlers.ClientsHandler
	Products       *handlers.ProductsHandler
	Customizations *handlers.CustomizationsHandler
	Images         *handlers.ImagesHandler
	Orders         *handlers.OrdersHandler
	Medications    *handlers.MedicationsHandler
	Prescriptions  *handlers.PrescriptionsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Everything below the protected group
// passes token validation before any handler runs; admin routes add a
// role check that runs strictly after it.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)

	protected := app.Group("", cfg.AuthMiddleware.Handle)

	users := protected.Group("/users")
	users.Get("/", auth.RequireAdmin(), cfg.Users.List)
	users.Get("/:id", auth.RequireRole(), cfg.Users.Get)
	users.Patch("/:id", cfg.Users.Update)
	users.Delete("/:id", auth.RequireAdmin(), cfg.Users.Delete)

	clients := protected.Group("/clients")
	clients.Post("/", cfg.Clients.Create)
	clients.Get("/", cfg.Clients.List)
	clients.Get("/:id", cfg.Clients.Get)
	clients.Patch("/:id", cfg.Clients.Update)
	clients.Delete("/:id", cfg.Clients.Delete)

	products := protected.Group("/products")
	products.Post("/", cfg.Products.Create)
	products.Get("/", cfg.Products.List)
	products.Get("/:id", cfg.Products.Get)
	products.Patch("/:id", cfg.Products.Update)
	products.Delete("/:id", cfg.Products.Delete)

	customizations := protected.Group("/customizations")
	customizations.Post("/", cfg.Customizations.Create)
	customizations.Get("/", cfg.Customizations.List)
	customizations.Get("/:id", cfg.Customizations.Get)
	customizations.Patch("/:id", cfg.Customizations.Update)
	customizations.Delete("/:id", cfg.Customizations.Delete)

	images := protected.Group("/images")
	images.Post("/", cfg.Images.Create)
	images.Get("/", cfg.Images.List)
	images.Get("/:id", cfg.Images.Get)
	images.Patch("/:id", cfg.Images.Update)
	images.Delete("/:id", cfg.Images.Delete)

	orders := protected.Group("/orders")
	orders.Post("/", cfg.Orders.Create)
	orders.Get("/", cfg.Orders.List)
	orders.Get("/:id", cfg.Orders.Get)
	orders.Patch("/:id", cfg.Orders.Update)
	orders.Delete("/:id", cfg.Orders.Delete)
	orders.Get("/:id/items", cfg.Orders.ListItems)
	orders.Post("/:id/items", cfg.Orders.CreateItem)

	items := protected.Group("/order-items")
	items.Get("/:id", cfg.Orders.GetItem)
	items.Patch("/:id", cfg.Orders.UpdateItem)
	items.Delete("/:id", cfg.Orders.DeleteItem)

	medications := protected.Group("/medications")
	medications.Post("/", auth.RequireAdmin(), cfg.Medications.Create)
	medications.Get("/", cfg.Medications.List)
	medications.Get("/:id", cfg.Medications.Get)
	medications.Patch("/:id", auth.RequireAdmin(), cfg.Medications.Update)
	medications.Delete("/:id", auth.RequireAdmin(), cfg.Medications.Delete)

	prescriptions := protected.Group("/prescriptions")
	prescriptions.Post("/", cfg.Prescriptions.Create)
	prescriptions.Get("/", cfg.Prescriptions.List)
	prescriptions.Get("/:id", cfg.Prescriptions.Get)
	prescriptions.Patch("/:id", cfg.Prescriptions.Update)
	prescriptions.Delete("/:id", cfg.Prescriptions.Delete)
	prescriptions.Get("/:id/history", cfg.Prescriptions.ListHistory)

	histories := protected.Group("/histories")
	histories.Post("/", cfg.Prescriptions.CreateHistory)
	histories.Get("/", cfg.Prescriptions.ListHistories)
	histories.Get("/:id", cfg.Prescriptions.GetHistory)
	histories.Delete("/:id", cfg.Prescriptions.DeleteHistory)
}
