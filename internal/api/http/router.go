package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Users        *handlers.UsersHandler
	Clients      *handlers.ClientsHandler
	Products     *handlers.ProductsHandler
	Categories   *handlers.CategoriesHandler
	SessionGuard fiber.Handler
}

// RegisterRoutes wires HTTP routes. Everything except login and the health
// probes sits behind the session guard.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth", cfg.Auth.Login)
	app.Get("/auth/renew-token", cfg.SessionGuard, cfg.Auth.Renew)

	users := app.Group("/user", cfg.SessionGuard)
	registerCRUD(users, crudHandlers{
		list: cfg.Users.List, get: cfg.Users.Get, create: cfg.Users.Create,
		update: cfg.Users.Update, delete: cfg.Users.Delete,
	})

	clients := app.Group("/client", cfg.SessionGuard)
	registerCRUD(clients, crudHandlers{
		list: cfg.Clients.List, get: cfg.Clients.Get, create: cfg.Clients.Create,
		update: cfg.Clients.Update, delete: cfg.Clients.Delete,
	})

	// Category routes are registered before /product/:id so the literal
	// "category" segment is never captured as a product id.
	categories := app.Group("/product/category", cfg.SessionGuard)
	registerCRUD(categories, crudHandlers{
		list: cfg.Categories.List, get: cfg.Categories.Get, create: cfg.Categories.Create,
		update: cfg.Categories.Update, delete: cfg.Categories.Delete,
	})

	products := app.Group("/product", cfg.SessionGuard)
	registerCRUD(products, crudHandlers{
		list: cfg.Products.List, get: cfg.Products.Get, create: cfg.Products.Create,
		update: cfg.Products.Update, delete: cfg.Products.Delete,
	})
}

type crudHandlers struct {
	list, get, create, update, delete fiber.Handler
}

func registerCRUD(group fiber.Router, h crudHandlers) {
	group.Get("/", h.list)
	group.Get("/:id", h.get)
	group.Post("/add", h.create)
	group.Put("/:id", h.update)
	group.Patch("/:id", h.update)
	group.Delete("/:id", h.delete)
}
