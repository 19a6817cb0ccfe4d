// Package routes defines the API routing configuration.
package routes

import (
	"tienda/internal/banks"
	"tienda/internal/handlers"
	"tienda/internal/middleware"
	"tienda/internal/services/cart"
	"tienda/internal/services/checkout"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the wired services the routes expose.
type Dependencies struct {
	Registry *banks.Registry
	Checkout *checkout.Service
	Cart     cart.Service
	Auth     *middleware.AuthMiddleware
	Health   handlers.HealthChecker
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, d Dependencies) {
	checkoutHandler := handlers.NewCheckoutHandler(d.Checkout)
	cartHandler := handlers.NewCartHandler(d.Cart)

	app.Get("/health", handlers.HealthCheck(d.Health))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Tienda Checkout API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api", middleware.Session(), d.Auth.Handler)

	// Bank registry (read-only configuration data)
	api.Get("/banks", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"banks": d.Registry.All()})
	})

	// Cart
	api.Get("/cart", cartHandler.GetCart)
	api.Post("/cart", cartHandler.AddItem)
	api.Delete("/cart", cartHandler.ClearCart)
	api.Delete("/cart/:id", cartHandler.RemoveItem)

	// Checkout flow
	api.Get("/checkout", checkoutHandler.GetCheckout)
	api.Post("/checkout/bank", checkoutHandler.SelectBank)
	api.Delete("/checkout/bank", checkoutHandler.ChangeBank)
	api.Post("/checkout/pay", checkoutHandler.Pay)
}
