// Package main is the entry point for the checkout gateway.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log"
	"time"

	"tienda/internal/banks"
	"tienda/internal/config"
	"tienda/internal/gateway"
	"tienda/internal/handlers"
	"tienda/internal/metrics"
	"tienda/internal/middleware"
	"tienda/internal/repositories/cache"
	"tienda/internal/routes"
	"tienda/internal/services/cart"
	"tienda/internal/services/checkout"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	zapLogger, err := newLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	// Session token store: Redis when configured, in-memory otherwise.
	var (
		tokenStore middleware.TokenStore
		health     handlers.HealthChecker
	)
	if host := config.GetEnv("REDIS_HOST", ""); host != "" {
		client := cache.NewRedisClient(&cache.RedisConfig{
			Host:     host,
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		})
		store := cache.NewRedisTokenStore(client, config.GetDurationEnv("SESSION_TTL", 24*time.Hour))
		if err := store.HealthCheck(context.Background()); err != nil {
			zapLogger.Fatal("redis unreachable", zap.Error(err))
		}
		defer func() { _ = store.Close() }()
		tokenStore = store
		health = store
		zapLogger.Info("session store: redis", zap.String("host", host))
	} else {
		tokenStore = cache.NewMemoryTokenStore()
		zapLogger.Info("session store: memory")
	}

	// Wire the checkout flow
	registry := banks.NewRegistry()
	cartService := cart.NewService()
	backend := gateway.NewClient(config.BackendURL())
	m := metrics.New(prometheus.DefaultRegisterer)
	checkoutService := checkout.NewService(registry, cartService, backend, tokenStore, zapLogger, m)
	authMiddleware := middleware.NewAuthMiddleware(tokenStore, zapLogger)

	// Create Fiber app
	app := fiber.New()

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGIN", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/checkout/pay", limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	// Routes
	routes.SetupRoutes(app, routes.Dependencies{
		Registry: registry,
		Checkout: checkoutService,
		Cart:     cartService,
		Auth:     authMiddleware,
		Health:   health,
	})

	// Start server
	zapLogger.Info("checkout gateway listening",
		zap.String("port", config.GetEnv("PORT", "3000")),
		zap.String("backend", config.BackendURL()),
	)
	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}

func newLogger() (*zap.Logger, error) {
	if config.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
