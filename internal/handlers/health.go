package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheck reports service liveness and the session store's state.
// A nil checker means the gateway runs on the in-memory store.
func HealthCheck(store HealthChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessions := "memory"
		if store != nil {
			sessions = "connected"
			if err := store.HealthCheck(c.Context()); err != nil {
				sessions = "unreachable"
			}
		}
		return c.JSON(fiber.Map{
			"status":  "ok",
			"version": "1.0.0",
			"services": fiber.Map{
				"sessions": sessions,
			},
		})
	}
}
