package response

import (
	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// AuthRequired tells the client to open the login prompt.
func AuthRequired(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":         message,
		"auth_required": true,
	})
}

// FlowFailure is an error notification with an optional navigation
// target attached.
func FlowFailure(c *fiber.Ctx, status int, message, redirect string) error {
	body := fiber.Map{"error": message}
	if redirect != "" {
		body["redirect"] = redirect
	}
	return c.Status(status).JSON(body)
}
