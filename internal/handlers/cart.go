package handlers

import (
	"strconv"

	"tienda/internal/middleware"
	"tienda/internal/models"
	"tienda/internal/services/cart"
	"tienda/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// CartHandler exposes the session cart the checkout flow consumes.
type CartHandler struct {
	svc cart.Service
}

func NewCartHandler(svc cart.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	sid := middleware.SessionID(c)
	return c.JSON(fiber.Map{
		"items": h.svc.Items(sid),
		"total": h.svc.Total(sid),
	})
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var item models.CartItem
	if err := c.BodyParser(&item); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if item.ID == 0 {
		return response.BadRequest(c, "product id is required")
	}

	sid := middleware.SessionID(c)
	h.svc.Add(sid, item)
	return response.Success(c, "Producto agregado", fiber.Map{
		"items": h.svc.Items(sid),
		"total": h.svc.Total(sid),
	})
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "invalid product id")
	}

	sid := middleware.SessionID(c)
	h.svc.Remove(sid, uint(id))
	return response.Success(c, "Producto eliminado", fiber.Map{
		"items": h.svc.Items(sid),
		"total": h.svc.Total(sid),
	})
}

func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	sid := middleware.SessionID(c)
	h.svc.Clear(sid)
	return response.Success(c, "Carrito vacío", fiber.Map{
		"items": []models.CartItem{},
		"total": 0,
	})
}
