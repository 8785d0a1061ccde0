package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pizzapos/internal/domain"
	applog "pizzapos/internal/log"
	"pizzapos/internal/repos"
	"pizzapos/internal/services"
	"pizzapos/internal/validate"
)

type OrderHandler struct {
	Order *services.OrderService
}

// GET /api/v1/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.Order.ListOrders()
	if err != nil {
		return fail(c, "orders.list.fail", err)
	}
	return c.JSON(orders)
}

// GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "orders.get.id", "missing identifier")
	}
	o, err := h.Order.GetOrder(id)
	if err != nil {
		return fail(c, "orders.get.fail", err)
	}
	return c.JSON(o)
}

// POST /api/v1/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var o domain.Order
	if err := c.BodyParser(&o); err != nil {
		return badRequest(c, "orders.create.parse", "invalid order body")
	}
	created, err := h.Order.Place(o)
	if err != nil {
		return fail(c, "orders.create.fail", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// POST /api/v1/receipts
// Formats the posted order without looking it up or storing it.
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	var o domain.Order
	if err := c.BodyParser(&o); err != nil {
		return badRequest(c, "receipt.parse", "invalid order body")
	}
	text := h.Order.PrintReceipt(o)
	applog.Info(c, "receipt.print", map[string]any{"order_id": o.ID})
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}

// GET /orders/:id/receipt
func (h *OrderHandler) ReceiptPage(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	o, err := h.Order.GetOrder(id)
	if errors.Is(err, repos.ErrOrderNotFound) {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	if err != nil {
		applog.Error(c, "receipt.page.fail", err, map[string]any{"order_id": id})
		return c.Status(statusFor(err)).Render("notfound", fiber.Map{"Message": "Could not load order"})
	}
	return render(c, "receipt", fiber.Map{"Order": o, "Receipt": h.Order.FormatReceipt(o)})
}
