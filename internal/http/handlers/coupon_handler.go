package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pizzapos/internal/domain"
	"pizzapos/internal/services"
)

type CouponHandler struct {
	Coupons *services.CouponService
}

// GET /api/v1/coupons
func (h *CouponHandler) List(c *fiber.Ctx) error {
	cs, err := h.Coupons.ListCoupons()
	if err != nil {
		return fail(c, "coupons.list.fail", err)
	}
	return c.JSON(cs)
}

// POST /api/v1/coupons
func (h *CouponHandler) Create(c *fiber.Ctx) error {
	var cp domain.Coupon
	if err := c.BodyParser(&cp); err != nil {
		return badRequest(c, "coupons.create.parse", "invalid coupon body")
	}
	created, err := h.Coupons.CreateCoupon(cp)
	if err != nil {
		return fail(c, "coupons.create.fail", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
