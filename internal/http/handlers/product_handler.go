package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pizzapos/internal/domain"
	"pizzapos/internal/services"
	"pizzapos/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /api/v1/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ps, err := h.Catalog.ListProducts()
	if err != nil {
		return fail(c, "products.list.fail", err)
	}
	return c.JSON(ps)
}

// maxQueryLen bounds the search box input.
const maxQueryLen = 100

// GET /api/v1/products/search?q=
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if len(q) > maxQueryLen {
		return badRequest(c, "products.search.q", "search query too long")
	}
	ps, err := h.Catalog.Search(q)
	if err != nil {
		return fail(c, "products.search.fail", err)
	}
	return c.JSON(ps)
}

// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "products.get.id", "missing identifier")
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return fail(c, "products.get.fail", err)
	}
	return c.JSON(p)
}

// POST /api/v1/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "products.create.parse", "invalid product body")
	}
	created, err := h.Catalog.CreateProduct(p)
	if err != nil {
		return fail(c, "products.create.fail", err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// PUT /api/v1/products/:id
// The path ID replaces whatever ID the body carries.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "products.update.id", "missing identifier")
	}
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "products.update.parse", "invalid product body")
	}
	p.ID = id
	if err := h.Catalog.UpdateProduct(p); err != nil {
		return fail(c, "products.update.fail", err)
	}
	return c.JSON(p)
}

// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "products.delete.id", "missing identifier")
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		return fail(c, "products.delete.fail", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
