package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "pizzapos/internal/log"
	"pizzapos/internal/receipt"
	"pizzapos/internal/services"
)

// AdminHandler serves the back-office pages the counter staff browse.
type AdminHandler struct {
	Catalog *services.CatalogService
	Order   *services.OrderService
	Coupons *services.CouponService
}

type orderRow struct {
	ID        int64
	CreatedAt string
	Buyer     string
	Items     int
	Payment   string
	Delivery  string
	Total     string
}

// GET /admin/orders
func (h *AdminHandler) OrdersPage(c *fiber.Ctx) error {
	ords, err := h.Order.ListOrders()
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return c.Status(statusFor(err)).Render("notfound", fiber.Map{"Message": "Could not load orders"})
	}
	rows := make([]orderRow, 0, len(ords))
	for _, o := range ords {
		n := 0
		for _, it := range o.Products {
			n += it.Quantity
		}
		rows = append(rows, orderRow{
			ID:        o.ID,
			CreatedAt: o.CreatedAt,
			Buyer:     o.Buyer,
			Items:     n,
			Payment:   o.PaymentMethod,
			Delivery:  o.DeliveryService,
			Total:     receipt.Money(o.Total),
		})
	}
	return render(c, "admin_orders", fiber.Map{"Orders": rows})
}

// GET /admin/products
func (h *AdminHandler) ProductsPage(c *fiber.Ctx) error {
	ps, err := h.Catalog.ListProducts()
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return c.Status(statusFor(err)).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}
	cs, err := h.Coupons.ListCoupons()
	if err != nil {
		applog.Error(c, "admin.coupons.list.fail", err, nil)
		return c.Status(statusFor(err)).Render("notfound", fiber.Map{"Message": "Could not load coupons"})
	}
	return render(c, "admin_products", fiber.Map{"Products": ps, "Coupons": cs})
}
