package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"pizzapos/internal/config"
	"pizzapos/internal/receipt"
	"pizzapos/internal/repos"
	"pizzapos/internal/services"
)

type Deps struct {
	ProductHandler *ProductHandler
	OrderHandler   *OrderHandler
	CouponHandler  *CouponHandler
	AdminHandler   *AdminHandler
}

// NewDeps wires repos -> services -> handlers over one guarded store.
// printer may be nil to skip echoing receipts.
func NewDeps(db *repos.DB, cfg config.Config, printer io.Writer) *Deps {
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	couponRepo := repos.NewCouponRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	orderSvc := services.NewOrderService(orderRepo, receipt.Options{TaxRate: cfg.TaxRate}, printer)
	couponSvc := services.NewCouponService(couponRepo)

	return &Deps{
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		OrderHandler:   &OrderHandler{Order: orderSvc},
		CouponHandler:  &CouponHandler{Coupons: couponSvc},
		AdminHandler:   &AdminHandler{Catalog: catalogSvc, Order: orderSvc, Coupons: couponSvc},
	}
}

// Mount registers every route on app.
func (d *Deps) Mount(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/products", d.ProductHandler.List)
	api.Post("/products", d.ProductHandler.Create)
	api.Get("/products/search", d.ProductHandler.Search)
	api.Get("/products/:id", d.ProductHandler.Get)
	api.Put("/products/:id", d.ProductHandler.Update)
	api.Delete("/products/:id", d.ProductHandler.Delete)

	api.Get("/orders", d.OrderHandler.List)
	api.Post("/orders", d.OrderHandler.Create)
	api.Get("/orders/:id", d.OrderHandler.Get)
	api.Post("/receipts", d.OrderHandler.Receipt)

	api.Get("/coupons", d.CouponHandler.List)
	api.Post("/coupons", d.CouponHandler.Create)

	app.Get("/orders/:id/receipt", d.OrderHandler.ReceiptPage)
	app.Get("/admin/orders", d.AdminHandler.OrdersPage)
	app.Get("/admin/products", d.AdminHandler.ProductsPage)
}
