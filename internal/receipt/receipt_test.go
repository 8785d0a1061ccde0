package receipt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pizzapos/internal/domain"
	"pizzapos/internal/receipt"
)

func twoItemOrder() domain.Order {
	return domain.Order{
		ID:        7,
		CreatedAt: "2026-10-18T12:00:00.000000000Z",
		Buyer:     "Walk-in Customer",
		Products: []domain.OrderItem{
			{ProductID: 1, Quantity: 2, Product: domain.Product{ID: 1, Name: "Margherita Hardcore", Price: 12.99}},
			{ProductID: 2, Quantity: 1, Product: domain.Product{ID: 2, Name: "Pepperoni Remaster", Price: 14.99}},
		},
		PaymentMethod:   "Cash",
		DeliveryService: "Uber Eats",
		Subtotal:        40.97,
		Tax:             6.56,
		Total:           47.53,
	}
}

func TestFormat_LineTotalsAndStoredAmounts(t *testing.T) {
	out := receipt.Format(twoItemOrder())

	assert.True(t, strings.HasPrefix(out, "🍕 PIZZA POS RECEIPT 🍕\n"))
	assert.Contains(t, out, "Order #: 7\n")
	assert.Contains(t, out, "Date: 2026-10-18T12:00:00.000000000Z\n")
	assert.Contains(t, out, "Customer: Walk-in Customer\n")
	assert.Contains(t, out, "Payment: Cash\n")
	assert.Contains(t, out, "Delivery: Uber Eats\n")
	assert.Contains(t, out, "2 x Margherita Hardcore - $25.98\n")
	assert.Contains(t, out, "1 x Pepperoni Remaster - $14.99\n")
	assert.Contains(t, out, "Subtotal: $40.97\n")
	assert.Contains(t, out, "Tax (16%): $6.56\n")
	assert.Contains(t, out, "Total: $47.53\n")
	assert.Contains(t, out, "Thank you for your order!")
	assert.NotContains(t, out, "Coupon:")
}

func TestFormat_PrintsStoredTotalsVerbatim(t *testing.T) {
	o := twoItemOrder()
	// stored amounts need not agree with the items
	o.Subtotal = 1
	o.Tax = 2
	o.Total = 3

	out := receipt.Format(o)
	assert.Contains(t, out, "Subtotal: $1.00\n")
	assert.Contains(t, out, "Tax (16%): $2.00\n")
	assert.Contains(t, out, "Total: $3.00\n")
	assert.Contains(t, out, "2 x Margherita Hardcore - $25.98\n")
}

func TestFormat_CouponLine(t *testing.T) {
	o := twoItemOrder()
	code := "PIZZA10"
	o.CouponCode = &code
	assert.Contains(t, receipt.Format(o), "Coupon: PIZZA10\n")

	empty := ""
	o.CouponCode = &empty
	assert.NotContains(t, receipt.Format(o), "Coupon:")
}

func TestFormat_NoItems(t *testing.T) {
	o := twoItemOrder()
	o.Products = nil

	out := receipt.Format(o)
	assert.Contains(t, out, "ITEMS:\n\n")
	assert.Contains(t, out, "Total: $47.53")
}

func TestFormatWith_TaxLabel(t *testing.T) {
	out := receipt.FormatWith(twoItemOrder(), receipt.Options{TaxRate: 0.0825})
	assert.Contains(t, out, "Tax (8.25%): $6.56\n")
}

func TestLineTotal_Exact(t *testing.T) {
	it := domain.OrderItem{Quantity: 3, Product: domain.Product{Price: 0.1}}
	assert.Equal(t, "0.30", receipt.LineTotal(it).StringFixed(2))
}

func TestMoney_RoundsBinaryValue(t *testing.T) {
	assert.Equal(t, "$2.67", receipt.Money(2.675))
	assert.Equal(t, "$1.00", receipt.Money(1.005))
	assert.Equal(t, "$47.53", receipt.Money(47.53))
	assert.Equal(t, "$0.00", receipt.Money(0))
}
