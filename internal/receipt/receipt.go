// Package receipt renders an order as the plain-text slip handed to the
// customer. Nothing here touches storage.
package receipt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"pizzapos/internal/domain"
)

const rule = "========================="

// DefaultTaxRate is the rate printed next to the tax line.
const DefaultTaxRate = 0.16

type Options struct {
	// TaxRate only labels the tax line; the amount printed is Order.Tax.
	TaxRate float64
}

func (o Options) taxLabel() string {
	rate := o.TaxRate
	if rate <= 0 {
		rate = DefaultTaxRate
	}
	pct := decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100))
	return "Tax (" + pct.Round(2).String() + "%)"
}

// Money prints a stored amount as dollars. Rounding is on the binary value,
// so 2.675 prints as $2.67.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// LineTotal is quantity times the snapshot unit price, in exact decimal.
func LineTotal(it domain.OrderItem) decimal.Decimal {
	return decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Format renders o with the default options.
func Format(o domain.Order) string {
	return FormatWith(o, Options{})
}

func FormatWith(o domain.Order, opts Options) string {
	var b strings.Builder

	b.WriteString("🍕 PIZZA POS RECEIPT 🍕\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Order #: %d\n", o.ID)
	fmt.Fprintf(&b, "Date: %s\n", o.CreatedAt)
	fmt.Fprintf(&b, "Customer: %s\n", o.Buyer)
	fmt.Fprintf(&b, "Payment: %s\n", o.PaymentMethod)
	fmt.Fprintf(&b, "Delivery: %s\n", o.DeliveryService)
	if o.CouponCode != nil && *o.CouponCode != "" {
		fmt.Fprintf(&b, "Coupon: %s\n", *o.CouponCode)
	}

	b.WriteString("\nITEMS:\n")
	for _, it := range o.Products {
		fmt.Fprintf(&b, "%d x %s - $%s\n", it.Quantity, it.Product.Name, LineTotal(it).StringFixed(2))
	}

	b.WriteString("\n" + rule + "\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", Money(o.Subtotal))
	fmt.Fprintf(&b, "%s: %s\n", opts.taxLabel(), Money(o.Tax))
	fmt.Fprintf(&b, "Total: %s\n", Money(o.Total))
	b.WriteString("\nThank you for your order!\n")
	b.WriteString(rule + "\n")

	return b.String()
}
