package services

import (
	"io"

	"pizzapos/internal/domain"
	applog "pizzapos/internal/log"
	"pizzapos/internal/receipt"
	"pizzapos/internal/validate"
)

type OrderStore interface {
	List() ([]domain.Order, error)
	Get(id int64) (domain.Order, error)
	Create(o domain.Order) (domain.Order, error)
}

type OrderService struct {
	Orders  OrderStore
	Receipt receipt.Options
	// Printer, when set, receives a copy of every receipt produced.
	Printer io.Writer
}

func NewOrderService(orders OrderStore, opts receipt.Options, printer io.Writer) *OrderService {
	return &OrderService{Orders: orders, Receipt: opts, Printer: printer}
}

func (s *OrderService) ListOrders() ([]domain.Order, error) {
	return s.Orders.List()
}

func (s *OrderService) GetOrder(id int64) (domain.Order, error) {
	return s.Orders.Get(id)
}

// Place records o. Totals are taken as given; the store assigns ID and time.
func (s *OrderService) Place(o domain.Order) (domain.Order, error) {
	if err := validate.Struct(o); err != nil {
		return domain.Order{}, err
	}
	o.ID = 0
	created, err := s.Orders.Create(o)
	if err != nil {
		return domain.Order{}, err
	}
	applog.Audit(nil, "order.create", map[string]any{
		"order_id": created.ID,
		"items":    len(created.Products),
		"total":    created.Total,
	})
	return created, nil
}

// FormatReceipt renders o without printing it.
func (s *OrderService) FormatReceipt(o domain.Order) string {
	return receipt.FormatWith(o, s.Receipt)
}

// PrintReceipt formats o and, if a printer is configured, writes it there too.
// A failed print is logged; the text is still returned.
func (s *OrderService) PrintReceipt(o domain.Order) string {
	text := s.FormatReceipt(o)
	if s.Printer != nil {
		if _, err := io.WriteString(s.Printer, text); err != nil {
			applog.Error(nil, "receipt.print.fail", err, map[string]any{"order_id": o.ID})
		}
	}
	return text
}
