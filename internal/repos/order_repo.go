package repos

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"pizzapos/internal/domain"
	applog "pizzapos/internal/log"
)

type OrderRepo struct{ db *DB }

func NewOrderRepo(db *DB) *OrderRepo { return &OrderRepo{db: db} }

// orderRow mirrors the orders table; Products is the raw JSON column.
type orderRow struct {
	ID              int64   `db:"id"`
	CreatedAt       string  `db:"created_at"`
	Buyer           string  `db:"buyer"`
	Products        string  `db:"products"`
	PaymentMethod   string  `db:"payment_method"`
	DeliveryService string  `db:"delivery_service"`
	CouponCode      *string `db:"coupon_code"`
	Subtotal        float64 `db:"subtotal"`
	Tax             float64 `db:"tax"`
	Total           float64 `db:"total"`
}

const orderColumns = `id, created_at, buyer, products, payment_method, delivery_service,
	coupon_code, subtotal, tax, total`

// toOrder decodes the item column. Bad JSON only costs this row its items.
func (row orderRow) toOrder() domain.Order {
	items := []domain.OrderItem{}
	if err := json.Unmarshal([]byte(row.Products), &items); err != nil {
		applog.Warn(nil, "order.items.decode.fail", map[string]any{"order_id": row.ID, "error": err.Error()})
		items = nil
	}
	if items == nil {
		items = []domain.OrderItem{}
	}
	return domain.Order{
		ID:              row.ID,
		CreatedAt:       row.CreatedAt,
		Buyer:           row.Buyer,
		Products:        items,
		PaymentMethod:   row.PaymentMethod,
		DeliveryService: row.DeliveryService,
		CouponCode:      row.CouponCode,
		Subtotal:        row.Subtotal,
		Tax:             row.Tax,
		Total:           row.Total,
	}
}

// List returns every order, most recent first.
func (r *OrderRepo) List() ([]domain.Order, error) {
	var rows []orderRow
	err := r.db.with(func(db *sqlx.DB) error {
		return db.Select(&rows, `
			SELECT `+orderColumns+`
			FROM orders
			ORDER BY created_at DESC, id DESC
		`)
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toOrder())
	}
	return out, nil
}

func (r *OrderRepo) Get(id int64) (domain.Order, error) {
	var row orderRow
	err := r.db.with(func(db *sqlx.DB) error {
		return db.Get(&row, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("get order: %w", err)
	}
	return row.toOrder(), nil
}

// Create stores o stamped with the current time; whatever CreatedAt the
// caller set is replaced. The returned order carries the new ID and stamp.
func (r *OrderRepo) Create(o domain.Order) (domain.Order, error) {
	if o.Products == nil {
		o.Products = []domain.OrderItem{}
	}
	itemsJSON, err := json.Marshal(o.Products)
	if err != nil {
		return domain.Order{}, fmt.Errorf("encode order items: %w", err)
	}

	err = r.db.with(func(db *sqlx.DB) error {
		o.CreatedAt = r.db.stamp()
		res, err := db.Exec(`
		  INSERT INTO orders
		    (created_at, buyer, products, payment_method, delivery_service, coupon_code, subtotal, tax, total)
		  VALUES
		    (?,          ?,     ?,        ?,              ?,                ?,           ?,        ?,   ?)
		`, o.CreatedAt, o.Buyer, string(itemsJSON), o.PaymentMethod, o.DeliveryService, o.CouponCode,
			o.Subtotal, o.Tax, o.Total)
		if err != nil {
			return err
		}
		o.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	return o, nil
}
