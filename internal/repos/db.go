package repos

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"pizzapos/internal/domain"
)

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrMissingID          = errors.New("missing identifier")
	ErrDuplicateCoupon    = errors.New("coupon code already exists")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
)

// createdAtLayout is fixed width so that text order matches time order.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DB is the single shared connection. Every statement runs with mu held;
// the sqlx handle never leaves this package.
type DB struct {
	mu       sync.Mutex
	conn     *sqlx.DB
	poisoned bool

	// Now stamps new orders. Tests may replace it.
	Now func() time.Time
}

func OpenDB(dsn string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one connection, so ":memory:" stays one database
	conn.SetMaxOpenConns(1)
	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err := ensureSchema(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	if err := seedIfEmpty(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("seed products: %w", err)
	}

	return &DB{conn: conn, Now: time.Now}, nil
}

// Close releases the connection. Later calls fail with ErrStorageUnavailable.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.conn == nil {
		return nil
	}
	err := d.conn.Close()
	d.conn = nil
	return err
}

// with runs fn while holding the lock. A panic inside fn poisons the handle:
// the lock is still released, and every later call fails fast.
func (d *DB) with(fn func(conn *sqlx.DB) error) (err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.conn == nil || d.poisoned {
		return ErrStorageUnavailable
	}
	defer func() {
		if r := recover(); r != nil {
			d.poisoned = true
			log.Printf("[storage] poisoned after panic: %v", r)
			err = fmt.Errorf("%w: %v", ErrStorageUnavailable, r)
		}
	}()
	return fn(d.conn)
}

func (d *DB) stamp() string {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	return now().UTC().Format(createdAtLayout)
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT,
  price REAL NOT NULL,
  image_path TEXT
);

-- products holds the JSON-encoded line items
CREATE TABLE IF NOT EXISTS orders(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  created_at TEXT NOT NULL,
  buyer TEXT NOT NULL,
  products TEXT NOT NULL,
  payment_method TEXT NOT NULL,
  delivery_service TEXT NOT NULL,
  coupon_code TEXT,
  subtotal REAL NOT NULL,
  tax REAL NOT NULL,
  total REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

CREATE TABLE IF NOT EXISTS coupons(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  code TEXT UNIQUE NOT NULL,
  discount_percentage REAL NOT NULL,
  expiration_date TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting sample pizza catalog")

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, p := range domain.SampleCatalog {
		if _, err := tx.Exec(`
			INSERT INTO products(name, description, price, image_path)
			VALUES(?, ?, ?, ?)
		`, p.Name, p.Description, p.Price, domain.SampleImage()); err != nil {
			return err
		}
	}

	return tx.Commit()
}
