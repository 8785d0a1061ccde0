package repos

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"pizzapos/internal/domain"
)

type CouponRepo struct{ db *DB }

func NewCouponRepo(db *DB) *CouponRepo { return &CouponRepo{db: db} }

// List returns all coupons ordered by code.
func (r *CouponRepo) List() ([]domain.Coupon, error) {
	out := []domain.Coupon{}
	err := r.db.with(func(db *sqlx.DB) error {
		return db.Select(&out, `
			SELECT id, code, discount_percentage, expiration_date
			FROM coupons
			ORDER BY code
		`)
	})
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	return out, nil
}

// Create inserts c. A code that already exists yields ErrDuplicateCoupon.
func (r *CouponRepo) Create(c domain.Coupon) (domain.Coupon, error) {
	err := r.db.with(func(db *sqlx.DB) error {
		res, err := db.Exec(`
		  INSERT INTO coupons(code, discount_percentage, expiration_date)
		  VALUES(?, ?, ?)
		`, c.Code, c.DiscountPercentage, c.ExpirationDate)
		if err != nil {
			return err
		}
		c.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Coupon{}, fmt.Errorf("create coupon %q: %w", c.Code, ErrDuplicateCoupon)
		}
		return domain.Coupon{}, fmt.Errorf("create coupon: %w", err)
	}
	return c, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return false
}
