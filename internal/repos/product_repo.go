package repos

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"pizzapos/internal/domain"
)

type ProductRepo struct{ db *DB }

func NewProductRepo(db *DB) *ProductRepo { return &ProductRepo{db: db} }

const productColumns = `id, name, COALESCE(description,'') AS description, price, image_path`

// List returns the whole catalog ordered by name.
func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.with(func(db *sqlx.DB) error {
		return db.Select(&out, `SELECT `+productColumns+` FROM products ORDER BY name`)
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

// likeEscaper keeps % and _ in a query literal.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns products whose name or description contains q, ignoring
// case, ordered by name. An empty q matches everything.
func (r *ProductRepo) Search(q string) ([]domain.Product, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
	out := []domain.Product{}
	err := r.db.with(func(db *sqlx.DB) error {
		return db.Select(&out, `
			SELECT `+productColumns+`
			FROM products
			WHERE LOWER(name) LIKE ? ESCAPE '\'
			   OR LOWER(COALESCE(description,'')) LIKE ? ESCAPE '\'
			ORDER BY name
		`, pattern, pattern)
	})
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return out, nil
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.with(func(db *sqlx.DB) error {
		return db.Get(&p, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Create inserts p and returns it with the assigned ID. Any ID on p is ignored.
func (r *ProductRepo) Create(p domain.Product) (domain.Product, error) {
	err := r.db.with(func(db *sqlx.DB) error {
		res, err := db.Exec(`
		  INSERT INTO products(name, description, price, image_path)
		  VALUES(?, ?, ?, ?)
		`, p.Name, p.Description, p.Price, p.ImagePath)
		if err != nil {
			return err
		}
		p.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// Update overwrites every mutable column of the row with p.ID.
// An unknown ID matches nothing and is not an error.
func (r *ProductRepo) Update(p domain.Product) error {
	if p.ID == 0 {
		return ErrMissingID
	}
	err := r.db.with(func(db *sqlx.DB) error {
		_, err := db.Exec(`
		  UPDATE products
		  SET name = ?, description = ?, price = ?, image_path = ?
		  WHERE id = ?
		`, p.Name, p.Description, p.Price, p.ImagePath, p.ID)
		return err
	})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes the product; deleting an unknown ID is a no-op.
func (r *ProductRepo) Delete(id int64) error {
	err := r.db.with(func(db *sqlx.DB) error {
		_, err := db.Exec(`DELETE FROM products WHERE id = ?`, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
