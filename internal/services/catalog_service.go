package services

import (
	"pizzapos/internal/domain"
	applog "pizzapos/internal/log"
	"pizzapos/internal/validate"
)

// ProductStore is the slice of repos.ProductRepo the catalog needs.
type ProductStore interface {
	List() ([]domain.Product, error)
	Get(id int64) (domain.Product, error)
	Search(q string) ([]domain.Product, error)
	Create(p domain.Product) (domain.Product, error)
	Update(p domain.Product) error
	Delete(id int64) error
}

type CatalogService struct {
	Prods ProductStore
}

func NewCatalogService(prods ProductStore) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) GetProduct(id int64) (domain.Product, error) {
	return s.Prods.Get(id)
}

// Search matches q against name and description, ignoring case.
func (s *CatalogService) Search(q string) ([]domain.Product, error) {
	q, _ = validate.Text(q)
	return s.Prods.Search(q)
}

// checkProduct runs the tag checks and rejects a name that is only blanks.
// The returned product carries the trimmed name.
func checkProduct(p domain.Product) (domain.Product, error) {
	if err := validate.Struct(p); err != nil {
		return p, err
	}
	name, ok := validate.Text(p.Name)
	if !ok {
		return p, &validate.Error{Fields: []string{"name"}}
	}
	p.Name = name
	return p, nil
}

// CreateProduct requires a name and a price.
func (s *CatalogService) CreateProduct(p domain.Product) (domain.Product, error) {
	p, err := checkProduct(p)
	if err != nil {
		return domain.Product{}, err
	}
	p.ID = 0
	created, err := s.Prods.Create(p)
	if err != nil {
		return domain.Product{}, err
	}
	applog.Audit(nil, "product.create", map[string]any{"product_id": created.ID, "name": created.Name})
	return created, nil
}

// UpdateProduct overwrites the stored row with p. The ID check lives in
// the repo so that it applies even when the fields are fine.
func (s *CatalogService) UpdateProduct(p domain.Product) error {
	if p.ID != 0 {
		var err error
		if p, err = checkProduct(p); err != nil {
			return err
		}
	}
	if err := s.Prods.Update(p); err != nil {
		return err
	}
	applog.Audit(nil, "product.update", map[string]any{"product_id": p.ID})
	return nil
}

func (s *CatalogService) DeleteProduct(id int64) error {
	if err := s.Prods.Delete(id); err != nil {
		return err
	}
	applog.Audit(nil, "product.delete", map[string]any{"product_id": id})
	return nil
}
