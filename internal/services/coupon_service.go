package services

import (
	"pizzapos/internal/domain"
	applog "pizzapos/internal/log"
	"pizzapos/internal/validate"
)

type CouponStore interface {
	List() ([]domain.Coupon, error)
	Create(c domain.Coupon) (domain.Coupon, error)
}

type CouponService struct {
	Coupons CouponStore
}

func NewCouponService(coupons CouponStore) *CouponService {
	return &CouponService{Coupons: coupons}
}

func (s *CouponService) ListCoupons() ([]domain.Coupon, error) {
	return s.Coupons.List()
}

// CreateCoupon stores c; the expiration date is kept as text, unparsed.
func (s *CouponService) CreateCoupon(c domain.Coupon) (domain.Coupon, error) {
	if err := validate.Struct(c); err != nil {
		return domain.Coupon{}, err
	}
	c.ID = 0
	created, err := s.Coupons.Create(c)
	if err != nil {
		return domain.Coupon{}, err
	}
	applog.Audit(nil, "coupon.create", map[string]any{"coupon_id": created.ID, "code": created.Code})
	return created, nil
}
