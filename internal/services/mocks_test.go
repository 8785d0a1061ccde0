package services_test

import (
	"github.com/stretchr/testify/mock"

	"pizzapos/internal/domain"
)

// MockProductStore is a mock implementation of services.ProductStore
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) List() ([]domain.Product, error) {
	args := m.Called()
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductStore) Get(id int64) (domain.Product, error) {
	args := m.Called(id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductStore) Search(q string) ([]domain.Product, error) {
	args := m.Called(q)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductStore) Create(p domain.Product) (domain.Product, error) {
	args := m.Called(p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductStore) Update(p domain.Product) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockProductStore) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockOrderStore is a mock implementation of services.OrderStore
type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) List() ([]domain.Order, error) {
	args := m.Called()
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderStore) Get(id int64) (domain.Order, error) {
	args := m.Called(id)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *MockOrderStore) Create(o domain.Order) (domain.Order, error) {
	args := m.Called(o)
	return args.Get(0).(domain.Order), args.Error(1)
}

// MockCouponStore is a mock implementation of services.CouponStore
type MockCouponStore struct {
	mock.Mock
}

func (m *MockCouponStore) List() ([]domain.Coupon, error) {
	args := m.Called()
	return args.Get(0).([]domain.Coupon), args.Error(1)
}

func (m *MockCouponStore) Create(c domain.Coupon) (domain.Coupon, error) {
	args := m.Called(c)
	return args.Get(0).(domain.Coupon), args.Error(1)
}
