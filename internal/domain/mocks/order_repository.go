package mocks

import (
	"context"

	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// OrderRepositoryMock is a mock type for the OrderRepository type
type OrderRepositoryMock struct {
	mock.Mock
}

type OrderRepositoryMock_Expecter struct {
	mock *mock.Mock
}

func (_m *OrderRepositoryMock) EXPECT() *OrderRepositoryMock_Expecter {
	return &OrderRepositoryMock_Expecter{mock: &_m.Mock}
}

// CreateOrder provides a mock function with given fields: ctx, order
func (_m *OrderRepositoryMock) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	ret := _m.Called(ctx, order)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

// CreateOrder is a helper method to define mock.On call
func (_e *OrderRepositoryMock_Expecter) CreateOrder(ctx interface{}, order interface{}) *mock.Call {
	return _e.mock.On("CreateOrder", ctx, order)
}

// GetOrderByID provides a mock function with given fields: ctx, id
func (_m *OrderRepositoryMock) GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

// GetOrderByID is a helper method to define mock.On call
func (_e *OrderRepositoryMock_Expecter) GetOrderByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetOrderByID", ctx, id)
}

// GetOrderForUpdate provides a mock function with given fields: ctx, id
func (_m *OrderRepositoryMock) GetOrderForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

// GetOrderForUpdate is a helper method to define mock.On call
func (_e *OrderRepositoryMock_Expecter) GetOrderForUpdate(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetOrderForUpdate", ctx, id)
}

// BlockOrder provides a mock function with given fields: ctx, id
func (_m *OrderRepositoryMock) BlockOrder(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// BlockOrder is a helper method to define mock.On call
func (_e *OrderRepositoryMock_Expecter) BlockOrder(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("BlockOrder", ctx, id)
}

// ListOrderSummaries provides a mock function with given fields: ctx, clientID
func (_m *OrderRepositoryMock) ListOrderSummaries(ctx context.Context, clientID uuid.UUID) ([]*domain.OrderSummary, error) {
	ret := _m.Called(ctx, clientID)
	var r0 []*domain.OrderSummary
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.OrderSummary)
	}
	return r0, ret.Error(1)
}

// ListOrderSummaries is a helper method to define mock.On call
func (_e *OrderRepositoryMock_Expecter) ListOrderSummaries(ctx interface{}, clientID interface{}) *mock.Call {
	return _e.mock.On("ListOrderSummaries", ctx, clientID)
}

// NewOrderRepositoryMock creates a new instance of OrderRepositoryMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderRepositoryMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepositoryMock {
	m := &OrderRepositoryMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
