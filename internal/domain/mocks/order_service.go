package mocks

import (
	"context"

	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// OrderServiceMock is a mock type for the OrderService type
type OrderServiceMock struct {
	mock.Mock
}

type OrderServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *OrderServiceMock) EXPECT() *OrderServiceMock_Expecter {
	return &OrderServiceMock_Expecter{mock: &_m.Mock}
}

// CreateOrder provides a mock function with given fields: ctx, req
func (_m *OrderServiceMock) CreateOrder(ctx context.Context, req domain.NewOrder) (*domain.OrderSummary, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.OrderSummary
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.OrderSummary)
	}
	return r0, ret.Error(1)
}

// CreateOrder is a helper method to define mock.On call
func (_e *OrderServiceMock_Expecter) CreateOrder(ctx interface{}, req interface{}) *mock.Call {
	return _e.mock.On("CreateOrder", ctx, req)
}

// GetOrders provides a mock function with given fields: ctx, clientID
func (_m *OrderServiceMock) GetOrders(ctx context.Context, clientID uuid.UUID) ([]*domain.OrderSummary, error) {
	ret := _m.Called(ctx, clientID)
	var r0 []*domain.OrderSummary
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.OrderSummary)
	}
	return r0, ret.Error(1)
}

// GetOrders is a helper method to define mock.On call
func (_e *OrderServiceMock_Expecter) GetOrders(ctx interface{}, clientID interface{}) *mock.Call {
	return _e.mock.On("GetOrders", ctx, clientID)
}

// NewOrderServiceMock creates a new instance of OrderServiceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceMock {
	m := &OrderServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
