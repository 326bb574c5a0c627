package mocks

import (
	"context"

	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// PaymentServiceMock is a mock type for the PaymentService type
type PaymentServiceMock struct {
	mock.Mock
}

type PaymentServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *PaymentServiceMock) EXPECT() *PaymentServiceMock_Expecter {
	return &PaymentServiceMock_Expecter{mock: &_m.Mock}
}

// ProcessPayment provides a mock function with given fields: ctx, orderID, clientID, cardID
func (_m *PaymentServiceMock) ProcessPayment(ctx context.Context, orderID uuid.UUID, clientID uuid.UUID, cardID uuid.UUID) (*domain.PaymentOutcome, error) {
	ret := _m.Called(ctx, orderID, clientID, cardID)
	var r0 *domain.PaymentOutcome
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.PaymentOutcome)
	}
	return r0, ret.Error(1)
}

// ProcessPayment is a helper method to define mock.On call
func (_e *PaymentServiceMock_Expecter) ProcessPayment(ctx interface{}, orderID interface{}, clientID interface{}, cardID interface{}) *mock.Call {
	return _e.mock.On("ProcessPayment", ctx, orderID, clientID, cardID)
}

// NewPaymentServiceMock creates a new instance of PaymentServiceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPaymentServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentServiceMock {
	m := &PaymentServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
