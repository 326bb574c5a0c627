package mocks

import (
	"context"

	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// CardServiceMock is a mock type for the CardService type
type CardServiceMock struct {
	mock.Mock
}

type CardServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *CardServiceMock) EXPECT() *CardServiceMock_Expecter {
	return &CardServiceMock_Expecter{mock: &_m.Mock}
}

// Tokenize provides a mock function with given fields: ctx, req
func (_m *CardServiceMock) Tokenize(ctx context.Context, req domain.CardRequest) (*domain.CardView, error) {
	ret := _m.Called(ctx, req)
	var r0 *domain.CardView
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.CardView)
	}
	return r0, ret.Error(1)
}

// Tokenize is a helper method to define mock.On call
func (_e *CardServiceMock_Expecter) Tokenize(ctx interface{}, req interface{}) *mock.Call {
	return _e.mock.On("Tokenize", ctx, req)
}

// ListCards provides a mock function with given fields: ctx, clientID
func (_m *CardServiceMock) ListCards(ctx context.Context, clientID uuid.UUID) ([]*domain.CardView, error) {
	ret := _m.Called(ctx, clientID)
	var r0 []*domain.CardView
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.CardView)
	}
	return r0, ret.Error(1)
}

// ListCards is a helper method to define mock.On call
func (_e *CardServiceMock_Expecter) ListCards(ctx interface{}, clientID interface{}) *mock.Call {
	return _e.mock.On("ListCards", ctx, clientID)
}

// GetCard provides a mock function with given fields: ctx, cardID, clientID
func (_m *CardServiceMock) GetCard(ctx context.Context, cardID uuid.UUID, clientID uuid.UUID) (*domain.CardView, error) {
	ret := _m.Called(ctx, cardID, clientID)
	var r0 *domain.CardView
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.CardView)
	}
	return r0, ret.Error(1)
}

// GetCard is a helper method to define mock.On call
func (_e *CardServiceMock_Expecter) GetCard(ctx interface{}, cardID interface{}, clientID interface{}) *mock.Call {
	return _e.mock.On("GetCard", ctx, cardID, clientID)
}

// NewCardServiceMock creates a new instance of CardServiceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCardServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *CardServiceMock {
	m := &CardServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
