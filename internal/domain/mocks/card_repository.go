package mocks

import (
	"context"

	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// CardRepositoryMock is a mock type for the CardRepository type
type CardRepositoryMock struct {
	mock.Mock
}

type CardRepositoryMock_Expecter struct {
	mock *mock.Mock
}

func (_m *CardRepositoryMock) EXPECT() *CardRepositoryMock_Expecter {
	return &CardRepositoryMock_Expecter{mock: &_m.Mock}
}

// InsertCard provides a mock function with given fields: ctx, card
func (_m *CardRepositoryMock) InsertCard(ctx context.Context, card *domain.TokenizedCard) (*domain.TokenizedCard, error) {
	ret := _m.Called(ctx, card)
	var r0 *domain.TokenizedCard
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.TokenizedCard)
	}
	return r0, ret.Error(1)
}

// InsertCard is a helper method to define mock.On call
func (_e *CardRepositoryMock_Expecter) InsertCard(ctx interface{}, card interface{}) *mock.Call {
	return _e.mock.On("InsertCard", ctx, card)
}

// GetCardByID provides a mock function with given fields: ctx, id
func (_m *CardRepositoryMock) GetCardByID(ctx context.Context, id uuid.UUID) (*domain.TokenizedCard, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.TokenizedCard
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.TokenizedCard)
	}
	return r0, ret.Error(1)
}

// GetCardByID is a helper method to define mock.On call
func (_e *CardRepositoryMock_Expecter) GetCardByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetCardByID", ctx, id)
}

// ListCardsByClient provides a mock function with given fields: ctx, clientID
func (_m *CardRepositoryMock) ListCardsByClient(ctx context.Context, clientID uuid.UUID) ([]*domain.TokenizedCard, error) {
	ret := _m.Called(ctx, clientID)
	var r0 []*domain.TokenizedCard
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.TokenizedCard)
	}
	return r0, ret.Error(1)
}

// ListCardsByClient is a helper method to define mock.On call
func (_e *CardRepositoryMock_Expecter) ListCardsByClient(ctx interface{}, clientID interface{}) *mock.Call {
	return _e.mock.On("ListCardsByClient", ctx, clientID)
}

// NewCardRepositoryMock creates a new instance of CardRepositoryMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCardRepositoryMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *CardRepositoryMock {
	m := &CardRepositoryMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
