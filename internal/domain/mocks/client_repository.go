package mocks

import (
	"context"

	"github.com/avc/checkout-gateway/internal/domain"
	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// ClientRepositoryMock is a mock type for the ClientRepository type
type ClientRepositoryMock struct {
	mock.Mock
}

type ClientRepositoryMock_Expecter struct {
	mock *mock.Mock
}

func (_m *ClientRepositoryMock) EXPECT() *ClientRepositoryMock_Expecter {
	return &ClientRepositoryMock_Expecter{mock: &_m.Mock}
}

// CreateClient provides a mock function with given fields: ctx, client
func (_m *ClientRepositoryMock) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	ret := _m.Called(ctx, client)
	var r0 *domain.Client
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Client)
	}
	return r0, ret.Error(1)
}

// CreateClient is a helper method to define mock.On call
func (_e *ClientRepositoryMock_Expecter) CreateClient(ctx interface{}, client interface{}) *mock.Call {
	return _e.mock.On("CreateClient", ctx, client)
}

// GetClientByID provides a mock function with given fields: ctx, id
func (_m *ClientRepositoryMock) GetClientByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Client
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Client)
	}
	return r0, ret.Error(1)
}

// GetClientByID is a helper method to define mock.On call
func (_e *ClientRepositoryMock_Expecter) GetClientByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetClientByID", ctx, id)
}

// GetClientByUsername provides a mock function with given fields: ctx, username
func (_m *ClientRepositoryMock) GetClientByUsername(ctx context.Context, username string) (*domain.Client, error) {
	ret := _m.Called(ctx, username)
	var r0 *domain.Client
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Client)
	}
	return r0, ret.Error(1)
}

// GetClientByUsername is a helper method to define mock.On call
func (_e *ClientRepositoryMock_Expecter) GetClientByUsername(ctx interface{}, username interface{}) *mock.Call {
	return _e.mock.On("GetClientByUsername", ctx, username)
}

// NewClientRepositoryMock creates a new instance of ClientRepositoryMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewClientRepositoryMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *ClientRepositoryMock {
	m := &ClientRepositoryMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
