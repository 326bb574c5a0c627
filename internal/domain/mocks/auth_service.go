package mocks

import (
	"context"

	"github.com/avc/checkout-gateway/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// AuthServiceMock is a mock type for the AuthService type
type AuthServiceMock struct {
	mock.Mock
}

type AuthServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *AuthServiceMock) EXPECT() *AuthServiceMock_Expecter {
	return &AuthServiceMock_Expecter{mock: &_m.Mock}
}

// Register provides a mock function with given fields: ctx, reg
func (_m *AuthServiceMock) Register(ctx context.Context, reg domain.Registration) (string, error) {
	ret := _m.Called(ctx, reg)
	return ret.String(0), ret.Error(1)
}

// Register is a helper method to define mock.On call
func (_e *AuthServiceMock_Expecter) Register(ctx interface{}, reg interface{}) *mock.Call {
	return _e.mock.On("Register", ctx, reg)
}

// Login provides a mock function with given fields: ctx, username, password
func (_m *AuthServiceMock) Login(ctx context.Context, username string, password string) (string, error) {
	ret := _m.Called(ctx, username, password)
	return ret.String(0), ret.Error(1)
}

// Login is a helper method to define mock.On call
func (_e *AuthServiceMock_Expecter) Login(ctx interface{}, username interface{}, password interface{}) *mock.Call {
	return _e.mock.On("Login", ctx, username, password)
}

// NewAuthServiceMock creates a new instance of AuthServiceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewAuthServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthServiceMock {
	m := &AuthServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
