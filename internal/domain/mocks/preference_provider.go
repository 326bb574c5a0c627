package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// PreferenceProviderMock is a mock type for the PreferenceProvider type
type PreferenceProviderMock struct {
	mock.Mock
}

type PreferenceProviderMock_Expecter struct {
	mock *mock.Mock
}

func (_m *PreferenceProviderMock) EXPECT() *PreferenceProviderMock_Expecter {
	return &PreferenceProviderMock_Expecter{mock: &_m.Mock}
}

// GetInt provides a mock function with given fields: ctx, key
func (_m *PreferenceProviderMock) GetInt(ctx context.Context, key string) (int, error) {
	ret := _m.Called(ctx, key)
	return ret.Int(0), ret.Error(1)
}

// GetInt is a helper method to define mock.On call
func (_e *PreferenceProviderMock_Expecter) GetInt(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("GetInt", ctx, key)
}

// NewPreferenceProviderMock creates a new instance of PreferenceProviderMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPreferenceProviderMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *PreferenceProviderMock {
	m := &PreferenceProviderMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
