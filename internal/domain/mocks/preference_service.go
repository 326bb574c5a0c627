package mocks

import (
	"context"

	"github.com/avc/checkout-gateway/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// PreferenceServiceMock is a mock type for the PreferenceService type
type PreferenceServiceMock struct {
	mock.Mock
}

type PreferenceServiceMock_Expecter struct {
	mock *mock.Mock
}

func (_m *PreferenceServiceMock) EXPECT() *PreferenceServiceMock_Expecter {
	return &PreferenceServiceMock_Expecter{mock: &_m.Mock}
}

// GetPreference provides a mock function with given fields: ctx, key
func (_m *PreferenceServiceMock) GetPreference(ctx context.Context, key string) (*domain.SystemPreference, error) {
	ret := _m.Called(ctx, key)
	var r0 *domain.SystemPreference
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.SystemPreference)
	}
	return r0, ret.Error(1)
}

// GetPreference is a helper method to define mock.On call
func (_e *PreferenceServiceMock_Expecter) GetPreference(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("GetPreference", ctx, key)
}

// CreatePreference provides a mock function with given fields: ctx, pref
func (_m *PreferenceServiceMock) CreatePreference(ctx context.Context, pref domain.SystemPreference) (*domain.SystemPreference, error) {
	ret := _m.Called(ctx, pref)
	var r0 *domain.SystemPreference
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.SystemPreference)
	}
	return r0, ret.Error(1)
}

// CreatePreference is a helper method to define mock.On call
func (_e *PreferenceServiceMock_Expecter) CreatePreference(ctx interface{}, pref interface{}) *mock.Call {
	return _e.mock.On("CreatePreference", ctx, pref)
}

// UpdatePreference provides a mock function with given fields: ctx, pref
func (_m *PreferenceServiceMock) UpdatePreference(ctx context.Context, pref domain.SystemPreference) (*domain.SystemPreference, error) {
	ret := _m.Called(ctx, pref)
	var r0 *domain.SystemPreference
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.SystemPreference)
	}
	return r0, ret.Error(1)
}

// UpdatePreference is a helper method to define mock.On call
func (_e *PreferenceServiceMock_Expecter) UpdatePreference(ctx interface{}, pref interface{}) *mock.Call {
	return _e.mock.On("UpdatePreference", ctx, pref)
}

// NewPreferenceServiceMock creates a new instance of PreferenceServiceMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPreferenceServiceMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *PreferenceServiceMock {
	m := &PreferenceServiceMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
