package mocks

import (
	"context"

	"github.com/avc/checkout-gateway/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// PreferenceRepositoryMock is a mock type for the PreferenceRepository type
type PreferenceRepositoryMock struct {
	mock.Mock
}

type PreferenceRepositoryMock_Expecter struct {
	mock *mock.Mock
}

func (_m *PreferenceRepositoryMock) EXPECT() *PreferenceRepositoryMock_Expecter {
	return &PreferenceRepositoryMock_Expecter{mock: &_m.Mock}
}

// GetPreference provides a mock function with given fields: ctx, key
func (_m *PreferenceRepositoryMock) GetPreference(ctx context.Context, key string) (*domain.SystemPreference, error) {
	ret := _m.Called(ctx, key)
	var r0 *domain.SystemPreference
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.SystemPreference)
	}
	return r0, ret.Error(1)
}

// GetPreference is a helper method to define mock.On call
func (_e *PreferenceRepositoryMock_Expecter) GetPreference(ctx interface{}, key interface{}) *mock.Call {
	return _e.mock.On("GetPreference", ctx, key)
}

// CreatePreference provides a mock function with given fields: ctx, pref
func (_m *PreferenceRepositoryMock) CreatePreference(ctx context.Context, pref *domain.SystemPreference) (*domain.SystemPreference, error) {
	ret := _m.Called(ctx, pref)
	var r0 *domain.SystemPreference
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.SystemPreference)
	}
	return r0, ret.Error(1)
}

// CreatePreference is a helper method to define mock.On call
func (_e *PreferenceRepositoryMock_Expecter) CreatePreference(ctx interface{}, pref interface{}) *mock.Call {
	return _e.mock.On("CreatePreference", ctx, pref)
}

// UpdatePreference provides a mock function with given fields: ctx, pref
func (_m *PreferenceRepositoryMock) UpdatePreference(ctx context.Context, pref *domain.SystemPreference) (*domain.SystemPreference, error) {
	ret := _m.Called(ctx, pref)
	var r0 *domain.SystemPreference
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.SystemPreference)
	}
	return r0, ret.Error(1)
}

// UpdatePreference is a helper method to define mock.On call
func (_e *PreferenceRepositoryMock_Expecter) UpdatePreference(ctx interface{}, pref interface{}) *mock.Call {
	return _e.mock.On("UpdatePreference", ctx, pref)
}

// NewPreferenceRepositoryMock creates a new instance of PreferenceRepositoryMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPreferenceRepositoryMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *PreferenceRepositoryMock {
	m := &PreferenceRepositoryMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
