package mocks

import mock "github.com/stretchr/testify/mock"

// HasherMock is a mock type for the Hasher type
type HasherMock struct {
	mock.Mock
}

type HasherMock_Expecter struct {
	mock *mock.Mock
}

func (_m *HasherMock) EXPECT() *HasherMock_Expecter {
	return &HasherMock_Expecter{mock: &_m.Mock}
}

// Hash provides a mock function with given fields: password
func (_m *HasherMock) Hash(password string) (string, error) {
	ret := _m.Called(password)
	return ret.String(0), ret.Error(1)
}

// Hash is a helper method to define mock.On call
func (_e *HasherMock_Expecter) Hash(password interface{}) *mock.Call {
	return _e.mock.On("Hash", password)
}

// Check provides a mock function with given fields: hash, password
func (_m *HasherMock) Check(hash string, password string) error {
	ret := _m.Called(hash, password)
	return ret.Error(0)
}

// Check is a helper method to define mock.On call
func (_e *HasherMock_Expecter) Check(hash interface{}, password interface{}) *mock.Call {
	return _e.mock.On("Check", hash, password)
}

// NewHasherMock creates a new instance of HasherMock. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewHasherMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *HasherMock {
	m := &HasherMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
