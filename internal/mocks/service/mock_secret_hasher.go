// Mocks in the mockery expecter layout (see .mockery.yaml), kept by hand.

package service

import mock "github.com/stretchr/testify/mock"

// MockSecretHasher is a mock type for the SecretHasher type
type MockSecretHasher struct {
	mock.Mock
}

type MockSecretHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSecretHasher) EXPECT() *MockSecretHasher_Expecter {
	return &MockSecretHasher_Expecter{mock: &_m.Mock}
}

// Compare provides a mock function with given fields: stored, plaintext
func (_m *MockSecretHasher) Compare(stored string, plaintext string) error {
	ret := _m.Called(stored, plaintext)

	if len(ret) == 0 {
		panic("no return value specified for Compare")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(string, string) error); ok {
		r0 = rf(stored, plaintext)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockSecretHasher_Compare_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Compare'
type MockSecretHasher_Compare_Call struct {
	*mock.Call
}

// Compare is a helper method to define mock.On call
//   - stored string
//   - plaintext string
func (_e *MockSecretHasher_Expecter) Compare(stored interface{}, plaintext interface{}) *MockSecretHasher_Compare_Call {
	return &MockSecretHasher_Compare_Call{Call: _e.mock.On("Compare", stored, plaintext)}
}

func (_c *MockSecretHasher_Compare_Call) Run(run func(stored string, plaintext string)) *MockSecretHasher_Compare_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(string))
	})
	return _c
}

func (_c *MockSecretHasher_Compare_Call) Return(_a0 error) *MockSecretHasher_Compare_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSecretHasher_Compare_Call) RunAndReturn(run func(string, string) error) *MockSecretHasher_Compare_Call {
	_c.Call.Return(run)
	return _c
}

// Hash provides a mock function with given fields: plaintext
func (_m *MockSecretHasher) Hash(plaintext string) (string, error) {
	ret := _m.Called(plaintext)

	if len(ret) == 0 {
		panic("no return value specified for Hash")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (string, error)); ok {
		return rf(plaintext)
	}
	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(plaintext)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(plaintext)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockSecretHasher_Hash_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Hash'
type MockSecretHasher_Hash_Call struct {
	*mock.Call
}

// Hash is a helper method to define mock.On call
//   - plaintext string
func (_e *MockSecretHasher_Expecter) Hash(plaintext interface{}) *MockSecretHasher_Hash_Call {
	return &MockSecretHasher_Hash_Call{Call: _e.mock.On("Hash", plaintext)}
}

func (_c *MockSecretHasher_Hash_Call) Run(run func(plaintext string)) *MockSecretHasher_Hash_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockSecretHasher_Hash_Call) Return(_a0 string, _a1 error) *MockSecretHasher_Hash_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockSecretHasher_Hash_Call) RunAndReturn(run func(string) (string, error)) *MockSecretHasher_Hash_Call {
	_c.Call.Return(run)
	return _c
}

// NeedsRehash provides a mock function with given fields: stored
func (_m *MockSecretHasher) NeedsRehash(stored string) bool {
	ret := _m.Called(stored)

	if len(ret) == 0 {
		panic("no return value specified for NeedsRehash")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(string) bool); ok {
		r0 = rf(stored)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// MockSecretHasher_NeedsRehash_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'NeedsRehash'
type MockSecretHasher_NeedsRehash_Call struct {
	*mock.Call
}

// NeedsRehash is a helper method to define mock.On call
//   - stored string
func (_e *MockSecretHasher_Expecter) NeedsRehash(stored interface{}) *MockSecretHasher_NeedsRehash_Call {
	return &MockSecretHasher_NeedsRehash_Call{Call: _e.mock.On("NeedsRehash", stored)}
}

func (_c *MockSecretHasher_NeedsRehash_Call) Run(run func(stored string)) *MockSecretHasher_NeedsRehash_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockSecretHasher_NeedsRehash_Call) Return(_a0 bool) *MockSecretHasher_NeedsRehash_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSecretHasher_NeedsRehash_Call) RunAndReturn(run func(string) bool) *MockSecretHasher_NeedsRehash_Call {
	_c.Call.Return(run)
	return _c
}

// Verify provides a mock function with given fields: stored, plaintext
func (_m *MockSecretHasher) Verify(stored string, plaintext string) bool {
	ret := _m.Called(stored, plaintext)

	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(string, string) bool); ok {
		r0 = rf(stored, plaintext)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// MockSecretHasher_Verify_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Verify'
type MockSecretHasher_Verify_Call struct {
	*mock.Call
}

// Verify is a helper method to define mock.On call
//   - stored string
//   - plaintext string
func (_e *MockSecretHasher_Expecter) Verify(stored interface{}, plaintext interface{}) *MockSecretHasher_Verify_Call {
	return &MockSecretHasher_Verify_Call{Call: _e.mock.On("Verify", stored, plaintext)}
}

func (_c *MockSecretHasher_Verify_Call) Run(run func(stored string, plaintext string)) *MockSecretHasher_Verify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(string))
	})
	return _c
}

func (_c *MockSecretHasher_Verify_Call) Return(_a0 bool) *MockSecretHasher_Verify_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockSecretHasher_Verify_Call) RunAndReturn(run func(string, string) bool) *MockSecretHasher_Verify_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSecretHasher creates a new instance of MockSecretHasher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSecretHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSecretHasher {
	mock := &MockSecretHasher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
