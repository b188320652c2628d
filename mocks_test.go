package userauth_test

import (
	"context"
	"sync"

	"github.com/averde/userauth"
	"github.com/stretchr/testify/mock"
)

// memoryUsers is an in-memory credential store honoring the same contract
// as the bun-backed repository: unique email on insert, sentinel errors.
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*userauth.User
}

var _ userauth.Users = (*memoryUsers)(nil)

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]*userauth.User{}}
}

func (m *memoryUsers) Insert(_ context.Context, user *userauth.User) (*userauth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.UserEmail]; exists {
		return nil, userauth.ErrDuplicateEmail
	}

	m.users[user.UserEmail] = user
	return user, nil
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*userauth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[email]
	if !ok {
		return nil, userauth.ErrIdentityNotFound
	}
	return user, nil
}

func (m *memoryUsers) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

// failingUsers reports a storage failure on every call.
type failingUsers struct {
	err error
}

var _ userauth.Users = (*failingUsers)(nil)

func (f *failingUsers) Insert(context.Context, *userauth.User) (*userauth.User, error) {
	return nil, f.err
}

func (f *failingUsers) FindByEmail(context.Context, string) (*userauth.User, error) {
	return nil, f.err
}

// MockLogger implements userauth.Logger for testing.
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...any) {
	m.Called(format, args)
}
