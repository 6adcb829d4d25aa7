package mocks

import (
	"context"

	"github.com/apponislam/vinies709-backend/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc                  func(ctx context.Context, user *domain.User) error
	FindByEmailFunc             func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc                func(ctx context.Context, id uint) (*domain.User, error)
	FindByRoleFunc              func(ctx context.Context, role string) (*domain.User, error)
	FindByResetTokenFunc        func(ctx context.Context, token string) (*domain.User, error)
	FindByVerificationTokenFunc func(ctx context.Context, email, token string) (*domain.User, error)
	FindByPendingEmailFunc      func(ctx context.Context, pendingEmail, token string) (*domain.User, error)
	UpdateFunc                  func(ctx context.Context, user *domain.User) error
	UpdateFieldsFunc            func(ctx context.Context, id uint, fields map[string]interface{}) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository with default
// behaviors: every lookup misses and every write succeeds.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role string) (*domain.User, error) {
	if m.FindByRoleFunc != nil {
		return m.FindByRoleFunc(ctx, role)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByResetToken(ctx context.Context, token string) (*domain.User, error) {
	if m.FindByResetTokenFunc != nil {
		return m.FindByResetTokenFunc(ctx, token)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByVerificationToken(ctx context.Context, email, token string) (*domain.User, error) {
	if m.FindByVerificationTokenFunc != nil {
		return m.FindByVerificationTokenFunc(ctx, email, token)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) FindByPendingEmail(ctx context.Context, pendingEmail, token string) (*domain.User, error) {
	if m.FindByPendingEmailFunc != nil {
		return m.FindByPendingEmailFunc(ctx, pendingEmail, token)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*domain.User, error) {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil, domain.ErrUserNotFound
}
