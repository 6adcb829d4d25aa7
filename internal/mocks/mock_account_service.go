package mocks

import (
	"context"

	"github.com/apponislam/vinies709-backend/domain"
)

// MockAccountService implements domain.AccountService for handler
// tests
type MockAccountService struct {
	RegisterFunc             func(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error)
	LoginFunc                func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	GetByIDFunc              func(ctx context.Context, id uint) (*domain.User, error)
	RefreshAccessTokenFunc   func(ctx context.Context, refreshToken string) (string, error)
	VerifyEmailFunc          func(ctx context.Context, email, token string) error
	ResendVerificationFunc   func(ctx context.Context, email string) error
	RequestPasswordResetFunc func(ctx context.Context, email string) error
	VerifyOTPFunc            func(ctx context.Context, email, otp string) (string, error)
	ResendOTPFunc            func(ctx context.Context, email string) error
	ResetPasswordFunc        func(ctx context.Context, token, newPassword string) error
	UpdateProfileFunc        func(ctx context.Context, id uint, update domain.ProfileUpdate) (*domain.User, error)
	ChangePasswordFunc       func(ctx context.Context, id uint, currentPassword, newPassword string) error
	UpdateEmailFunc          func(ctx context.Context, id uint, newEmail, password string) error
	ResendEmailUpdateFunc    func(ctx context.Context, id uint, password string) error
	VerifyNewEmailFunc       func(ctx context.Context, pendingEmail, token string) error
	SetPasswordFunc          func(ctx context.Context, id uint, newPassword string) error
}

func NewMockAccountService() *MockAccountService {
	return &MockAccountService{}
}

func (m *MockAccountService) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	return nil, domain.ErrEmailTaken
}

func (m *MockAccountService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

func (m *MockAccountService) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAccountService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	if m.RefreshAccessTokenFunc != nil {
		return m.RefreshAccessTokenFunc(ctx, refreshToken)
	}
	return "", domain.ErrTokenInvalid
}

func (m *MockAccountService) VerifyEmail(ctx context.Context, email, token string) error {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, email, token)
	}
	return domain.ErrVerificationInvalid
}

func (m *MockAccountService) ResendVerification(ctx context.Context, email string) error {
	if m.ResendVerificationFunc != nil {
		return m.ResendVerificationFunc(ctx, email)
	}
	return domain.ErrUserNotFound
}

func (m *MockAccountService) RequestPasswordReset(ctx context.Context, email string) error {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email)
	}
	return domain.ErrUserNotFound
}

func (m *MockAccountService) VerifyOTP(ctx context.Context, email, otp string) (string, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, otp)
	}
	return "", domain.ErrNoOTPRequest
}

func (m *MockAccountService) ResendOTP(ctx context.Context, email string) error {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, email)
	}
	return domain.ErrUserNotFound
}

func (m *MockAccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, newPassword)
	}
	return domain.ErrResetTokenInvalid
}

func (m *MockAccountService) UpdateProfile(ctx context.Context, id uint, update domain.ProfileUpdate) (*domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, update)
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockAccountService) ChangePassword(ctx context.Context, id uint, currentPassword, newPassword string) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, id, currentPassword, newPassword)
	}
	return domain.ErrUserNotFound
}

func (m *MockAccountService) UpdateEmail(ctx context.Context, id uint, newEmail, password string) error {
	if m.UpdateEmailFunc != nil {
		return m.UpdateEmailFunc(ctx, id, newEmail, password)
	}
	return domain.ErrUserNotFound
}

func (m *MockAccountService) ResendEmailUpdate(ctx context.Context, id uint, password string) error {
	if m.ResendEmailUpdateFunc != nil {
		return m.ResendEmailUpdateFunc(ctx, id, password)
	}
	return domain.ErrUserNotFound
}

func (m *MockAccountService) VerifyNewEmail(ctx context.Context, pendingEmail, token string) error {
	if m.VerifyNewEmailFunc != nil {
		return m.VerifyNewEmailFunc(ctx, pendingEmail, token)
	}
	return domain.ErrVerificationInvalid
}

func (m *MockAccountService) SetPassword(ctx context.Context, id uint, newPassword string) error {
	if m.SetPasswordFunc != nil {
		return m.SetPasswordFunc(ctx, id, newPassword)
	}
	return domain.ErrUserNotFound
}
