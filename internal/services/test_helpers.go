package services

import (
	"context"
	"testing"
	"time"

	"github.com/apponislam/vinies709-backend/domain"
	"github.com/apponislam/vinies709-backend/internal/mocks"
)

// testConfig returns the lifecycle settings used across tests.
func testConfig(t *testing.T) Config {
	t.Helper()

	return Config{
		ClientURL:       "https://app.example.com",
		OTPLength:       6,
		OTPTTL:          10 * time.Minute,
		ResetTokenTTL:   10 * time.Minute,
		VerificationTTL: 24 * time.Hour,
		EmailChangeTTL:  24 * time.Hour,
	}
}

// createAccountServiceForTest creates an AccountService with mock
// dependencies. Nil arguments get default mocks.
func createAccountServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	secrets domain.SecretGenerator,
	notifier domain.NotificationService) domain.AccountService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}
	if secrets == nil {
		secrets = mocks.NewMockSecretGenerator()
	}
	if notifier == nil {
		notifier = mocks.NewMockNotificationService()
	}

	return NewAccountService(userRepo, passwordSvc, tokenSvc, secrets, notifier, testConfig(t))
}

// createVerifiedUser creates an active, email-verified user entity for
// testing
func createVerifiedUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:              1,
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		PasswordHash:    "hashed_password123",
		Role:            domain.RoleClient,
		Phone:           "+1234567890",
		Location:        "Springfield",
		IsActive:        true,
		IsEmailVerified: true,
		CreatedAt:       time.Now().Add(-24 * time.Hour),
		UpdatedAt:       time.Now().Add(-1 * time.Hour),
	}
}

// createInactiveUser creates a deactivated user entity for testing
func createInactiveUser(t *testing.T) *domain.User {
	t.Helper()

	user := createVerifiedUser(t)
	user.IsActive = false
	return user
}

// createUnverifiedUser creates an active user whose email has not been
// verified yet
func createUnverifiedUser(t *testing.T) *domain.User {
	t.Helper()

	user := createVerifiedUser(t)
	user.IsEmailVerified = false
	token := "pending_verification_token"
	expiry := time.Now().Add(24 * time.Hour)
	user.EmailVerificationToken = &token
	user.EmailVerificationExpiry = &expiry
	return user
}

// createUserWithOTP creates a verified user with a live reset OTP
func createUserWithOTP(t *testing.T, otp string, expiry time.Time) *domain.User {
	t.Helper()

	user := createVerifiedUser(t)
	user.ResetPasswordOTP = &otp
	user.ResetPasswordOTPExpiry = &expiry
	return user
}

// createTestContext creates a context for testing with timeout
func createTestContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}
