package domain

import (
	"context"
	"time"
)

// UserRepository defines account data access operations. The secret
// lookups build the expiry filter into the query: an expired token is
// indistinguishable from an absent one.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByRole(ctx context.Context, role string) (*User, error)
	FindByResetToken(ctx context.Context, token string) (*User, error)
	FindByVerificationToken(ctx context.Context, email, token string) (*User, error)
	FindByPendingEmail(ctx context.Context, pendingEmail, token string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (*User, error)
}

// PasswordService defines one-way password hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines signed session token operations. Access and
// refresh tokens use independent secret/TTL pairs.
type TokenService interface {
	GenerateAccessToken(user *User) (string, error)
	GenerateRefreshToken(user *User) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

// SecretGenerator produces random one-time secrets with attached
// expiry timestamps.
type SecretGenerator interface {
	OpaqueToken(ttl time.Duration) (Secret, error)
	NumericCode(digits int, ttl time.Duration) (Secret, error)
}

// NotificationService defines outbound mail dispatch. All methods are
// fire-and-forget: delivery failure never reaches the caller.
type NotificationService interface {
	SendWelcome(to, name string)
	SendVerification(to, name, verificationURL string)
	SendOTP(to, name, code string)
	SendEmailChangeVerification(to, name, verificationURL string)
}

// AccountService defines the account lifecycle business logic.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)

	VerifyEmail(ctx context.Context, email, token string) error
	ResendVerification(ctx context.Context, email string) error

	RequestPasswordReset(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) (string, error)
	ResendOTP(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error

	UpdateProfile(ctx context.Context, id uint, update ProfileUpdate) (*User, error)
	ChangePassword(ctx context.Context, id uint, currentPassword, newPassword string) error

	UpdateEmail(ctx context.Context, id uint, newEmail, password string) error
	ResendEmailUpdate(ctx context.Context, id uint, password string) error
	VerifyNewEmail(ctx context.Context, pendingEmail, token string) error

	SetPassword(ctx context.Context, id uint, newPassword string) error
}
