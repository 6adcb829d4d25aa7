package domain

import "errors"

// Account errors
var (
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown email and wrong
	// password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already in use")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidRole        = errors.New("invalid role")
	ErrRoleMismatch       = errors.New("role mismatch")
)

// One-time secret errors
var (
	ErrNoOTPRequest        = errors.New("no OTP request found")
	ErrOTPExpired          = errors.New("OTP expired")
	ErrOTPInvalid          = errors.New("invalid OTP")
	ErrResetTokenInvalid   = errors.New("invalid or expired token")
	ErrVerificationInvalid = errors.New("invalid or expired verification link")
	ErrAlreadyVerified     = errors.New("email already verified")
	ErrNoPendingEmail      = errors.New("no pending email change")
	ErrPasswordIncorrect   = errors.New("password is incorrect")
)

// Token errors
var (
	ErrTokenInvalid    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token has expired")
	ErrTokenMalformed  = errors.New("malformed token")
	ErrRefreshRequired = errors.New("refresh token required")
)
