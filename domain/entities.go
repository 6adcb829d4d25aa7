package domain

import "time"

// Account roles. The set is closed: adding a role is a contract
// change, not configuration.
const (
	RoleVendor           = "VENDOR"
	RoleBuyer            = "BUYER"
	RoleDriver           = "DRIVER"
	RoleInventoryManager = "INVENTORY_MANAGER"
	RolePricer           = "PRICER"
	RoleTreasurer        = "TREASURER"
	RoleManager          = "MANAGER"
	RoleClient           = "CLIENT"
	RoleSalesAgent       = "SALES_AGENT"
)

var validRoles = map[string]struct{}{
	RoleVendor:           {},
	RoleBuyer:            {},
	RoleDriver:           {},
	RoleInventoryManager: {},
	RolePricer:           {},
	RoleTreasurer:        {},
	RoleManager:          {},
	RoleClient:           {},
	RoleSalesAgent:       {},
}

// IsValidRole reports whether role belongs to the closed role set.
func IsValidRole(role string) bool {
	_, ok := validRoles[role]
	return ok
}

// Secret is a one-time credential paired with its expiry. The pair is
// always stored and cleared together.
type Secret struct {
	Value     string
	ExpiresAt time.Time
}

// User represents an account in the system. PasswordHash and the
// ephemeral secret fields never appear in outward-facing payloads.
type User struct {
	ID           uint
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	Phone        string
	Location     string

	IsActive        bool
	IsEmailVerified bool
	LastLogin       *time.Time

	// Password reset: a short numeric OTP first, then an opaque token
	// scoped to the immediately-following reset call.
	ResetPasswordOTP         *string
	ResetPasswordOTPExpiry   *time.Time
	ResetPasswordToken       *string
	ResetPasswordTokenExpiry *time.Time

	// Registration email verification.
	EmailVerificationToken  *string
	EmailVerificationExpiry *time.Time

	// Email change: the new address is staged, not applied, until the
	// owner proves receipt at the new address.
	PendingEmail      *string
	EmailChangeToken  *string
	EmailChangeExpiry *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the display name used in outbound mail.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// SetResetOTP stores a new reset OTP, overwriting any previous one.
func (u *User) SetResetOTP(s Secret) {
	u.ResetPasswordOTP = &s.Value
	u.ResetPasswordOTPExpiry = &s.ExpiresAt
}

// ClearResetOTP removes the OTP and its expiry together.
func (u *User) ClearResetOTP() {
	u.ResetPasswordOTP = nil
	u.ResetPasswordOTPExpiry = nil
}

// SetResetToken stores the opaque reset token issued after OTP success.
func (u *User) SetResetToken(s Secret) {
	u.ResetPasswordToken = &s.Value
	u.ResetPasswordTokenExpiry = &s.ExpiresAt
}

// ClearResetToken removes the reset token and its expiry together.
func (u *User) ClearResetToken() {
	u.ResetPasswordToken = nil
	u.ResetPasswordTokenExpiry = nil
}

// SetEmailVerification stores a registration verification token,
// rotating any previous one.
func (u *User) SetEmailVerification(s Secret) {
	u.EmailVerificationToken = &s.Value
	u.EmailVerificationExpiry = &s.ExpiresAt
}

// ClearEmailVerification removes the verification token and expiry.
func (u *User) ClearEmailVerification() {
	u.EmailVerificationToken = nil
	u.EmailVerificationExpiry = nil
}

// StageEmailChange stages a new address with its verification token.
// The primary email is untouched until VerifyNewEmail promotes it.
func (u *User) StageEmailChange(newEmail string, s Secret) {
	u.PendingEmail = &newEmail
	u.EmailChangeToken = &s.Value
	u.EmailChangeExpiry = &s.ExpiresAt
}

// ClearEmailChange drops all email-change staging fields.
func (u *User) ClearEmailChange() {
	u.PendingEmail = nil
	u.EmailChangeToken = nil
	u.EmailChangeExpiry = nil
}

// PromotePendingEmail applies the staged address as the primary email
// and clears the staging fields.
func (u *User) PromotePendingEmail() {
	if u.PendingEmail != nil {
		u.Email = *u.PendingEmail
	}
	u.ClearEmailChange()
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	Phone     string
	Location  string
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave
// unchanged"; email, role and credential fields are not updatable here.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Location  *string
}

// AuthResult represents a successful credential issuance.
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the identity claims carried by a JWT.
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
