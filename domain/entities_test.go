package domain

import (
	"testing"
	"time"
)

func TestIsValidRole(t *testing.T) {
	valid := []string{
		RoleVendor, RoleBuyer, RoleDriver, RoleInventoryManager,
		RolePricer, RoleTreasurer, RoleManager, RoleClient, RoleSalesAgent,
	}
	for _, role := range valid {
		if !IsValidRole(role) {
			t.Errorf("expected %s to be valid", role)
		}
	}

	invalid := []string{"", "manager", "ADMIN", "SUPERUSER", "client "}
	for _, role := range invalid {
		if IsValidRole(role) {
			t.Errorf("expected %q to be invalid", role)
		}
	}
}

func TestUser_FullName(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		last     string
		expected string
	}{
		{"both names", "Jane", "Doe", "Jane Doe"},
		{"first only", "Jane", "", "Jane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{FirstName: tt.first, LastName: tt.last}
			if got := u.FullName(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUser_SecretPairs(t *testing.T) {
	u := &User{}
	s := Secret{Value: "123456", ExpiresAt: time.Now().Add(10 * time.Minute)}

	u.SetResetOTP(s)
	if u.ResetPasswordOTP == nil || u.ResetPasswordOTPExpiry == nil {
		t.Fatal("expected OTP and expiry set together")
	}
	if *u.ResetPasswordOTP != "123456" {
		t.Errorf("unexpected OTP %s", *u.ResetPasswordOTP)
	}
	u.ClearResetOTP()
	if u.ResetPasswordOTP != nil || u.ResetPasswordOTPExpiry != nil {
		t.Error("expected OTP and expiry cleared together")
	}

	u.SetResetToken(s)
	if u.ResetPasswordToken == nil || u.ResetPasswordTokenExpiry == nil {
		t.Fatal("expected reset token and expiry set together")
	}
	u.ClearResetToken()
	if u.ResetPasswordToken != nil || u.ResetPasswordTokenExpiry != nil {
		t.Error("expected reset token and expiry cleared together")
	}

	u.SetEmailVerification(s)
	if u.EmailVerificationToken == nil || u.EmailVerificationExpiry == nil {
		t.Fatal("expected verification token and expiry set together")
	}
	u.ClearEmailVerification()
	if u.EmailVerificationToken != nil || u.EmailVerificationExpiry != nil {
		t.Error("expected verification token and expiry cleared together")
	}
}

func TestUser_EmailChangeStaging(t *testing.T) {
	u := &User{Email: "old@example.com"}
	s := Secret{Value: "change_token", ExpiresAt: time.Now().Add(24 * time.Hour)}

	u.StageEmailChange("new@example.com", s)
	if u.Email != "old@example.com" {
		t.Errorf("expected primary email untouched, got %s", u.Email)
	}
	if u.PendingEmail == nil || *u.PendingEmail != "new@example.com" {
		t.Fatalf("expected pending email staged, got %v", u.PendingEmail)
	}
	if u.EmailChangeToken == nil || u.EmailChangeExpiry == nil {
		t.Fatal("expected change token and expiry set together")
	}

	u.PromotePendingEmail()
	if u.Email != "new@example.com" {
		t.Errorf("expected promoted email, got %s", u.Email)
	}
	if u.PendingEmail != nil || u.EmailChangeToken != nil || u.EmailChangeExpiry != nil {
		t.Error("expected staging fields cleared after promotion")
	}
}

func TestUser_PromoteWithoutPending(t *testing.T) {
	u := &User{Email: "old@example.com"}
	u.PromotePendingEmail()
	if u.Email != "old@example.com" {
		t.Errorf("expected email unchanged, got %s", u.Email)
	}
}
