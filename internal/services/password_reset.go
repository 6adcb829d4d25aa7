package services

import (
	"context"
	"fmt"
	"time"

	"github.com/apponislam/vinies709-backend/domain"
)

// RequestPasswordReset implements domain.AccountService. A new OTP
// overwrites whatever was stored before.
func (s *AccountServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp, err := s.secrets.NumericCode(s.config.OTPLength, s.config.OTPTTL)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	user.SetResetOTP(otp)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	s.notifier.SendOTP(user.Email, user.FirstName, otp.Value)
	return nil
}

// VerifyOTP implements domain.AccountService. On success the OTP is
// cleared and replaced by an opaque reset token scoped to the
// immediately-following ResetPassword call. A failed check never
// clears or rotates the stored OTP.
func (s *AccountServiceImpl) VerifyOTP(ctx context.Context, email, otp string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if user.ResetPasswordOTP == nil || user.ResetPasswordOTPExpiry == nil {
		return "", domain.ErrNoOTPRequest
	}
	if user.ResetPasswordOTPExpiry.Before(time.Now()) {
		return "", domain.ErrOTPExpired
	}
	if *user.ResetPasswordOTP != otp {
		return "", domain.ErrOTPInvalid
	}

	resetToken, err := s.secrets.OpaqueToken(s.config.ResetTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	// Clear and replace in a single save so exactly one reset secret
	// is live.
	user.ClearResetOTP()
	user.SetResetToken(resetToken)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	return resetToken.Value, nil
}

// ResendOTP implements domain.AccountService
func (s *AccountServiceImpl) ResendOTP(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp, err := s.secrets.NumericCode(s.config.OTPLength, s.config.OTPTTL)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	user.SetResetOTP(otp)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	s.notifier.SendOTP(user.Email, user.FirstName, otp.Value)
	return nil
}

// ResetPassword implements domain.AccountService. The token lookup
// carries the expiry filter, so wrong, expired and already-used tokens
// are indistinguishable.
func (s *AccountServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.ErrResetTokenInvalid
		}
		return err
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	user.ClearResetToken()
	return s.userRepo.Update(ctx, user)
}
