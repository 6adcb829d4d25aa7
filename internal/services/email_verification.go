package services

import (
	"context"
	"fmt"

	"github.com/apponislam/vinies709-backend/domain"
)

// VerifyEmail implements domain.AccountService. Wrong token, wrong
// email and expired token all fail the same way.
func (s *AccountServiceImpl) VerifyEmail(ctx context.Context, email, token string) error {
	user, err := s.userRepo.FindByVerificationToken(ctx, email, token)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.ErrVerificationInvalid
		}
		return err
	}

	user.IsEmailVerified = true
	user.ClearEmailVerification()
	return s.userRepo.Update(ctx, user)
}

// ResendVerification implements domain.AccountService. The token is
// rotated; the previous link stops working.
func (s *AccountServiceImpl) ResendVerification(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.IsEmailVerified {
		return domain.ErrAlreadyVerified
	}

	verification, err := s.secrets.OpaqueToken(s.config.VerificationTTL)
	if err != nil {
		return fmt.Errorf("failed to generate verification token: %w", err)
	}

	user.SetEmailVerification(verification)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to store verification token: %w", err)
	}

	s.notifier.SendVerification(user.Email, user.FullName(), s.verificationURL("/verify-email", user.Email, verification.Value))
	return nil
}

// UpdateEmail implements domain.AccountService. The new address is
// staged and verified by mail to that address only; the primary email
// stays untouched until VerifyNewEmail.
func (s *AccountServiceImpl) UpdateEmail(ctx context.Context, id uint, newEmail, password string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return domain.ErrPasswordIncorrect
	}

	if existing, err := s.userRepo.FindByEmail(ctx, newEmail); err == nil && existing != nil {
		return domain.ErrEmailTaken
	}

	change, err := s.secrets.OpaqueToken(s.config.EmailChangeTTL)
	if err != nil {
		return fmt.Errorf("failed to generate email change token: %w", err)
	}

	user.StageEmailChange(newEmail, change)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to stage email change: %w", err)
	}

	s.notifier.SendEmailChangeVerification(newEmail, user.FullName(), s.verificationURL("/verify-new-email", newEmail, change.Value))
	return nil
}

// ResendEmailUpdate implements domain.AccountService
func (s *AccountServiceImpl) ResendEmailUpdate(ctx context.Context, id uint, password string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.PendingEmail == nil {
		return domain.ErrNoPendingEmail
	}
	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return domain.ErrPasswordIncorrect
	}

	change, err := s.secrets.OpaqueToken(s.config.EmailChangeTTL)
	if err != nil {
		return fmt.Errorf("failed to generate email change token: %w", err)
	}

	pending := *user.PendingEmail
	user.StageEmailChange(pending, change)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to rotate email change token: %w", err)
	}

	s.notifier.SendEmailChangeVerification(pending, user.FullName(), s.verificationURL("/verify-new-email", pending, change.Value))
	return nil
}

// VerifyNewEmail implements domain.AccountService. A stale or expired
// token leaves the primary email untouched.
func (s *AccountServiceImpl) VerifyNewEmail(ctx context.Context, pendingEmail, token string) error {
	user, err := s.userRepo.FindByPendingEmail(ctx, pendingEmail, token)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.ErrVerificationInvalid
		}
		return err
	}

	user.PromotePendingEmail()
	return s.userRepo.Update(ctx, user)
}
