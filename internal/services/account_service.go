package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/apponislam/vinies709-backend/domain"
)

// Config carries the lifecycle-relevant settings. Expiry windows are
// configuration, never hardcoded in the operations.
type Config struct {
	ClientURL       string
	OTPLength       int
	OTPTTL          time.Duration
	ResetTokenTTL   time.Duration
	VerificationTTL time.Duration
	EmailChangeTTL  time.Duration
}

// AccountServiceImpl implements domain.AccountService
type AccountServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	secrets     domain.SecretGenerator
	notifier    domain.NotificationService
	config      Config
}

// NewAccountService creates the account lifecycle service.
func NewAccountService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	secrets domain.SecretGenerator,
	notifier domain.NotificationService,
	config Config,
) domain.AccountService {
	return &AccountServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		secrets:     secrets,
		notifier:    notifier,
		config:      config,
	}
}

// Register implements domain.AccountService. The account starts active
// and unverified, with a verification token already attached.
func (s *AccountServiceImpl) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResult, error) {
	existing, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	if !domain.IsValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	hashedPassword, err := s.passwordSvc.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	verification, err := s.secrets.OpaqueToken(s.config.VerificationTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification token: %w", err)
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         input.Role,
		Phone:        input.Phone,
		Location:     input.Location,
		IsActive:     true,
	}
	user.SetEmailVerification(verification)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.notifier.SendVerification(user.Email, user.FullName(), s.verificationURL("/verify-email", user.Email, verification.Value))
	s.notifier.SendWelcome(user.Email, user.FullName())

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login implements domain.AccountService. Unknown email and wrong
// password return the same error so accounts cannot be enumerated.
func (s *AccountServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}
	if !user.IsEmailVerified {
		return nil, domain.ErrEmailNotVerified
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetByID implements domain.AccountService
func (s *AccountServiceImpl) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// RefreshAccessToken implements domain.AccountService. The refresh
// token itself is not rotated; only a new access token is minted.
// Every failure mode collapses to the same error.
func (s *AccountServiceImpl) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrRefreshRequired
	}

	claims, err := s.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", domain.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", domain.ErrTokenInvalid
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

// UpdateProfile implements domain.AccountService. Only name, phone and
// location are updatable here.
func (s *AccountServiceImpl) UpdateProfile(ctx context.Context, id uint, update domain.ProfileUpdate) (*domain.User, error) {
	fields := map[string]interface{}{}
	if update.FirstName != nil {
		fields["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		fields["last_name"] = *update.LastName
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.Location != nil {
		fields["location"] = *update.Location
	}

	return s.userRepo.UpdateFields(ctx, id, fields)
}

// ChangePassword implements domain.AccountService
func (s *AccountServiceImpl) ChangePassword(ctx context.Context, id uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, currentPassword) {
		return domain.ErrPasswordIncorrect
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	return s.userRepo.Update(ctx, user)
}

// SetPassword implements domain.AccountService. No current-password
// check: the caller is gated by role at the authorization layer.
func (s *AccountServiceImpl) SetPassword(ctx context.Context, id uint, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hashedPassword
	return s.userRepo.Update(ctx, user)
}

// verificationURL builds the client link embedded in verification
// mail.
func (s *AccountServiceImpl) verificationURL(path, email, token string) string {
	return fmt.Sprintf("%s%s?token=%s&email=%s", s.config.ClientURL, path, url.QueryEscape(token), url.QueryEscape(email))
}
