package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/apponislam/vinies709-backend/domain"
	"github.com/apponislam/vinies709-backend/internal/mocks"
)

func TestAccountServiceImpl_Register(t *testing.T) {
	tests := []struct {
		name           string
		input          domain.RegisterInput
		setupMocks     func(*mocks.MockUserRepository, *mocks.MockPasswordService, *mocks.MockSecretGenerator)
		expectedError  error
		validateResult func(t *testing.T, result *domain.AuthResult, notifier *mocks.MockNotificationService)
	}{
		{
			name: "successful registration",
			input: domain.RegisterInput{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "newuser@example.com",
				Password:  "securepassword123",
				Role:      domain.RoleClient,
				Phone:     "+1234567890",
				Location:  "Springfield",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, secrets *mocks.MockSecretGenerator) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					user.ID = 1
					return nil
				}
			},
			expectedError: nil,
			validateResult: func(t *testing.T, result *domain.AuthResult, notifier *mocks.MockNotificationService) {
				if result == nil {
					t.Fatal("result is nil")
				}
				user := result.User
				if user.Email != "newuser@example.com" {
					t.Errorf("expected email %s, got %s", "newuser@example.com", user.Email)
				}
				if user.PasswordHash != "hashed_securepassword123" {
					t.Errorf("expected password hash %s, got %s", "hashed_securepassword123", user.PasswordHash)
				}
				if !user.IsActive {
					t.Error("expected new account to be active")
				}
				if user.IsEmailVerified {
					t.Error("expected new account to be unverified")
				}
				if user.EmailVerificationToken == nil || user.EmailVerificationExpiry == nil {
					t.Error("expected verification token and expiry to be set together")
				}
				if result.AccessToken != "access_token" || result.RefreshToken != "refresh_token" {
					t.Errorf("expected both tokens issued, got %q / %q", result.AccessToken, result.RefreshToken)
				}
				kinds := notifier.SentKinds()
				if len(kinds) != 2 || kinds[0] != "verification" || kinds[1] != "welcome" {
					t.Errorf("expected verification then welcome mail, got %v", kinds)
				}
				if !strings.Contains(notifier.Sent[0].Arg, "token=opaque_token") {
					t.Errorf("expected verification link to carry the token, got %s", notifier.Sent[0].Arg)
				}
			},
		},
		{
			name: "email already taken",
			input: domain.RegisterInput{
				Email:    "existing@example.com",
				Password: "password123",
				Role:     domain.RoleClient,
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, secrets *mocks.MockSecretGenerator) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
			},
			expectedError: domain.ErrEmailTaken,
			validateResult: func(t *testing.T, result *domain.AuthResult, notifier *mocks.MockNotificationService) {
				if result != nil {
					t.Error("expected result to be nil when email taken")
				}
				if len(notifier.Sent) != 0 {
					t.Errorf("expected no mail on failure, got %v", notifier.SentKinds())
				}
			},
		},
		{
			name: "unknown role rejected",
			input: domain.RegisterInput{
				Email:    "newuser@example.com",
				Password: "password123",
				Role:     "SUPERUSER",
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, secrets *mocks.MockSecretGenerator) {
			},
			expectedError: domain.ErrInvalidRole,
			validateResult: func(t *testing.T, result *domain.AuthResult, notifier *mocks.MockNotificationService) {
				if result != nil {
					t.Error("expected result to be nil for unknown role")
				}
			},
		},
		{
			name: "password hashing fails",
			input: domain.RegisterInput{
				Email:    "newuser@example.com",
				Password: "password123",
				Role:     domain.RoleClient,
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, secrets *mocks.MockSecretGenerator) {
				passwordSvc.HashFunc = func(password string) (string, error) {
					return "", errors.New("hashing failed")
				}
			},
			expectedError: fmt.Errorf("failed to hash password: %w", errors.New("hashing failed")),
			validateResult: func(t *testing.T, result *domain.AuthResult, notifier *mocks.MockNotificationService) {
				if result != nil {
					t.Error("expected result to be nil when hashing fails")
				}
			},
		},
		{
			name: "user creation fails",
			input: domain.RegisterInput{
				Email:    "newuser@example.com",
				Password: "password123",
				Role:     domain.RoleClient,
			},
			setupMocks: func(userRepo *mocks.MockUserRepository, passwordSvc *mocks.MockPasswordService, secrets *mocks.MockSecretGenerator) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					return errors.New("database error")
				}
			},
			expectedError: fmt.Errorf("failed to create user: %w", errors.New("database error")),
			validateResult: func(t *testing.T, result *domain.AuthResult, notifier *mocks.MockNotificationService) {
				if result != nil {
					t.Error("expected result to be nil when creation fails")
				}
				if len(notifier.Sent) != 0 {
					t.Errorf("expected no mail when creation fails, got %v", notifier.SentKinds())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			passwordSvc := mocks.NewMockPasswordService()
			secrets := mocks.NewMockSecretGenerator()
			notifier := mocks.NewMockNotificationService()

			tt.setupMocks(userRepo, passwordSvc, secrets)

			svc := createAccountServiceForTest(t, userRepo, passwordSvc, nil, secrets, notifier)
			ctx := createTestContext(t)

			result, err := svc.Register(ctx, tt.input)

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError.Error()) {
					t.Errorf("expected error containing '%s', got '%s'", tt.expectedError.Error(), err.Error())
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			tt.validateResult(t, result, notifier)
		})
	}
}

func TestAccountServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		password       string
		setupMocks     func(*mocks.MockUserRepository)
		expectedError  error
		validateResult func(t *testing.T, result *domain.AuthResult)
	}{
		{
			name:     "successful login",
			email:    "jane@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				testUser := createVerifiedUser(t)
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return testUser, nil
				}
			},
			expectedError: nil,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result == nil {
					t.Fatal("result is nil")
				}
				if result.User.LastLogin == nil {
					t.Error("expected LastLogin to be stamped")
				}
				if result.AccessToken == "" || result.RefreshToken == "" {
					t.Error("expected both tokens issued")
				}
			},
		},
		{
			name:     "unknown email returns invalid credentials",
			email:    "nonexistent@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
			},
			expectedError: domain.ErrInvalidCredentials,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil when user not found")
				}
			},
		},
		{
			name:     "wrong password returns invalid credentials",
			email:    "jane@example.com",
			password: "wrongpassword",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				testUser := createVerifiedUser(t)
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return testUser, nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil for wrong password")
				}
			},
		},
		{
			name:     "inactive account",
			email:    "jane@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				inactive := createInactiveUser(t)
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return inactive, nil
				}
			},
			expectedError: domain.ErrAccountInactive,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil for inactive account")
				}
			},
		},
		{
			name:     "unverified email",
			email:    "jane@example.com",
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				unverified := createUnverifiedUser(t)
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return unverified, nil
				}
			},
			expectedError: domain.ErrEmailNotVerified,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil for unverified email")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tt.setupMocks(userRepo)

			svc := createAccountServiceForTest(t, userRepo, nil, nil, nil, nil)
			ctx := createTestContext(t)

			result, err := svc.Login(ctx, tt.email, tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			tt.validateResult(t, result)
		})
	}
}

// Inactive and unverified checks run only after the password check, so
// a wrong password on a deactivated account still reads as invalid
// credentials.
func TestAccountServiceImpl_Login_PasswordCheckedBeforeStatus(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	inactive := createInactiveUser(t)
	userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
		return inactive, nil
	}

	svc := createAccountServiceForTest(t, userRepo, nil, nil, nil, nil)

	_, err := svc.Login(createTestContext(t), "jane@example.com", "wrongpassword")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountServiceImpl_RefreshAccessToken(t *testing.T) {
	tests := []struct {
		name          string
		refreshToken  string
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockTokenService)
		expectedError error
		expectedToken string
	}{
		{
			name:         "successful refresh",
			refreshToken: "valid_refresh_token",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{UserID: 1, Email: "jane@example.com", Role: domain.RoleClient}, nil
				}
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
			},
			expectedError: nil,
			expectedToken: "access_token",
		},
		{
			name:          "missing token",
			refreshToken:  "",
			setupMocks:    func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {},
			expectedError: domain.ErrRefreshRequired,
		},
		{
			name:          "signature rejected",
			refreshToken:  "tampered",
			setupMocks:    func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {},
			expectedError: domain.ErrTokenInvalid,
		},
		{
			name:         "expired token collapses to invalid",
			refreshToken: "expired",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return nil, domain.ErrTokenExpired
				}
			},
			expectedError: domain.ErrTokenInvalid,
		},
		{
			name:         "subject deleted since issuance",
			refreshToken: "valid_refresh_token",
			setupMocks: func(userRepo *mocks.MockUserRepository, tokenSvc *mocks.MockTokenService) {
				tokenSvc.ValidateRefreshTokenFunc = func(token string) (*domain.TokenClaims, error) {
					return &domain.TokenClaims{UserID: 42}, nil
				}
			},
			expectedError: domain.ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tokenSvc := mocks.NewMockTokenService()
			tt.setupMocks(userRepo, tokenSvc)

			svc := createAccountServiceForTest(t, userRepo, nil, tokenSvc, nil, nil)

			token, err := svc.RefreshAccessToken(createTestContext(t), tt.refreshToken)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected error %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if token != tt.expectedToken {
				t.Errorf("expected token %q, got %q", tt.expectedToken, token)
			}
		})
	}
}

func TestAccountServiceImpl_UpdateProfile(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name           string
		update         domain.ProfileUpdate
		expectedFields map[string]interface{}
	}{
		{
			name:   "partial update only touches provided fields",
			update: domain.ProfileUpdate{Phone: str("+9876543210")},
			expectedFields: map[string]interface{}{
				"phone": "+9876543210",
			},
		},
		{
			name: "full update",
			update: domain.ProfileUpdate{
				FirstName: str("John"),
				LastName:  str("Smith"),
				Phone:     str("+1111111111"),
				Location:  str("Shelbyville"),
			},
			expectedFields: map[string]interface{}{
				"first_name": "John",
				"last_name":  "Smith",
				"phone":      "+1111111111",
				"location":   "Shelbyville",
			},
		},
		{
			name:           "empty update",
			update:         domain.ProfileUpdate{},
			expectedFields: map[string]interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			var captured map[string]interface{}
			userRepo.UpdateFieldsFunc = func(ctx context.Context, id uint, fields map[string]interface{}) (*domain.User, error) {
				captured = fields
				return createVerifiedUser(t), nil
			}

			svc := createAccountServiceForTest(t, userRepo, nil, nil, nil, nil)

			if _, err := svc.UpdateProfile(createTestContext(t), 1, tt.update); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if len(captured) != len(tt.expectedFields) {
				t.Fatalf("expected %d fields, got %d: %v", len(tt.expectedFields), len(captured), captured)
			}
			for k, v := range tt.expectedFields {
				if captured[k] != v {
					t.Errorf("expected field %s=%v, got %v", k, v, captured[k])
				}
			}
		})
	}
}

func TestAccountServiceImpl_ChangePassword(t *testing.T) {
	tests := []struct {
		name            string
		currentPassword string
		setupMocks      func(*mocks.MockUserRepository)
		expectedError   error
	}{
		{
			name:            "successful change",
			currentPassword: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				testUser := createVerifiedUser(t)
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return testUser, nil
				}
				userRepo.UpdateFunc = func(ctx context.Context, user *domain.User) error {
					if user.PasswordHash != "hashed_newpassword" {
						t.Errorf("expected new hash persisted, got %s", user.PasswordHash)
					}
					return nil
				}
			},
			expectedError: nil,
		},
		{
			name:            "wrong current password",
			currentPassword: "wrongpassword",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return createVerifiedUser(t), nil
				}
			},
			expectedError: domain.ErrPasswordIncorrect,
		},
		{
			name:            "user not found",
			currentPassword: "password123",
			setupMocks:      func(userRepo *mocks.MockUserRepository) {},
			expectedError:   domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tt.setupMocks(userRepo)

			svc := createAccountServiceForTest(t, userRepo, nil, nil, nil, nil)

			err := svc.ChangePassword(createTestContext(t), 1, tt.currentPassword, "newpassword")
			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected error %v, got %v", tt.expectedError, err)
			}
		})
	}
}

func TestAccountServiceImpl_SetPassword(t *testing.T) {
	t.Run("replaces hash without current password", func(t *testing.T) {
		userRepo := mocks.NewMockUserRepository()
		testUser := createVerifiedUser(t)
		userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return testUser, nil
		}
		var saved *domain.User
		userRepo.UpdateFunc = func(ctx context.Context, user *domain.User) error {
			saved = user
			return nil
		}

		svc := createAccountServiceForTest(t, userRepo, nil, nil, nil, nil)

		if err := svc.SetPassword(createTestContext(t), 1, "forcedpassword"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if saved == nil || saved.PasswordHash != "hashed_forcedpassword" {
			t.Errorf("expected forced hash persisted, got %+v", saved)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := createAccountServiceForTest(t, nil, nil, nil, nil, nil)

		err := svc.SetPassword(createTestContext(t), 99, "forcedpassword")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
