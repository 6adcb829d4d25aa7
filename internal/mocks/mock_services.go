package mocks

import (
	"sync"
	"time"

	"github.com/apponislam/vinies709-backend/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed_"+password
}

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateAccessTokenFunc  func(user *domain.User) (string, error)
	GenerateRefreshTokenFunc func(user *domain.User) (string, error)
	ValidateAccessTokenFunc  func(token string) (*domain.TokenClaims, error)
	ValidateRefreshTokenFunc func(token string) (*domain.TokenClaims, error)
}

func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

func (m *MockTokenService) GenerateAccessToken(user *domain.User) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(user)
	}
	return "access_token", nil
}

func (m *MockTokenService) GenerateRefreshToken(user *domain.User) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(user)
	}
	return "refresh_token", nil
}

func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

func (m *MockTokenService) ValidateRefreshToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateRefreshTokenFunc != nil {
		return m.ValidateRefreshTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// MockSecretGenerator implements domain.SecretGenerator for testing.
// Defaults are deterministic so flows can assert exact values.
type MockSecretGenerator struct {
	OpaqueTokenFunc func(ttl time.Duration) (domain.Secret, error)
	NumericCodeFunc func(digits int, ttl time.Duration) (domain.Secret, error)
}

func NewMockSecretGenerator() *MockSecretGenerator {
	return &MockSecretGenerator{}
}

func (m *MockSecretGenerator) OpaqueToken(ttl time.Duration) (domain.Secret, error) {
	if m.OpaqueTokenFunc != nil {
		return m.OpaqueTokenFunc(ttl)
	}
	return domain.Secret{Value: "opaque_token", ExpiresAt: time.Now().Add(ttl)}, nil
}

func (m *MockSecretGenerator) NumericCode(digits int, ttl time.Duration) (domain.Secret, error) {
	if m.NumericCodeFunc != nil {
		return m.NumericCodeFunc(digits, ttl)
	}
	return domain.Secret{Value: "123456", ExpiresAt: time.Now().Add(ttl)}, nil
}

// SentMail records one dispatched notification.
type SentMail struct {
	Kind string
	To   string
	Name string
	Arg  string
}

// MockNotificationService implements domain.NotificationService for
// testing, recording every dispatch.
type MockNotificationService struct {
	mu   sync.Mutex
	Sent []SentMail
}

func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

func (m *MockNotificationService) record(kind, to, name, arg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentMail{Kind: kind, To: to, Name: name, Arg: arg})
}

func (m *MockNotificationService) SendWelcome(to, name string) {
	m.record("welcome", to, name, "")
}

func (m *MockNotificationService) SendVerification(to, name, verificationURL string) {
	m.record("verification", to, name, verificationURL)
}

func (m *MockNotificationService) SendOTP(to, name, code string) {
	m.record("otp", to, name, code)
}

func (m *MockNotificationService) SendEmailChangeVerification(to, name, verificationURL string) {
	m.record("email_change", to, name, verificationURL)
}

// SentKinds returns the kinds dispatched, in order.
func (m *MockNotificationService) SentKinds() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	kinds := make([]string, len(m.Sent))
	for i, s := range m.Sent {
		kinds[i] = s.Kind
	}
	return kinds
}
