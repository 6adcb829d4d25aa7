package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/apponislam/vinies709-backend/domain"
)

const opaqueTokenBytes = 32

// SecretGeneratorImpl implements domain.SecretGenerator using
// crypto/rand. It is stateless.
type SecretGeneratorImpl struct{}

// NewSecretGenerator creates a new secret generator.
func NewSecretGenerator() domain.SecretGenerator {
	return &SecretGeneratorImpl{}
}

// OpaqueToken implements domain.SecretGenerator. The token is a
// 64-character hex string, high-entropy and URL-safe.
func (g *SecretGeneratorImpl) OpaqueToken(ttl time.Duration) (domain.Secret, error) {
	bytes := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return domain.Secret{}, fmt.Errorf("failed to read random source: %w", err)
	}
	return domain.Secret{
		Value:     hex.EncodeToString(bytes),
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

// NumericCode implements domain.SecretGenerator. The code is
// zero-padded to the requested number of digits.
func (g *SecretGeneratorImpl) NumericCode(digits int, ttl time.Duration) (domain.Secret, error) {
	if digits <= 0 {
		digits = 6
	}
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return domain.Secret{}, fmt.Errorf("failed to read random source: %w", err)
	}
	return domain.Secret{
		Value:     fmt.Sprintf("%0*d", digits, n),
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}
