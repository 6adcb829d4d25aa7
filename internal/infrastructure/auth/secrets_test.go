package auth

import (
	"testing"
	"time"
)

func TestSecretGenerator_OpaqueToken(t *testing.T) {
	gen := NewSecretGenerator()

	before := time.Now()
	secret, err := gen.OpaqueToken(10 * time.Minute)
	if err != nil {
		t.Fatalf("OpaqueToken failed: %v", err)
	}

	if len(secret.Value) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(secret.Value))
	}
	for _, c := range secret.Value {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			t.Fatalf("unexpected character %q in token", c)
		}
	}

	if secret.ExpiresAt.Before(before.Add(10 * time.Minute)) {
		t.Errorf("expiry too early: %v", secret.ExpiresAt)
	}
	if secret.ExpiresAt.After(time.Now().Add(10*time.Minute + time.Second)) {
		t.Errorf("expiry too late: %v", secret.ExpiresAt)
	}

	other, err := gen.OpaqueToken(10 * time.Minute)
	if err != nil {
		t.Fatalf("OpaqueToken failed: %v", err)
	}
	if other.Value == secret.Value {
		t.Error("expected two tokens to differ")
	}
}

func TestSecretGenerator_NumericCode(t *testing.T) {
	gen := NewSecretGenerator()

	tests := []struct {
		name   string
		digits int
		want   int
	}{
		{"six digits", 6, 6},
		{"four digits", 4, 4},
		{"zero falls back to six", 0, 6},
		{"negative falls back to six", -1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret, err := gen.NumericCode(tt.digits, 10*time.Minute)
			if err != nil {
				t.Fatalf("NumericCode failed: %v", err)
			}
			if len(secret.Value) != tt.want {
				t.Errorf("expected %d digits, got %q", tt.want, secret.Value)
			}
			for _, c := range secret.Value {
				if c < '0' || c > '9' {
					t.Fatalf("unexpected character %q in code", c)
				}
			}
		})
	}
}

// Codes keep their leading zeros: the code is a string, not a number.
func TestSecretGenerator_NumericCodeZeroPadded(t *testing.T) {
	gen := NewSecretGenerator()

	for i := 0; i < 50; i++ {
		secret, err := gen.NumericCode(2, time.Minute)
		if err != nil {
			t.Fatalf("NumericCode failed: %v", err)
		}
		if len(secret.Value) != 2 {
			t.Fatalf("expected 2 digits, got %q", secret.Value)
		}
	}
}
