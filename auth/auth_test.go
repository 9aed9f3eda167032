package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"elective-hub/domain"
	apperrors "elective-hub/errors"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "MonMotDePasseTr0pSûr!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	// Wrong password must not match
	match, err = ComparePassword("MauvaisMDP", hash)
	req.NoError(err)
	req.False(match)
}

func TestAccountValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		acc     Account
		wantErr bool
	}{
		{"Valid account", Account{"alice", "Alice Martin", "ComplexPass123!"}, false},
		{"Missing user id", Account{"", "Alice Martin", "ComplexPass123!"}, true},
		{"Password too short", Account{"alice", "Alice Martin", "Short1!"}, true},
		{"Missing digit", Account{"alice", "Alice Martin", "NoDigitPassword!"}, true},
		{"Missing special char", Account{"alice", "Alice Martin", "NoSpecialChar123"}, true},
		{"Missing uppercase", Account{"alice", "Alice Martin", "nouppercase-123!"}, true},
		{"Password too long (edge case)", Account{"alice", "Alice Martin", strings.Repeat("a", 73)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAccount(tt.acc)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestTokenService_GenerateAndVerify(t *testing.T) {
	req := require.New(t)
	service := NewTokenService("test-secret", time.Hour)

	token, err := service.Generate("alice", domain.RoleStudent)
	req.NoError(err)

	identity, err := service.Verify(token)
	req.NoError(err)
	req.Equal("alice", identity.UserID)
	req.Equal(domain.RoleStudent, identity.Role)
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenService("issuer-secret", time.Hour)
	verifier := NewTokenService("other-secret", time.Hour)

	token, err := issuer.Generate("alice", domain.RoleStudent)
	req.NoError(err)

	_, err = verifier.Verify(token)
	req.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	req := require.New(t)
	service := NewTokenService("test-secret", -time.Minute)

	token, err := service.Generate("alice", domain.RoleStudent)
	req.NoError(err)

	_, err = service.Verify(token)
	req.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	req := require.New(t)
	service := NewTokenService("test-secret", time.Hour)

	_, err := service.Verify("not-a-jwt")
	req.ErrorIs(err, apperrors.ErrUnauthorized)
}

// BenchmarkHashPassword measures the CPU/RAM impact of the argon2 parameters.
func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
