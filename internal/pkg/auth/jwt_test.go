package auth

import (
	"testing"
	"time"

	"github.com/campushire/placementhub/internal/app/models"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key-for-unit-tests",
		TokenExp:    exp,
		TokenIssuer: "placementhub.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	s := newTestService(time.Hour)

	token, expiresIn, err := s.GenerateToken(42, models.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expected expiresIn=3600, got %d", expiresIn)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.ActorID != 42 {
		t.Errorf("expected ActorID=42, got %d", claims.ActorID)
	}
	if claims.Role != models.RoleStudent {
		t.Errorf("expected role=student, got %s", claims.Role)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	s := newTestService(-time.Minute)

	token, _, err := s.GenerateToken(1, models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := s.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	s := newTestService(time.Hour)
	other := NewJWTService(JWTConfig{SecretKey: "a-different-secret", TokenExp: time.Hour})

	token, _, err := s.GenerateToken(7, models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tok, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || tok != "abc.def.ghi" {
		t.Errorf("expected bare token, got %q (err=%v)", tok, err)
	}

	// raw token without prefix is accepted as-is
	tok, err = ExtractBearerToken("abc.def.ghi")
	if err != nil || tok != "abc.def.ghi" {
		t.Errorf("expected raw token passthrough, got %q (err=%v)", tok, err)
	}

	if _, err := ExtractBearerToken(""); err == nil {
		t.Error("expected error for empty header")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Error("expected mismatched password to fail")
	}
}
