package jwt

import (
	"testing"
	"time"

	"profesionesuy-api/config"

	"github.com/google/uuid"
)

func testService(accessExpiry, refreshExpiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: refreshExpiry,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := testService(time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "ana@example.com", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a non-empty token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "ana@example.com")
	}
	if claims.RoleID != 1 {
		t.Errorf("RoleID = %d, want 1", claims.RoleID)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, AccessToken)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenCarriesType(t *testing.T) {
	svc := testService(time.Hour, 24*time.Hour)

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "ana@example.com", 2)
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, RefreshToken)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testService(-time.Minute, 24*time.Hour)

	token, _, err := svc.GenerateAccessToken(uuid.New(), "ana@example.com", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("expected validation error for expired token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour, time.Hour).GenerateAccessToken(uuid.New(), "ana@example.com", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "another-secret", AccessExpiry: time.Hour, RefreshExpiry: time.Hour})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation error for wrong secret")
	}
}

func TestGarbageToken(t *testing.T) {
	if _, err := testService(time.Hour, time.Hour).ValidateToken("not-a-jwt"); err == nil {
		t.Error("expected validation error for malformed token")
	}
}
