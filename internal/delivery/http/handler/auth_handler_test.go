package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"profesionesuy-api/config"
	"profesionesuy-api/internal/delivery/dto"
	"profesionesuy-api/internal/usecase"
	"profesionesuy-api/pkg/jwt"
	"profesionesuy-api/pkg/validator"

	"github.com/google/uuid"
)

type stubAuthUsecase struct {
	user   *dto.UserResponse
	tokens *dto.TokenResponse
	err    error
}

func (s *stubAuthUsecase) RegisterClient(ctx context.Context, req *dto.RegisterClientRequest) (*dto.UserResponse, error) {
	return s.user, s.err
}

func (s *stubAuthUsecase) RegisterProfessional(ctx context.Context, req *dto.RegisterProfessionalRequest) (*dto.UserResponse, error) {
	return s.user, s.err
}

func (s *stubAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return s.tokens, s.err
}

func (s *stubAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	return s.err
}

func (s *stubAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return s.tokens, s.err
}

func (s *stubAuthUsecase) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	return s.err
}

func (s *stubAuthUsecase) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	return s.err
}

func (s *stubAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return s.user, s.err
}

func (s *stubAuthUsecase) IsTokenValid(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	return s.err == nil, s.err
}

func newAuthHandler(stub *stubAuthUsecase) *AuthHandler {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour, RefreshExpiry: time.Hour})
	return NewAuthHandler(stub, validator.NewValidator(), jwtService)
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{err: usecase.ErrInvalidCredentials})

	body, _ := json.Marshal(dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestLoginMissingPassword(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{})

	body, _ := json.Marshal(map[string]string{"email": "ana@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRegisterClientDuplicateEmail(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{err: usecase.ErrEmailAlreadyExists})

	body, _ := json.Marshal(dto.RegisterClientRequest{
		Email:     "ana@example.com",
		Password:  "secreto1",
		FirstName: "Ana",
		LastName:  "García",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/registro/cliente", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.RegisterClient(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	resp := decodeResponse(t, rec)
	if resp.Success {
		t.Error("expected failure response")
	}
	if resp.Message != "El email ya está registrado" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestRegisterClientSuccess(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{user: &dto.UserResponse{ID: uuid.New(), Email: "ana@example.com"}})

	body, _ := json.Marshal(dto.RegisterClientRequest{
		Email:     "ana@example.com",
		Password:  "secreto1",
		FirstName: "Ana",
		LastName:  "García",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/registro/cliente", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.RegisterClient(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	h := newAuthHandler(&stubAuthUsecase{err: usecase.ErrUserNotFound})

	body, _ := json.Marshal(dto.ForgotPasswordRequest{Email: "nadie@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.ForgotPassword(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
