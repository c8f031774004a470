package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// RegisterClientRequest creates a client account with its profile
type RegisterClientRequest struct {
	Email             string                    `json:"email" validate:"required,email"`
	Password          string                    `json:"password" validate:"required,min=6"`
	FirstName         string                    `json:"first_name" validate:"required,min=2"`
	LastName          string                    `json:"last_name" validate:"required,min=2"`
	Phone             string                    `json:"phone" validate:"omitempty,min=6,max=30"`
	Address           *AddressRequest           `json:"address" validate:"omitempty"`
	FavoriteLocations []FavoriteLocationRequest `json:"favorite_locations" validate:"omitempty,dive"`
	PaymentMethods    []PaymentMethodRequest    `json:"payment_methods" validate:"omitempty,dive"`
}

// RegisterProfessionalRequest creates a professional account with its profile
type RegisterProfessionalRequest struct {
	Email            string                      `json:"email" validate:"required,email"`
	Password         string                      `json:"password" validate:"required,min=6"`
	FirstName        string                      `json:"first_name" validate:"required,min=2"`
	LastName         string                      `json:"last_name" validate:"required,min=2"`
	Phone            string                      `json:"phone" validate:"omitempty,min=6,max=30"`
	Profession       string                      `json:"profession" validate:"required"`
	Specialties      []string                    `json:"specialties" validate:"omitempty"`
	ExperienceYears  int                         `json:"experience_years" validate:"gte=0"`
	CoverageRadiusKm float64                     `json:"coverage_radius_km" validate:"gte=0"`
	Windows          []AvailabilityWindowRequest `json:"windows" validate:"omitempty,dive"`
	Services         []ServiceOfferingRequest    `json:"services" validate:"omitempty,dive"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string        `json:"token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         *UserResponse `json:"usuario"`
}

type UserResponse struct {
	ID                  uuid.UUID             `json:"id"`
	Email               string                `json:"email"`
	FirstName           string                `json:"first_name"`
	LastName            string                `json:"last_name"`
	Phone               string                `json:"phone,omitempty"`
	Role                string                `json:"role"`
	ClientProfile       *ClientResponse       `json:"client_profile,omitempty"`
	ProfessionalProfile *ProfessionalResponse `json:"professional_profile,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}
