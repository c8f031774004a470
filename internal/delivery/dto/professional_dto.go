package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type AvailabilityWindowRequest struct {
	Weekday   int    `json:"weekday" validate:"gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required"`   // Format: HH:MM
}

type ServiceOfferingRequest struct {
	Name         string          `json:"name" validate:"required,min=2,max=150"`
	Description  string          `json:"description" validate:"omitempty"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	DurationMins int             `json:"duration_mins" validate:"required,min=1"`
}

// UpdateProfessionalRequest covers the mutable professional fields.
// Email and identity fields are immutable post-creation.
type UpdateProfessionalRequest struct {
	FirstName        string                   `json:"first_name" validate:"omitempty,min=2"`
	LastName         string                   `json:"last_name" validate:"omitempty,min=2"`
	Phone            string                   `json:"phone" validate:"omitempty,min=6,max=30"`
	Profession       string                   `json:"profession" validate:"omitempty"`
	Specialties      []string                 `json:"specialties" validate:"omitempty"`
	ExperienceYears  *int                     `json:"experience_years" validate:"omitempty,gte=0"`
	CoverageRadiusKm *float64                 `json:"coverage_radius_km" validate:"omitempty,gte=0"`
	Status           string                   `json:"status" validate:"omitempty,oneof=available busy unavailable"`
	Services         []ServiceOfferingRequest `json:"services" validate:"omitempty,dive"`
}

type SetScheduleRequest struct {
	Windows []AvailabilityWindowRequest `json:"windows" validate:"required,dive"`
}

type RateProfessionalRequest struct {
	Score   int    `json:"score" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

// Response DTOs

type AvailabilityWindowResponse struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ServiceOfferingResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	DurationMins int             `json:"duration_mins"`
}

type VerificationResponse struct {
	IdentityVerified     bool       `json:"identity_verified"`
	IdentityVerifiedAt   *time.Time `json:"identity_verified_at,omitempty"`
	LicenseVerified      bool       `json:"license_verified"`
	LicenseVerifiedAt    *time.Time `json:"license_verified_at,omitempty"`
	BackgroundVerified   bool       `json:"background_verified"`
	BackgroundVerifiedAt *time.Time `json:"background_verified_at,omitempty"`
}

type ProfessionalResponse struct {
	ID               uuid.UUID                 `json:"id"`
	Email            string                    `json:"email"`
	FirstName        string                    `json:"first_name"`
	LastName         string                    `json:"last_name"`
	Phone            string                    `json:"phone,omitempty"`
	Profession       string                    `json:"profession"`
	Specialties      []string                  `json:"specialties"`
	ExperienceYears  int                       `json:"experience_years"`
	CoverageRadiusKm float64                   `json:"coverage_radius_km"`
	Status           string                    `json:"status"`
	AverageRating    float64                   `json:"average_rating"`
	Verification     VerificationResponse      `json:"verification"`
	Services         []ServiceOfferingResponse `json:"services"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}

type RatingResponse struct {
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	ClientID  uuid.UUID `json:"client_id"`
	CreatedAt time.Time `json:"created_at"`
}

type RatingListResponse struct {
	Ratings       []RatingResponse `json:"ratings"`
	AverageRating float64          `json:"average_rating"`
	Total         int              `json:"total"`
}

type ScheduleResponse struct {
	Windows []AvailabilityWindowResponse `json:"windows"`
	Status  string                       `json:"status"`
}
