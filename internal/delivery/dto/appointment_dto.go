package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	ProfessionalID uuid.UUID `json:"professional_id" validate:"required"`
	Date           string    `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time           string    `json:"time" validate:"required"` // Format: HH:MM
	Reason         string    `json:"reason" validate:"required,min=3"`
	Notes          string    `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	Date   string `json:"date" validate:"omitempty"` // Format: YYYY-MM-DD
	Time   string `json:"time" validate:"omitempty"` // Format: HH:MM
	Reason string `json:"reason" validate:"omitempty,min=3"`
	Notes  string `json:"notes" validate:"omitempty"`
	Status string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             uuid.UUID             `json:"id"`
	ClientID       uuid.UUID             `json:"client_id"`
	ProfessionalID uuid.UUID             `json:"professional_id"`
	Client         *ClientResponse       `json:"client,omitempty"`
	Professional   *ProfessionalResponse `json:"professional,omitempty"`
	Date           string                `json:"date"`
	Time           string                `json:"time"`
	Reason         string                `json:"reason"`
	Notes          string                `json:"notes,omitempty"`
	Status         string                `json:"status"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type AvailableSlotsResponse struct {
	ProfessionalID uuid.UUID `json:"professional_id"`
	Date           string    `json:"date"`
	Slots          []string  `json:"slots"`
}
