package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment references exactly one client and one professional.
// The (professional, date, time) triple is unique among pending and
// confirmed rows, enforced by a partial unique index.
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"client_id"`
	ProfessionalID uuid.UUID         `gorm:"type:uuid;not null;index" json:"professional_id"`
	Date           time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time           string            `gorm:"type:varchar(5);not null" json:"time"` // Format: HH:MM
	Reason         string            `gorm:"type:text;not null" json:"reason"`
	Notes          string            `gorm:"type:text" json:"notes,omitempty"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Client       ClientProfile       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Professional ProfessionalProfile `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is in pending status
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsConfirmed checks if the appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Blocks reports whether the appointment occupies its slot. Cancelled
// and completed appointments free the slot for new bookings.
func (a *Appointment) Blocks() bool {
	return a.Status == AppointmentStatusPending || a.Status == AppointmentStatusConfirmed
}

// CanTransitionTo enforces the appointment state machine:
// pending -> confirmed | cancelled, confirmed -> cancelled | completed.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case AppointmentStatusPending:
		return next == AppointmentStatusConfirmed || next == AppointmentStatusCancelled
	case AppointmentStatusConfirmed:
		return next == AppointmentStatusCancelled || next == AppointmentStatusCompleted
	default:
		return false
	}
}

// StartOfDay returns midnight of t's calendar day in t's own location.
// Appointment dates are calendar days in server-local time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
