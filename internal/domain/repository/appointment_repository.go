package repository

import (
	"time"

	"profesionesuy-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Appointment, error)
	FindByProfessionalID(db *gorm.DB, professionalID uuid.UUID) ([]entity.Appointment, error)
	FindBlockingByProfessionalAndDate(db *gorm.DB, professionalID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatus(db *gorm.DB, id uuid.UUID, from, to entity.AppointmentStatus) (int64, error)
	CompleteConfirmedBefore(db *gorm.DB, cutoff time.Time) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
