package repository

import (
	"profesionesuy-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityWindowRepository interface {
	FindByProfessionalID(db *gorm.DB, professionalID uuid.UUID) ([]entity.AvailabilityWindow, error)
	FindByProfessionalAndWeekday(db *gorm.DB, professionalID uuid.UUID, weekday int) ([]entity.AvailabilityWindow, error)
	Replace(db *gorm.DB, professionalID uuid.UUID, windows []entity.AvailabilityWindow) error
}
