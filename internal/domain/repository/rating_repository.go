package repository

import (
	"profesionesuy-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(db *gorm.DB, rating *entity.Rating) error
	FindByProfessionalID(db *gorm.DB, professionalID uuid.UUID) ([]entity.Rating, error)
}
