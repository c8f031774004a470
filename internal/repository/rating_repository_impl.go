package repository

import (
	"profesionesuy-api/internal/domain/entity"
	domainRepo "profesionesuy-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ratingRepository struct{}

func NewRatingRepository() domainRepo.RatingRepository {
	return &ratingRepository{}
}

func (r *ratingRepository) Create(db *gorm.DB, rating *entity.Rating) error {
	return db.Create(rating).Error
}

func (r *ratingRepository) FindByProfessionalID(db *gorm.DB, professionalID uuid.UUID) ([]entity.Rating, error) {
	var ratings []entity.Rating
	err := db.Where("professional_id = ?", professionalID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
