package repository

import (
	"profesionesuy-api/internal/domain/entity"
	domainRepo "profesionesuy-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availabilityWindowRepository struct{}

func NewAvailabilityWindowRepository() domainRepo.AvailabilityWindowRepository {
	return &availabilityWindowRepository{}
}

func (r *availabilityWindowRepository) FindByProfessionalID(db *gorm.DB, professionalID uuid.UUID) ([]entity.AvailabilityWindow, error) {
	var windows []entity.AvailabilityWindow
	err := db.Where("professional_id = ?", professionalID).
		Order("weekday ASC, start_time ASC").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *availabilityWindowRepository) FindByProfessionalAndWeekday(db *gorm.DB, professionalID uuid.UUID, weekday int) ([]entity.AvailabilityWindow, error) {
	var windows []entity.AvailabilityWindow
	err := db.Where("professional_id = ? AND weekday = ?", professionalID, weekday).
		Order("start_time ASC").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

// Replace swaps the full weekly window set in one shot. Callers wrap it
// in a transaction together with any profile update.
func (r *availabilityWindowRepository) Replace(db *gorm.DB, professionalID uuid.UUID, windows []entity.AvailabilityWindow) error {
	if err := db.Where("professional_id = ?", professionalID).Delete(&entity.AvailabilityWindow{}).Error; err != nil {
		return err
	}
	if len(windows) == 0 {
		return nil
	}
	for i := range windows {
		windows[i].ID = 0
		windows[i].ProfessionalID = professionalID
	}
	return db.Create(&windows).Error
}
