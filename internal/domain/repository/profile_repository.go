package repository

import (
	"profesionesuy-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ClientProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ClientProfile, error)
	Update(db *gorm.DB, profile *entity.ClientProfile) error
	ReplaceFavoriteLocations(db *gorm.DB, clientID uuid.UUID, locations []entity.FavoriteLocation) error
	ReplacePaymentMethods(db *gorm.DB, clientID uuid.UUID, methods []entity.PaymentMethod) error
}

type ProfessionalProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ProfessionalProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ProfessionalProfile, error)
	FindAll(db *gorm.DB, filter *entity.ProfessionalFilter) ([]entity.ProfessionalProfile, error)
	Update(db *gorm.DB, profile *entity.ProfessionalProfile) error
	ReplaceServices(db *gorm.DB, professionalID uuid.UUID, services []entity.ServiceOffering) error
}
