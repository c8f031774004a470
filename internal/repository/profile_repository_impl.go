package repository

import (
	"errors"

	"profesionesuy-api/internal/domain/entity"
	domainRepo "profesionesuy-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client Profile Repository

type clientProfileRepository struct{}

func NewClientProfileRepository() domainRepo.ClientProfileRepository {
	return &clientProfileRepository{}
}

func (r *clientProfileRepository) Create(db *gorm.DB, profile *entity.ClientProfile) error {
	return db.Create(profile).Error
}

func (r *clientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ClientProfile, error) {
	var profile entity.ClientProfile
	err := db.Preload("User").
		Preload("FavoriteLocations").
		Preload("PaymentMethods").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *clientProfileRepository) Update(db *gorm.DB, profile *entity.ClientProfile) error {
	return db.Omit("User", "FavoriteLocations", "PaymentMethods").Save(profile).Error
}

func (r *clientProfileRepository) ReplaceFavoriteLocations(db *gorm.DB, clientID uuid.UUID, locations []entity.FavoriteLocation) error {
	if err := db.Where("client_id = ?", clientID).Delete(&entity.FavoriteLocation{}).Error; err != nil {
		return err
	}
	if len(locations) == 0 {
		return nil
	}
	for i := range locations {
		locations[i].ID = 0
		locations[i].ClientID = clientID
	}
	return db.Create(&locations).Error
}

func (r *clientProfileRepository) ReplacePaymentMethods(db *gorm.DB, clientID uuid.UUID, methods []entity.PaymentMethod) error {
	if err := db.Where("client_id = ?", clientID).Delete(&entity.PaymentMethod{}).Error; err != nil {
		return err
	}
	if len(methods) == 0 {
		return nil
	}
	for i := range methods {
		methods[i].ID = 0
		methods[i].ClientID = clientID
	}
	return db.Create(&methods).Error
}

// Professional Profile Repository

type professionalProfileRepository struct{}

func NewProfessionalProfileRepository() domainRepo.ProfessionalProfileRepository {
	return &professionalProfileRepository{}
}

func (r *professionalProfileRepository) Create(db *gorm.DB, profile *entity.ProfessionalProfile) error {
	return db.Create(profile).Error
}

func (r *professionalProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ProfessionalProfile, error) {
	var profile entity.ProfessionalProfile
	err := db.Preload("User").
		Preload("Services").
		Preload("Windows").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// FindAll returns professionals whose user account is active.
// Supports optional filters: profession, specialty tag and minimum rating.
func (r *professionalProfileRepository) FindAll(db *gorm.DB, filter *entity.ProfessionalFilter) ([]entity.ProfessionalProfile, error) {
	var profiles []entity.ProfessionalProfile
	query := db.
		Joins("JOIN users ON users.id = professional_profiles.user_id").
		Where("users.is_active = ?", true)

	if filter != nil {
		if filter.Profession != "" {
			query = query.Where("professional_profiles.profession ILIKE ?", "%"+filter.Profession+"%")
		}
		if filter.Specialty != "" {
			// jsonb_exists instead of the ? operator, which collides
			// with the bind placeholder
			query = query.Where("jsonb_exists(professional_profiles.specialties, ?)", filter.Specialty)
		}
		if filter.MinRating > 0 {
			query = query.Where("professional_profiles.average_rating >= ?", filter.MinRating)
		}
	}

	err := query.
		Preload("User").
		Preload("Services").
		Order("professional_profiles.average_rating DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *professionalProfileRepository) Update(db *gorm.DB, profile *entity.ProfessionalProfile) error {
	return db.Omit("User", "Services", "Windows", "Ratings").Save(profile).Error
}

func (r *professionalProfileRepository) ReplaceServices(db *gorm.DB, professionalID uuid.UUID, services []entity.ServiceOffering) error {
	if err := db.Where("professional_id = ?", professionalID).Delete(&entity.ServiceOffering{}).Error; err != nil {
		return err
	}
	if len(services) == 0 {
		return nil
	}
	for i := range services {
		services[i].ID = uuid.Nil
		services[i].ProfessionalID = professionalID
	}
	return db.Create(&services).Error
}
