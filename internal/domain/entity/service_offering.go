package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceOffering is a service a professional offers for booking.
type ServiceOffering struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProfessionalID uuid.UUID       `gorm:"type:uuid;not null;index" json:"professional_id"`
	Name           string          `gorm:"type:varchar(150);not null" json:"name"`
	Description    string          `gorm:"type:text" json:"description,omitempty"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMins   int             `gorm:"not null" json:"duration_mins"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Professional ProfessionalProfile `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (ServiceOffering) TableName() string {
	return "service_offerings"
}
