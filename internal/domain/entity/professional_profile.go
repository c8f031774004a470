package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ProfessionalStatus is the coarse availability flag a professional sets
// on top of their weekly windows.
type ProfessionalStatus string

const (
	ProfessionalStatusAvailable   ProfessionalStatus = "available"
	ProfessionalStatusBusy        ProfessionalStatus = "busy"
	ProfessionalStatusUnavailable ProfessionalStatus = "unavailable"
)

// ProfessionalProfile represents professional-specific profile data
type ProfessionalProfile struct {
	UserID           uuid.UUID          `gorm:"type:uuid;primaryKey" json:"user_id"`
	Profession       string             `gorm:"type:varchar(100);not null;index" json:"profession"`
	Specialties      StringList         `gorm:"type:jsonb" json:"specialties,omitempty"`
	ExperienceYears  int                `gorm:"not null;default:0" json:"experience_years"`
	CoverageRadiusKm float64            `gorm:"type:double precision;not null;default:0" json:"coverage_radius_km"`
	Status           ProfessionalStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	AverageRating    float64            `gorm:"type:double precision;not null;default:0" json:"average_rating"`

	// Document verification flags, each independently verified
	IdentityVerified     bool       `gorm:"not null;default:false" json:"identity_verified"`
	IdentityVerifiedAt   *time.Time `json:"identity_verified_at,omitempty"`
	LicenseVerified      bool       `gorm:"not null;default:false" json:"license_verified"`
	LicenseVerifiedAt    *time.Time `json:"license_verified_at,omitempty"`
	BackgroundVerified   bool       `gorm:"not null;default:false" json:"background_verified"`
	BackgroundVerifiedAt *time.Time `json:"background_verified_at,omitempty"`

	// Relationships
	User         User                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Windows      []AvailabilityWindow `gorm:"foreignKey:ProfessionalID" json:"windows,omitempty"`
	Services     []ServiceOffering    `gorm:"foreignKey:ProfessionalID" json:"services,omitempty"`
	Ratings      []Rating             `gorm:"foreignKey:ProfessionalID" json:"ratings,omitempty"`
	Appointments []Appointment        `gorm:"foreignKey:ProfessionalID" json:"appointments,omitempty"`
}

func (ProfessionalProfile) TableName() string {
	return "professional_profiles"
}

// IsBookable reports whether the professional accepts new appointments at all.
// Busy professionals keep their windows; unavailable ones expose no slots.
func (p *ProfessionalProfile) IsBookable() bool {
	return p.Status != ProfessionalStatusUnavailable
}

// StringList type for GORM JSONB-backed string arrays
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan scan value into StringList, implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := []string{}
	err := json.Unmarshal(bytes, &result)
	*l = StringList(result)
	return err
}
