package entity

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityWindow is one declared weekly working block for a
// professional. Weekday follows time.Weekday (0 = Sunday).
type AvailabilityWindow struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index" json:"professional_id"`
	Weekday        int       `gorm:"not null" json:"weekday"`
	StartTime      string    `gorm:"type:varchar(5);not null" json:"start_time"` // Format: HH:MM
	EndTime        string    `gorm:"type:varchar(5);not null" json:"end_time"`   // Format: HH:MM
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Professional ProfessionalProfile `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (AvailabilityWindow) TableName() string {
	return "availability_windows"
}
