package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating score bounds
const (
	RatingMinScore = 1
	RatingMaxScore = 5
)

// Rating is one client review of a professional.
type Rating struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index" json:"professional_id"`
	ClientID       uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	Score          int       `gorm:"not null" json:"score"`
	Comment        string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Professional ProfessionalProfile `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
	Client       ClientProfile       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (Rating) TableName() string {
	return "ratings"
}

// AverageScore computes the arithmetic mean of the given ratings.
// Returns 0 for an empty list.
func AverageScore(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Score
	}
	return float64(sum) / float64(len(ratings))
}
