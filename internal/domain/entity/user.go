package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the shared identity record for both marketplace variants.
// Variant-specific data lives in ClientProfile / ProfessionalProfile.
type User struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID               int        `gorm:"not null;index" json:"role_id"`
	Email                string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password             string     `gorm:"type:text;not null" json:"-"`
	FirstName            string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName             string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Phone                string     `gorm:"type:varchar(30)" json:"phone,omitempty"`
	IsActive             *bool      `gorm:"not null;default:true;index" json:"is_active"`
	ResetPasswordToken   *string    `gorm:"type:varchar(100);index" json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role                Role                 `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	ClientProfile       *ClientProfile       `gorm:"foreignKey:UserID" json:"client_profile,omitempty"`
	ProfessionalProfile *ProfessionalProfile `gorm:"foreignKey:UserID" json:"professional_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// HasValidResetToken reports whether the stored reset token matches and
// has not expired. The token is single-use; callers clear it on success.
func (u *User) HasValidResetToken(token string, now time.Time) bool {
	if u.ResetPasswordToken == nil || u.ResetPasswordExpires == nil {
		return false
	}
	if *u.ResetPasswordToken != token {
		return false
	}
	return now.Before(*u.ResetPasswordExpires)
}
