package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClientProfile represents client-specific profile data
type ClientProfile struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Street     string    `gorm:"type:varchar(150)" json:"street,omitempty"`
	Number     string    `gorm:"type:varchar(20)" json:"number,omitempty"`
	City       string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	PostalCode string    `gorm:"type:varchar(20)" json:"postal_code,omitempty"`

	// Relationships
	User              User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FavoriteLocations []FavoriteLocation `gorm:"foreignKey:ClientID" json:"favorite_locations,omitempty"`
	PaymentMethods    []PaymentMethod    `gorm:"foreignKey:ClientID" json:"payment_methods,omitempty"`
	Appointments      []Appointment      `gorm:"foreignKey:ClientID" json:"appointments,omitempty"`
}

func (ClientProfile) TableName() string {
	return "client_profiles"
}

// FavoriteLocation is a named coordinate pair saved by a client.
type FavoriteLocation struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Latitude  float64   `gorm:"type:double precision;not null" json:"latitude"`
	Longitude float64   `gorm:"type:double precision;not null" json:"longitude"`
}

func (FavoriteLocation) TableName() string {
	return "favorite_locations"
}

// PaymentMethodKind enumerates the supported payment variants.
type PaymentMethodKind string

const (
	PaymentMethodCard PaymentMethodKind = "card"
	PaymentMethodCash PaymentMethodKind = "cash"
)

// PaymentMethod holds a tagged payment variant with opaque details.
type PaymentMethod struct {
	ID        int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"client_id"`
	Kind      PaymentMethodKind `gorm:"type:varchar(20);not null" json:"kind"`
	Details   JSON              `gorm:"type:jsonb" json:"details,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}
