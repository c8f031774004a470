package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type AddressRequest struct {
	Street     string `json:"street" validate:"omitempty,max=150"`
	Number     string `json:"number" validate:"omitempty,max=20"`
	City       string `json:"city" validate:"omitempty,max=100"`
	PostalCode string `json:"postal_code" validate:"omitempty,max=20"`
}

type FavoriteLocationRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type PaymentMethodRequest struct {
	Kind    string                 `json:"kind" validate:"required,oneof=card cash"`
	Details map[string]interface{} `json:"details" validate:"omitempty"`
}

// UpdateClientRequest covers the mutable client fields. Email and
// identity fields are immutable post-creation.
type UpdateClientRequest struct {
	FirstName         string                    `json:"first_name" validate:"omitempty,min=2"`
	LastName          string                    `json:"last_name" validate:"omitempty,min=2"`
	Phone             string                    `json:"phone" validate:"omitempty,min=6,max=30"`
	Address           *AddressRequest           `json:"address" validate:"omitempty"`
	FavoriteLocations []FavoriteLocationRequest `json:"favorite_locations" validate:"omitempty,dive"`
	PaymentMethods    []PaymentMethodRequest    `json:"payment_methods" validate:"omitempty,dive"`
}

// Response DTOs

type AddressResponse struct {
	Street     string `json:"street,omitempty"`
	Number     string `json:"number,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

type FavoriteLocationResponse struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PaymentMethodResponse struct {
	Kind    string                 `json:"kind"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type ClientResponse struct {
	ID                uuid.UUID                  `json:"id"`
	Email             string                     `json:"email"`
	FirstName         string                     `json:"first_name"`
	LastName          string                     `json:"last_name"`
	Phone             string                     `json:"phone,omitempty"`
	Address           *AddressResponse           `json:"address,omitempty"`
	FavoriteLocations []FavoriteLocationResponse `json:"favorite_locations"`
	PaymentMethods    []PaymentMethodResponse    `json:"payment_methods"`
}
