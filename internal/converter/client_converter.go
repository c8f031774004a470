package converter

import (
	"profesionesuy-api/internal/delivery/dto"
	"profesionesuy-api/internal/domain/entity"
)

// clientResponseFrom merges identity fields with the client profile.
func clientResponseFrom(user *entity.User, profile *entity.ClientProfile) *dto.ClientResponse {
	response := &dto.ClientResponse{
		ID:                user.ID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Phone:             user.Phone,
		FavoriteLocations: make([]dto.FavoriteLocationResponse, 0, len(profile.FavoriteLocations)),
		PaymentMethods:    make([]dto.PaymentMethodResponse, 0, len(profile.PaymentMethods)),
	}

	if profile.Street != "" || profile.Number != "" || profile.City != "" || profile.PostalCode != "" {
		response.Address = &dto.AddressResponse{
			Street:     profile.Street,
			Number:     profile.Number,
			City:       profile.City,
			PostalCode: profile.PostalCode,
		}
	}

	for _, loc := range profile.FavoriteLocations {
		response.FavoriteLocations = append(response.FavoriteLocations, dto.FavoriteLocationResponse{
			Name:      loc.Name,
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		})
	}

	for _, pm := range profile.PaymentMethods {
		response.PaymentMethods = append(response.PaymentMethods, dto.PaymentMethodResponse{
			Kind:    string(pm.Kind),
			Details: pm.Details,
		})
	}

	return response
}

// ClientProfileToResponse converts a ClientProfile entity to ClientResponse DTO
// Requires the User relationship to be preloaded
func ClientProfileToResponse(profile *entity.ClientProfile) *dto.ClientResponse {
	if profile == nil {
		return nil
	}
	return clientResponseFrom(&profile.User, profile)
}
