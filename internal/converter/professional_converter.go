package converter

import (
	"profesionesuy-api/internal/delivery/dto"
	"profesionesuy-api/internal/domain/entity"
)

// professionalResponseFrom merges identity fields with the professional profile.
func professionalResponseFrom(user *entity.User, profile *entity.ProfessionalProfile) *dto.ProfessionalResponse {
	specialties := profile.Specialties
	if specialties == nil {
		specialties = entity.StringList{}
	}

	return &dto.ProfessionalResponse{
		ID:               user.ID,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Phone:            user.Phone,
		Profession:       profile.Profession,
		Specialties:      specialties,
		ExperienceYears:  profile.ExperienceYears,
		CoverageRadiusKm: profile.CoverageRadiusKm,
		Status:           string(profile.Status),
		AverageRating:    profile.AverageRating,
		Verification: dto.VerificationResponse{
			IdentityVerified:     profile.IdentityVerified,
			IdentityVerifiedAt:   profile.IdentityVerifiedAt,
			LicenseVerified:      profile.LicenseVerified,
			LicenseVerifiedAt:    profile.LicenseVerifiedAt,
			BackgroundVerified:   profile.BackgroundVerified,
			BackgroundVerifiedAt: profile.BackgroundVerifiedAt,
		},
		Services: ServiceOfferingsToResponses(profile.Services),
	}
}

// ProfessionalProfileToResponse converts a ProfessionalProfile entity to ProfessionalResponse DTO
// Requires the User relationship to be preloaded
func ProfessionalProfileToResponse(profile *entity.ProfessionalProfile) *dto.ProfessionalResponse {
	if profile == nil {
		return nil
	}
	return professionalResponseFrom(&profile.User, profile)
}

// ProfessionalProfilesToResponses converts a slice of ProfessionalProfile entities to slice of ProfessionalResponse DTOs
func ProfessionalProfilesToResponses(profiles []entity.ProfessionalProfile) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = *professionalResponseFrom(&profile.User, &profile)
	}
	return responses
}

// ServiceOfferingsToResponses converts a slice of ServiceOffering entities to slice of ServiceOfferingResponse DTOs
func ServiceOfferingsToResponses(services []entity.ServiceOffering) []dto.ServiceOfferingResponse {
	responses := make([]dto.ServiceOfferingResponse, len(services))
	for i, svc := range services {
		responses[i] = dto.ServiceOfferingResponse{
			ID:           svc.ID,
			Name:         svc.Name,
			Description:  svc.Description,
			Price:        svc.Price,
			DurationMins: svc.DurationMins,
		}
	}
	return responses
}

// WindowsToResponses converts a slice of AvailabilityWindow entities to slice of AvailabilityWindowResponse DTOs
func WindowsToResponses(windows []entity.AvailabilityWindow) []dto.AvailabilityWindowResponse {
	responses := make([]dto.AvailabilityWindowResponse, len(windows))
	for i, w := range windows {
		responses[i] = dto.AvailabilityWindowResponse{
			Weekday:   w.Weekday,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		}
	}
	return responses
}

// RatingsToResponses converts a slice of Rating entities to slice of RatingResponse DTOs
func RatingsToResponses(ratings []entity.Rating) []dto.RatingResponse {
	responses := make([]dto.RatingResponse, len(ratings))
	for i, r := range ratings {
		responses[i] = dto.RatingResponse{
			Score:     r.Score,
			Comment:   r.Comment,
			ClientID:  r.ClientID,
			CreatedAt: r.CreatedAt,
		}
	}
	return responses
}
