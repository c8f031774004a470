package converter

import (
	"profesionesuy-api/internal/delivery/dto"
	"profesionesuy-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
// Includes ClientProfile and ProfessionalProfile if they are loaded
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	// The Role association is not always preloaded; fall back to the seeded names
	roleName := user.Role.RoleName
	if roleName == "" {
		roleName = entity.RoleNameForID(user.RoleID)
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      roleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	// Include ClientProfile if exists
	if user.ClientProfile != nil {
		response.ClientProfile = clientResponseFrom(user, user.ClientProfile)
	}

	// Include ProfessionalProfile if exists
	if user.ProfessionalProfile != nil {
		response.ProfessionalProfile = professionalResponseFrom(user, user.ProfessionalProfile)
	}

	return response
}
