package converter

import (
	"github.com/google/uuid"

	"profesionesuy-api/internal/delivery/dto"
	"profesionesuy-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:             appointment.ID,
		ClientID:       appointment.ClientID,
		ProfessionalID: appointment.ProfessionalID,
		Date:           appointment.Date.Format("2006-01-02"),
		Time:           appointment.Time,
		Reason:         appointment.Reason,
		Notes:          appointment.Notes,
		Status:         string(appointment.Status),
		CreatedAt:      appointment.CreatedAt,
		UpdatedAt:      appointment.UpdatedAt,
	}

	// Include party info if preloaded
	if appointment.Client.User.ID != uuid.Nil {
		response.Client = ClientProfileToResponse(&appointment.Client)
	}
	if appointment.Professional.User.ID != uuid.Nil {
		response.Professional = ProfessionalProfileToResponse(&appointment.Professional)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
