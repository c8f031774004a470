package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"profesionesuy-api/internal/delivery/dto"
	"profesionesuy-api/internal/domain/entity"
	"profesionesuy-api/internal/usecase"
	"profesionesuy-api/pkg/response"
	"profesionesuy-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProfessionalProfileHandler struct {
	professionalUsecase usecase.ProfessionalProfileUsecase
	validator           *validator.CustomValidator
}

func NewProfessionalProfileHandler(professionalUsecase usecase.ProfessionalProfileUsecase, validator *validator.CustomValidator) *ProfessionalProfileHandler {
	return &ProfessionalProfileHandler{
		professionalUsecase: professionalUsecase,
		validator:           validator,
	}
}

func (h *ProfessionalProfileHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	professional, err := h.professionalUsecase.GetProfessional(r.Context(), professionalID)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to get professional")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", professional)
}

func (h *ProfessionalProfileHandler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	var req dto.UpdateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.UpdateProfessional(r.Context(), professionalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrNotYourProfile:
			response.Forbidden(w, "You can only update your own profile")
		default:
			response.InternalServerError(w, "Failed to update professional")
		}
		return
	}

	response.Success(w, http.StatusOK, "Perfil actualizado exitosamente", professional)
}

func (h *ProfessionalProfileHandler) ListProfessionals(w http.ResponseWriter, r *http.Request) {
	professionals, err := h.professionalUsecase.ListProfessionals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
}

// SearchProfessionals filters by profession, specialty and minimum rating
// via query params, e.g. /profiles/profesionales/buscar?profesion=electricista
func (h *ProfessionalProfileHandler) SearchProfessionals(w http.ResponseWriter, r *http.Request) {
	filter := &entity.ProfessionalFilter{
		Profession: r.URL.Query().Get("profesion"),
		Specialty:  r.URL.Query().Get("especialidad"),
	}
	if raw := r.URL.Query().Get("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid min_rating", nil)
			return
		}
		filter.MinRating = minRating
	}

	professionals, err := h.professionalUsecase.SearchProfessionals(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to search professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
}

func (h *ProfessionalProfileHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	schedule, err := h.professionalUsecase.GetSchedule(r.Context(), professionalID)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to get schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

func (h *ProfessionalProfileHandler) SetSchedule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	var req dto.SetScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedule, err := h.professionalUsecase.SetSchedule(r.Context(), professionalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrNotYourProfile:
			response.Forbidden(w, "You can only update your own schedule")
		case usecase.ErrInvalidTimeFormat, usecase.ErrInvalidWindow, usecase.ErrInvalidWeekday:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to set schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Horario actualizado exitosamente", schedule)
}

func (h *ProfessionalProfileHandler) RateProfessional(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	var req dto.RateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	rating, err := h.professionalUsecase.RateProfessional(r.Context(), professionalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrInvalidScore, usecase.ErrCannotRateSelf:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to rate professional")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Calificación registrada exitosamente", rating)
}

func (h *ProfessionalProfileHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	ratings, err := h.professionalUsecase.GetRatings(r.Context(), professionalID)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		default:
			response.InternalServerError(w, "Failed to get ratings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Ratings retrieved successfully", ratings)
}
