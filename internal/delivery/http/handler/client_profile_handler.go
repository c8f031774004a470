package handler

import (
	"encoding/json"
	"net/http"

	"profesionesuy-api/internal/delivery/dto"
	"profesionesuy-api/internal/usecase"
	"profesionesuy-api/pkg/response"
	"profesionesuy-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ClientProfileHandler struct {
	clientUsecase usecase.ClientProfileUsecase
	validator     *validator.CustomValidator
}

func NewClientProfileHandler(clientUsecase usecase.ClientProfileUsecase, validator *validator.CustomValidator) *ClientProfileHandler {
	return &ClientProfileHandler{
		clientUsecase: clientUsecase,
		validator:     validator,
	}
}

func (h *ClientProfileHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client ID", nil)
		return
	}

	client, err := h.clientUsecase.GetClient(r.Context(), clientID)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		default:
			response.InternalServerError(w, "Failed to get client")
		}
		return
	}

	response.Success(w, http.StatusOK, "Client retrieved successfully", client)
}

func (h *ClientProfileHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client ID", nil)
		return
	}

	var req dto.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	client, err := h.clientUsecase.UpdateClient(r.Context(), clientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrClientNotFound:
			response.NotFound(w, "Client not found")
		case usecase.ErrNotYourProfile:
			response.Forbidden(w, "You can only update your own profile")
		default:
			response.InternalServerError(w, "Failed to update client")
		}
		return
	}

	response.Success(w, http.StatusOK, "Perfil actualizado exitosamente", client)
}
