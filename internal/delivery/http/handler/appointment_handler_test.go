package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"profesionesuy-api/internal/delivery/dto"
	"profesionesuy-api/internal/usecase"
	"profesionesuy-api/pkg/response"
	"profesionesuy-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// stubAppointmentUsecase lets each test pin the outcome of one call.
type stubAppointmentUsecase struct {
	slots   *dto.AvailableSlotsResponse
	created *dto.AppointmentResponse
	err     error
}

func (s *stubAppointmentUsecase) GetAvailableSlots(ctx context.Context, professionalID uuid.UUID, dateStr string) (*dto.AvailableSlotsResponse, error) {
	return s.slots, s.err
}

func (s *stubAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.created, s.err
}

func (s *stubAppointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return s.created, s.err
}

func (s *stubAppointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return nil, s.err
}

func (s *stubAppointmentUsecase) GetAppointmentsByClient(ctx context.Context, clientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	return nil, s.err
}

func (s *stubAppointmentUsecase) GetAppointmentsByProfessional(ctx context.Context, professionalID uuid.UUID) (*dto.AppointmentListResponse, error) {
	return nil, s.err
}

func (s *stubAppointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.created, s.err
}

func (s *stubAppointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func newAppointmentRouter(stub *stubAppointmentUsecase) *mux.Router {
	h := NewAppointmentHandler(stub, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/appointments/available-slots/{professionalId}/{date}", h.GetAvailableSlots).Methods(http.MethodGet)
	r.HandleFunc("/appointments", h.CreateAppointment).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{id}", h.GetAppointment).Methods(http.MethodGet)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp
}

func TestGetAvailableSlots(t *testing.T) {
	professionalID := uuid.New()
	stub := &stubAppointmentUsecase{
		slots: &dto.AvailableSlotsResponse{
			ProfessionalID: professionalID,
			Date:           "2026-09-07",
			Slots:          []string{"09:00", "09:30", "10:30", "11:00", "11:30"},
		},
	}
	router := newAppointmentRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/appointments/available-slots/"+professionalID.String()+"/2026-09-07", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	resp := decodeResponse(t, rec)
	if !resp.Success {
		t.Error("expected success response")
	}
}

func TestGetAvailableSlotsInvalidID(t *testing.T) {
	router := newAppointmentRouter(&stubAppointmentUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/appointments/available-slots/not-a-uuid/2026-09-07", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetAvailableSlotsUnknownProfessional(t *testing.T) {
	router := newAppointmentRouter(&stubAppointmentUsecase{err: usecase.ErrProfessionalNotFound})

	req := httptest.NewRequest(http.MethodGet, "/appointments/available-slots/"+uuid.NewString()+"/2026-09-07", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestCreateAppointmentSlotConflict(t *testing.T) {
	router := newAppointmentRouter(&stubAppointmentUsecase{err: usecase.ErrSlotConflict})

	body, _ := json.Marshal(dto.CreateAppointmentRequest{
		ProfessionalID: uuid.New(),
		Date:           "2026-09-07",
		Time:           "10:00",
		Reason:         "Reparación de cañería",
	})
	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	resp := decodeResponse(t, rec)
	if resp.Success {
		t.Error("expected failure response")
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	router := newAppointmentRouter(&stubAppointmentUsecase{})

	// Missing reason and time
	body, _ := json.Marshal(map[string]interface{}{
		"professional_id": uuid.NewString(),
		"date":            "2026-09-07",
	})
	req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
