package usecase

import (
	"context"
	"errors"
	"time"

	"profesionesuy-api/internal/converter"
	"profesionesuy-api/internal/delivery/dto"
	"profesionesuy-api/internal/delivery/http/middleware"
	"profesionesuy-api/internal/domain/entity"
	"profesionesuy-api/internal/domain/repository"
	"profesionesuy-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrPastDate             = errors.New("cannot book a date in the past")
	ErrSlotUnavailable      = errors.New("requested slot is not available")
	ErrSlotConflict         = errors.New("slot was just taken, pick another one")
	ErrInvalidTransition    = errors.New("invalid appointment status transition")
	ErrNotYourAppointment   = errors.New("appointment does not belong to you")
)

type AppointmentUsecase interface {
	GetAvailableSlots(ctx context.Context, professionalID uuid.UUID, dateStr string) (*dto.AvailableSlotsResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointmentsByClient(ctx context.Context, clientID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetAppointmentsByProfessional(ctx context.Context, professionalID uuid.UUID) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	profileRepo     repository.ProfessionalProfileRepository
	windowRepo      repository.AvailabilityWindowRepository
	auditService    service.AuditService
	slotSize        time.Duration
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	profileRepo repository.ProfessionalProfileRepository,
	windowRepo repository.AvailabilityWindowRepository,
	auditService service.AuditService,
	slotSize time.Duration,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		profileRepo:     profileRepo,
		windowRepo:      windowRepo,
		auditService:    auditService,
		slotSize:        slotSize,
	}
}

// GetAvailableSlots returns the bookable "HH:MM" starts for one professional
// and date. Past dates, unavailable professionals and weekdays without a
// window all yield an empty list rather than an error response body.
func (u *appointmentUsecase) GetAvailableSlots(ctx context.Context, professionalID uuid.UUID, dateStr string) (*dto.AvailableSlotsResponse, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", professionalID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	response := &dto.AvailableSlotsResponse{
		ProfessionalID: professionalID,
		Date:           dateStr,
		Slots:          []string{},
	}

	today := entity.StartOfDay(time.Now())
	if date.Before(today) || !profile.IsBookable() {
		return response, nil
	}

	windows, err := u.windowRepo.FindByProfessionalAndWeekday(u.db.WithContext(ctx), professionalID, int(date.Weekday()))
	if err != nil {
		u.log.Warnf("Failed to find availability windows: %+v", err)
		return nil, err
	}

	blocking, err := u.appointmentRepo.FindBlockingByProfessionalAndDate(u.db.WithContext(ctx), professionalID, date)
	if err != nil {
		u.log.Warnf("Failed to find blocking appointments: %+v", err)
		return nil, err
	}

	slots, err := ComputeAvailableSlots(windows, blocking, int(date.Weekday()), u.slotSize)
	if err != nil {
		return nil, err
	}

	response.Slots = slots
	return response, nil
}

// CreateAppointment books a pending appointment for the logged-in client.
// The requested slot is re-validated inside the transaction; the partial
// unique index on (professional, date, time) settles concurrent creates,
// only one of two racing requests commits.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	clientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if _, err := parseClock(req.Time); err != nil {
		return nil, err
	}

	today := entity.StartOfDay(time.Now())
	if date.Before(today) {
		return nil, ErrPastDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.profileRepo.FindByUserID(tx, req.ProfessionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", req.ProfessionalID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}
	if !profile.IsBookable() {
		return nil, ErrSlotUnavailable
	}

	windows, err := u.windowRepo.FindByProfessionalAndWeekday(tx, req.ProfessionalID, int(date.Weekday()))
	if err != nil {
		u.log.Warnf("Failed to find availability windows: %+v", err)
		return nil, err
	}

	blocking, err := u.appointmentRepo.FindBlockingByProfessionalAndDate(tx, req.ProfessionalID, date)
	if err != nil {
		u.log.Warnf("Failed to find blocking appointments: %+v", err)
		return nil, err
	}

	slots, err := ComputeAvailableSlots(windows, blocking, int(date.Weekday()), u.slotSize)
	if err != nil {
		return nil, err
	}
	if !containsSlot(slots, req.Time) {
		return nil, ErrSlotUnavailable
	}

	appointment := &entity.Appointment{
		ClientID:       clientID,
		ProfessionalID: req.ProfessionalID,
		Date:           date,
		Time:           req.Time,
		Reason:         req.Reason,
		Notes:          req.Notes,
		Status:         entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "uq_appointments_active_slot") {
			return nil, ErrSlotConflict
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, &clientID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), map[string]interface{}{
		"professional_id": req.ProfessionalID.String(),
		"date":            req.Date,
		"time":            req.Time,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByClient(ctx context.Context, clientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByClientID(u.db.WithContext(ctx), clientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for client %s: %+v", clientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByProfessional(ctx context.Context, professionalID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByProfessionalID(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for professional %s: %+v", professionalID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointment reschedules and/or moves the appointment through its
// state machine. Only the two parties may touch it; reschedules are
// re-validated against the professional's availability like a fresh booking.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.ClientID != userID && appointment.ProfessionalID != userID {
		return nil, ErrNotYourAppointment
	}

	oldStatus := appointment.Status

	if req.Date != "" || req.Time != "" {
		date := appointment.Date
		slot := appointment.Time
		if req.Date != "" {
			date, err = time.Parse("2006-01-02", req.Date)
			if err != nil {
				return nil, ErrInvalidDateFormat
			}
		}
		if req.Time != "" {
			if _, err := parseClock(req.Time); err != nil {
				return nil, err
			}
			slot = req.Time
		}

		today := entity.StartOfDay(time.Now())
		if date.Before(today) {
			return nil, ErrPastDate
		}

		windows, err := u.windowRepo.FindByProfessionalAndWeekday(tx, appointment.ProfessionalID, int(date.Weekday()))
		if err != nil {
			u.log.Warnf("Failed to find availability windows: %+v", err)
			return nil, err
		}
		blocking, err := u.appointmentRepo.FindBlockingByProfessionalAndDate(tx, appointment.ProfessionalID, date)
		if err != nil {
			u.log.Warnf("Failed to find blocking appointments: %+v", err)
			return nil, err
		}
		// The appointment being moved must not block its own target date
		others := make([]entity.Appointment, 0, len(blocking))
		for _, b := range blocking {
			if b.ID != appointment.ID {
				others = append(others, b)
			}
		}
		slots, err := ComputeAvailableSlots(windows, others, int(date.Weekday()), u.slotSize)
		if err != nil {
			return nil, err
		}
		if !containsSlot(slots, slot) {
			return nil, ErrSlotUnavailable
		}

		appointment.Date = date
		appointment.Time = slot
	}

	if req.Reason != "" {
		appointment.Reason = req.Reason
	}
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if req.Status != "" && entity.AppointmentStatus(req.Status) != appointment.Status {
		next := entity.AppointmentStatus(req.Status)
		if !appointment.CanTransitionTo(next) {
			return nil, ErrInvalidTransition
		}
		// Compare-and-set on the status column: if another writer moved
		// the appointment since we read it, zero rows match.
		affected, err := u.appointmentRepo.UpdateStatus(tx, appointment.ID, oldStatus, next)
		if err != nil {
			u.log.Warnf("Failed to transition appointment status: %+v", err)
			return nil, err
		}
		if affected == 0 {
			return nil, ErrInvalidTransition
		}
		appointment.Status = next
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "uq_appointments_active_slot") {
			return nil, ErrSlotConflict
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if appointment.Status != oldStatus {
		action := auditActionForStatus(appointment.Status)
		u.auditService.LogUpdate(ctx, tx, &userID, action, "appointment", appointment.ID.String(), string(oldStatus), string(appointment.Status))
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.ClientID != userID && appointment.ProfessionalID != userID {
		return ErrNotYourAppointment
	}

	affected, err := u.appointmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionAppointmentCancel, "appointment", id.String(), string(appointment.Status))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func containsSlot(slots []string, value string) bool {
	for _, s := range slots {
		if s == value {
			return true
		}
	}
	return false
}

func auditActionForStatus(status entity.AppointmentStatus) string {
	switch status {
	case entity.AppointmentStatusConfirmed:
		return entity.AuditActionAppointmentConfirm
	case entity.AppointmentStatusCancelled:
		return entity.AuditActionAppointmentCancel
	case entity.AppointmentStatusCompleted:
		return entity.AuditActionAppointmentComplete
	default:
		return entity.AuditActionAppointmentCreate
	}
}
