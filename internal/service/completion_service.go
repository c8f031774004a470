package service

import (
	"time"

	"profesionesuy-api/internal/domain/entity"
	"profesionesuy-api/internal/domain/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CompletionService periodically marks confirmed appointments whose date
// has passed as completed, so professionals never have to close them out
// by hand.
type CompletionService struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	cron            *cron.Cron
}

func NewCompletionService(db *gorm.DB, log *logrus.Logger, appointmentRepo repository.AppointmentRepository) *CompletionService {
	return &CompletionService{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		cron:            cron.New(),
	}
}

// Start registers the completion job and starts the scheduler.
// Runs hourly; the sweep is idempotent so overlap with restarts is safe.
func (s *CompletionService) Start() error {
	if _, err := s.cron.AddFunc("0 * * * *", s.completePastAppointments); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("Appointment completion scheduler started")
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *CompletionService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *CompletionService) completePastAppointments() {
	// Appointments dated strictly before today are over regardless of time.
	cutoff := entity.StartOfDay(time.Now())

	affected, err := s.appointmentRepo.CompleteConfirmedBefore(s.db, cutoff)
	if err != nil {
		s.log.Errorf("Failed to complete past appointments: %+v", err)
		return
	}

	if affected > 0 {
		s.log.Infof("Marked %d past appointments as completed", affected)
	}
}
