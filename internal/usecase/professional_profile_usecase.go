package usecase

import (
	"context"
	"errors"
	"fmt"

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
	ErrInvalidScore   = fmt.Errorf("score must be between %d and %d", entity.RatingMinScore, entity.RatingMaxScore)
	ErrCannotRateSelf = errors.New("professionals cannot rate themselves")
)

type ProfessionalProfileUsecase interface {
	GetProfessional(ctx context.Context, userID uuid.UUID) (*dto.ProfessionalResponse, error)
	UpdateProfessional(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error)
	ListProfessionals(ctx context.Context) (*dto.ProfessionalListResponse, error)
	SearchProfessionals(ctx context.Context, filter *entity.ProfessionalFilter) (*dto.ProfessionalListResponse, error)
	GetSchedule(ctx context.Context, professionalID uuid.UUID) (*dto.ScheduleResponse, error)
	SetSchedule(ctx context.Context, professionalID uuid.UUID, req *dto.SetScheduleRequest) (*dto.ScheduleResponse, error)
	RateProfessional(ctx context.Context, professionalID uuid.UUID, req *dto.RateProfessionalRequest) (*dto.RatingResponse, error)
	GetRatings(ctx context.Context, professionalID uuid.UUID) (*dto.RatingListResponse, error)
}

type professionalProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.ProfessionalProfileRepository
	windowRepo   repository.AvailabilityWindowRepository
	ratingRepo   repository.RatingRepository
	auditService service.AuditService
}

func NewProfessionalProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfessionalProfileRepository,
	windowRepo repository.AvailabilityWindowRepository,
	ratingRepo repository.RatingRepository,
	auditService service.AuditService,
) ProfessionalProfileUsecase {
	return &professionalProfileUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		windowRepo:   windowRepo,
		ratingRepo:   ratingRepo,
		auditService: auditService,
	}
}

func (u *professionalProfileUsecase) GetProfessional(ctx context.Context, userID uuid.UUID) (*dto.ProfessionalResponse, error) {
	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	return converter.ProfessionalProfileToResponse(profile), nil
}

// UpdateProfessional applies the mutable subset of the professional
// account. Verification flags are not client-writable.
func (u *professionalProfileUsecase) UpdateProfessional(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	if actorID != userID {
		return nil, ErrNotYourProfile
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.profileRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	user := &profile.User
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if req.Profession != "" {
		profile.Profession = req.Profession
	}
	if req.Specialties != nil {
		profile.Specialties = entity.StringList(req.Specialties)
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.CoverageRadiusKm != nil {
		profile.CoverageRadiusKm = *req.CoverageRadiusKm
	}
	if req.Status != "" {
		profile.Status = entity.ProfessionalStatus(req.Status)
	}
	if err := u.profileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update professional profile: %+v", err)
		return nil, err
	}

	if req.Services != nil {
		services := make([]entity.ServiceOffering, len(req.Services))
		for i, svc := range req.Services {
			services[i] = entity.ServiceOffering{
				ProfessionalID: userID,
				Name:           svc.Name,
				Description:    svc.Description,
				Price:          svc.Price,
				DurationMins:   svc.DurationMins,
			}
		}
		if err := u.profileRepo.ReplaceServices(tx, userID, services); err != nil {
			u.log.Warnf("Failed to replace service offerings: %+v", err)
			return nil, err
		}
		profile.Services = services
	}

	u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionProfileUpdate, "professional_profile", userID.String(), nil, nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ProfessionalProfileToResponse(profile), nil
}

func (u *professionalProfileUsecase) ListProfessionals(ctx context.Context) (*dto.ProfessionalListResponse, error) {
	return u.SearchProfessionals(ctx, nil)
}

func (u *professionalProfileUsecase) SearchProfessionals(ctx context.Context, filter *entity.ProfessionalFilter) (*dto.ProfessionalListResponse, error) {
	profiles, err := u.profileRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find professionals: %+v", err)
		return nil, err
	}

	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalProfilesToResponses(profiles),
		Total:         len(profiles),
	}, nil
}

func (u *professionalProfileUsecase) GetSchedule(ctx context.Context, professionalID uuid.UUID) (*dto.ScheduleResponse, error) {
	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", professionalID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	windows, err := u.windowRepo.FindByProfessionalID(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to find availability windows: %+v", err)
		return nil, err
	}

	return &dto.ScheduleResponse{
		Windows: converter.WindowsToResponses(windows),
		Status:  string(profile.Status),
	}, nil
}

// SetSchedule replaces the whole weekly window set in one transaction.
func (u *professionalProfileUsecase) SetSchedule(ctx context.Context, professionalID uuid.UUID, req *dto.SetScheduleRequest) (*dto.ScheduleResponse, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	if actorID != professionalID {
		return nil, ErrNotYourProfile
	}

	windows := make([]entity.AvailabilityWindow, len(req.Windows))
	for i, w := range req.Windows {
		windows[i] = entity.AvailabilityWindow{
			ProfessionalID: professionalID,
			Weekday:        w.Weekday,
			StartTime:      w.StartTime,
			EndTime:        w.EndTime,
		}
	}
	if err := ValidateWindows(windows); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.profileRepo.FindByUserID(tx, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", professionalID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	if err := u.windowRepo.Replace(tx, professionalID, windows); err != nil {
		u.log.Warnf("Failed to replace availability windows: %+v", err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionScheduleUpdate, "availability_windows", professionalID.String(), nil, len(windows))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.ScheduleResponse{
		Windows: converter.WindowsToResponses(windows),
		Status:  string(profile.Status),
	}, nil
}

// RateProfessional appends a rating and recomputes the arithmetic mean
// inside the same transaction, so a failed insert never moves the average.
func (u *professionalProfileUsecase) RateProfessional(ctx context.Context, professionalID uuid.UUID, req *dto.RateProfessionalRequest) (*dto.RatingResponse, error) {
	clientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	if clientID == professionalID {
		return nil, ErrCannotRateSelf
	}
	if req.Score < entity.RatingMinScore || req.Score > entity.RatingMaxScore {
		return nil, ErrInvalidScore
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.profileRepo.FindByUserID(tx, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", professionalID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	rating := &entity.Rating{
		ProfessionalID: professionalID,
		ClientID:       clientID,
		Score:          req.Score,
		Comment:        req.Comment,
	}
	if err := u.ratingRepo.Create(tx, rating); err != nil {
		u.log.Warnf("Failed to create rating: %+v", err)
		return nil, err
	}

	ratings, err := u.ratingRepo.FindByProfessionalID(tx, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find ratings: %+v", err)
		return nil, err
	}

	profile.AverageRating = entity.AverageScore(ratings)
	if err := u.profileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update average rating: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, &clientID, entity.AuditActionRatingCreate, "rating", professionalID.String(), map[string]interface{}{
		"score": req.Score,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RatingResponse{
		Score:     rating.Score,
		Comment:   rating.Comment,
		ClientID:  rating.ClientID,
		CreatedAt: rating.CreatedAt,
	}, nil
}

func (u *professionalProfileUsecase) GetRatings(ctx context.Context, professionalID uuid.UUID) (*dto.RatingListResponse, error) {
	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", professionalID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	ratings, err := u.ratingRepo.FindByProfessionalID(u.db.WithContext(ctx), professionalID)
	if err != nil {
		u.log.Warnf("Failed to find ratings: %+v", err)
		return nil, err
	}

	return &dto.RatingListResponse{
		Ratings:       converter.RatingsToResponses(ratings),
		AverageRating: profile.AverageRating,
		Total:         len(ratings),
	}, nil
}
