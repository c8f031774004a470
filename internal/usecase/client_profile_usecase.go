package usecase

import (
	"context"
	"errors"

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
	ErrClientNotFound = errors.New("client not found")
	ErrNotYourProfile = errors.New("profile does not belong to you")
)

type ClientProfileUsecase interface {
	GetClient(ctx context.Context, userID uuid.UUID) (*dto.ClientResponse, error)
	UpdateClient(ctx context.Context, userID uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error)
}

type clientProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.ClientProfileRepository
	auditService service.AuditService
}

func NewClientProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ClientProfileRepository,
	auditService service.AuditService,
) ClientProfileUsecase {
	return &clientProfileUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		auditService: auditService,
	}
}

func (u *clientProfileUsecase) GetClient(ctx context.Context, userID uuid.UUID) (*dto.ClientResponse, error) {
	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find client %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrClientNotFound
	}

	return converter.ClientProfileToResponse(profile), nil
}

// UpdateClient applies the mutable subset of the client account. Email
// is immutable, only the owner may update.
func (u *clientProfileUsecase) UpdateClient(ctx context.Context, userID uuid.UUID, req *dto.UpdateClientRequest) (*dto.ClientResponse, error) {
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
		u.log.Warnf("Failed to find client %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrClientNotFound
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

	if req.Address != nil {
		profile.Street = req.Address.Street
		profile.Number = req.Address.Number
		profile.City = req.Address.City
		profile.PostalCode = req.Address.PostalCode
	}
	if err := u.profileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update client profile: %+v", err)
		return nil, err
	}

	if req.FavoriteLocations != nil {
		locations := make([]entity.FavoriteLocation, len(req.FavoriteLocations))
		for i, loc := range req.FavoriteLocations {
			locations[i] = entity.FavoriteLocation{
				ClientID:  userID,
				Name:      loc.Name,
				Latitude:  loc.Latitude,
				Longitude: loc.Longitude,
			}
		}
		if err := u.profileRepo.ReplaceFavoriteLocations(tx, userID, locations); err != nil {
			u.log.Warnf("Failed to replace favorite locations: %+v", err)
			return nil, err
		}
		profile.FavoriteLocations = locations
	}

	if req.PaymentMethods != nil {
		methods := make([]entity.PaymentMethod, len(req.PaymentMethods))
		for i, pm := range req.PaymentMethods {
			methods[i] = entity.PaymentMethod{
				ClientID: userID,
				Kind:     entity.PaymentMethodKind(pm.Kind),
				Details:  pm.Details,
			}
		}
		if err := u.profileRepo.ReplacePaymentMethods(tx, userID, methods); err != nil {
			u.log.Warnf("Failed to replace payment methods: %+v", err)
			return nil, err
		}
		profile.PaymentMethods = methods
	}

	u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionProfileUpdate, "client_profile", userID.String(), nil, nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ClientProfileToResponse(profile), nil
}
