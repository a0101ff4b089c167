package impl

import (
	"context"
	"log/slog"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// professionalService implements the ProfessionalUsecase interface.
type professionalService struct {
	proRepo repository.ProfessionalRepository
	logger  *slog.Logger
}

// NewProfessionalService is the constructor for professionalService.
func NewProfessionalService(
	proRepo repository.ProfessionalRepository,
	logger *slog.Logger,
) usecase.ProfessionalUsecase {
	return &professionalService{
		proRepo: proRepo,
		logger:  logger,
	}
}

// GetProfessionalInfo retrieves the professional-info record for a profile.
func (srv *professionalService) GetProfessionalInfo(ctx context.Context, profileID uuid.UUID) (*entity.ProfessionalInfo, error) {
	info, err := srv.proRepo.FindByProfileID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfessionalInfoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfessionalInfoNotFound, "get professional info")
		}

		return nil, errors.Wrap(err, "failed to find professional info")
	}

	return info, nil
}

// UpdateProfessionalInfo creates or replaces the professional-info record,
// including the declared operating area. A nil area withdraws the catchment
// and the profile stops matching opportunities.
func (srv *professionalService) UpdateProfessionalInfo(ctx context.Context, profileID uuid.UUID, input *usecase.UpdateProfessionalInfoInput) (*entity.ProfessionalInfo, error) {
	info := &entity.ProfessionalInfo{
		ProfileID:  profileID,
		Profession: input.Profession,
		Bio:        input.Bio,
		UpdatedAt:  time.Now(),
	}

	if input.OperatingArea != nil {
		area := input.OperatingArea
		if area.Latitude < -90 || area.Latitude > 90 ||
			area.Longitude < -180 || area.Longitude > 180 ||
			area.RadiusKm < 0 {
			return nil, errors.Wrap(domainerrors.ErrInvalidOperatingArea, "update professional info")
		}

		info.OperatingArea = &entity.OperatingArea{
			Center: entity.Location{
				Latitude:  area.Latitude,
				Longitude: area.Longitude,
			},
			RadiusKm: area.RadiusKm,
		}
	}

	if err := srv.proRepo.Upsert(ctx, info); err != nil {
		return nil, errors.Wrap(domainerrors.NewDatabaseExecuteError(err, "failed to save professional info"), "update professional info")
	}

	srv.logger.Info("Professional info updated",
		slog.String("profile_id", profileID.String()),
		slog.Bool("has_operating_area", info.OperatingArea != nil),
	)

	return info, nil
}
