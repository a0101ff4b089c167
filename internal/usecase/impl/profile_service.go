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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	txManager   repository.TransactionManager
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetProfile retrieves a profile by its ID.
func (srv *profileService) GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "get profile")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// GetProfileByAuthID retrieves the profile bound to an identity provider
// subject.
func (srv *profileService) GetProfileByAuthID(ctx context.Context, authID string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByAuthID(ctx, authID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "get profile by auth id")
		}

		return nil, errors.Wrap(err, "failed to find profile by auth id")
	}

	return profile, nil
}

// UpdateProfile updates the mutable profile fields.
func (srv *profileService) UpdateProfile(ctx context.Context, profileID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "update profile")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile.DisplayName = input.DisplayName
	profile.UpdatedAt = time.Now()

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(domainerrors.ErrProfileUpdateFailed.WrapMessage(err.Error()), "update profile")
	}

	srv.logger.Info("Profile updated", slog.String("profile_id", profileID.String()))

	return profile, nil
}

// DeleteProfile removes a profile and all dependent records in a single
// transaction, so a half-deleted profile can never match opportunities.
func (srv *profileService) DeleteProfile(ctx context.Context, profileID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewPreferenceRepository().DeleteByProfileID(ctx, profileID); err != nil {
			return errors.Wrap(err, "failed to delete preferences")
		}

		if err := txRepoFactory.NewProfessionalRepository().DeleteByProfileID(ctx, profileID); err != nil {
			return errors.Wrap(err, "failed to delete professional info")
		}

		return txRepoFactory.NewProfileRepository().Delete(ctx, profileID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(domainerrors.ErrProfileNotFound, "delete profile")
		}

		return errors.Wrap(err, "failed to delete profile")
	}

	srv.logger.Info("Profile deleted", slog.String("profile_id", profileID.String()))

	return nil
}
