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

// preferenceService implements the PreferenceUsecase interface, including
// the gate consulted by the dispatch pipeline.
type preferenceService struct {
	prefRepo repository.PreferenceRepository
	logger   *slog.Logger
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(
	prefRepo repository.PreferenceRepository,
	logger *slog.Logger,
) usecase.PreferenceUsecase {
	return &preferenceService{
		prefRepo: prefRepo,
		logger:   logger,
	}
}

// GetPreferences retrieves the preference document for a profile. A profile
// that never saved one gets an empty document, which reads as all-disabled.
func (srv *preferenceService) GetPreferences(ctx context.Context, profileID uuid.UUID) (*entity.Preferences, error) {
	prefs, err := srv.prefRepo.FindByProfileID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return &entity.Preferences{ProfileID: profileID}, nil
		}

		return nil, errors.Wrap(err, "failed to get preferences")
	}

	return prefs, nil
}

// UpdatePreferences replaces the preference document for a profile.
func (srv *preferenceService) UpdatePreferences(ctx context.Context, profileID uuid.UUID, input *usecase.UpdatePreferencesInput) (*entity.Preferences, error) {
	prefs := &entity.Preferences{
		ProfileID:     profileID,
		Notifications: input.Notifications,
		UpdatedAt:     time.Now(),
	}

	if err := srv.prefRepo.Upsert(ctx, prefs); err != nil {
		return nil, errors.Wrap(domainerrors.NewDatabaseExecuteError(err, "failed to save preferences"), "update preferences")
	}

	return prefs, nil
}

// NotifyOnUpdates reports whether the profile has update emails enabled.
// It fails closed: a missing document, a malformed document, or a store
// error all return false. The error is logged, never propagated, because
// uncertain state must not trigger a notification.
func (srv *preferenceService) NotifyOnUpdates(ctx context.Context, profileID uuid.UUID) bool {
	prefs, err := srv.prefRepo.FindByProfileID(ctx, profileID)
	if err != nil {
		if !errors.Is(err, repository.ErrPreferencesNotFound) {
			srv.logger.Warn("Preference lookup failed, treating as disabled",
				slog.String("profile_id", profileID.String()),
				slog.Any("error", err),
			)
		}

		return false
	}

	return prefs.EmailUpdatesEnabled()
}
