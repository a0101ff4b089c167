package impl

import (
	"context"
	"log/slog"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// webhookService implements the WebhookUsecase interface, mirroring
// identity-provider lifecycle events into the local profile store.
type webhookService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewWebhookService is the constructor for webhookService.
func NewWebhookService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.WebhookUsecase {
	return &webhookService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// HandleIdentityEvent applies one lifecycle event to the profile store.
func (srv *webhookService) HandleIdentityEvent(ctx context.Context, event *usecase.IdentityEvent) error {
	if event.User.ID == "" {
		return errors.New("identity event has no user id")
	}

	switch event.Type {
	case usecase.IdentityEventUserCreated, usecase.IdentityEventUserUpdated:
		return srv.upsertProfile(ctx, event)
	case usecase.IdentityEventUserDeleted:
		return srv.deleteProfile(ctx, event)
	default:
		return errors.Errorf("unknown identity event type: %s", event.Type)
	}
}

func (srv *webhookService) upsertProfile(ctx context.Context, event *usecase.IdentityEvent) error {
	profile, err := srv.profileRepo.FindByAuthID(ctx, event.User.ID)
	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		profile = &entity.Profile{
			ID:            uuid.New(),
			AuthID:        event.User.ID,
			Email:         event.User.Email,
			EmailVerified: event.User.EmailVerified,
			DisplayName:   event.User.Name,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		if err := srv.profileRepo.Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile from identity event")
		}

		srv.logger.Info("Profile created from identity event",
			slog.String("auth_id", event.User.ID),
			slog.String("profile_id", profile.ID.String()),
		)

		return nil
	case err != nil:
		return errors.Wrap(err, "failed to look up profile by auth id")
	}

	profile.Email = event.User.Email
	profile.EmailVerified = event.User.EmailVerified
	profile.DisplayName = event.User.Name
	profile.UpdatedAt = time.Now()

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to update profile from identity event")
	}

	srv.logger.Info("Profile updated from identity event",
		slog.String("auth_id", event.User.ID),
		slog.String("profile_id", profile.ID.String()),
	)

	return nil
}

func (srv *webhookService) deleteProfile(ctx context.Context, event *usecase.IdentityEvent) error {
	profile, err := srv.profileRepo.FindByAuthID(ctx, event.User.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			// Already gone; deletion events are idempotent.
			return nil
		}

		return errors.Wrap(err, "failed to look up profile by auth id")
	}

	if err := srv.profileRepo.Delete(ctx, profile.ID); err != nil {
		return errors.Wrap(err, "failed to delete profile from identity event")
	}

	srv.logger.Info("Profile deleted from identity event",
		slog.String("auth_id", event.User.ID),
		slog.String("profile_id", profile.ID.String()),
	)

	return nil
}
