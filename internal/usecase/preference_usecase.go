package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdatePreferencesInput mirrors the preference document shape. Omitted
// branches are stored as absent and read back as disabled.
type UpdatePreferencesInput struct {
	Notifications *entity.NotificationPreferences `json:"notifications"`
}

// PreferenceUsecase defines the preference management use cases.
type PreferenceUsecase interface {
	PreferenceGate

	// GetPreferences retrieves the preference document for a profile.
	// A profile that never saved preferences gets an empty document back.
	GetPreferences(ctx context.Context, profileID uuid.UUID) (*entity.Preferences, error)

	// UpdatePreferences replaces the preference document for a profile.
	UpdatePreferences(ctx context.Context, profileID uuid.UUID, input *UpdatePreferencesInput) (*entity.Preferences, error)
}

// PreferenceGate answers whether a profile should receive update emails.
// It never returns an error: a missing document, a malformed document, or a
// failed lookup all read as "do not send".
type PreferenceGate interface {
	NotifyOnUpdates(ctx context.Context, profileID uuid.UUID) bool
}
