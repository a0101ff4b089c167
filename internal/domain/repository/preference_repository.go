// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPreferencesNotFound is returned when a profile has never saved preferences.
var ErrPreferencesNotFound = errors.New("preferences not found")

// PreferenceRepository defines the interface for notification-preference persistence.
type PreferenceRepository interface {
	// FindByProfileID retrieves the preference document for a profile.
	// Returns ErrPreferencesNotFound if the profile has never saved one.
	FindByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.Preferences, error)

	// Upsert creates or replaces the preference document for a profile.
	Upsert(ctx context.Context, prefs *entity.Preferences) error

	// DeleteByProfileID removes the preference document for a profile.
	// Deleting an absent document is not an error.
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error
}
