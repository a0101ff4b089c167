// Package usecase defines the application-layer interfaces and their
// input/output types.
package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput carries the mutable profile fields.
type UpdateProfileInput struct {
	DisplayName string `json:"display_name" validate:"required,max=120"`
}

// ProfileUsecase defines the profile management use cases.
type ProfileUsecase interface {
	// GetProfile retrieves a profile by its ID.
	GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error)

	// GetProfileByAuthID retrieves the profile bound to an identity
	// provider subject. Used to resolve the caller behind a token.
	GetProfileByAuthID(ctx context.Context, authID string) (*entity.Profile, error)

	// UpdateProfile updates the mutable profile fields.
	UpdateProfile(ctx context.Context, profileID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)

	// DeleteProfile removes a profile and all dependent records.
	DeleteProfile(ctx context.Context, profileID uuid.UUID) error
}
