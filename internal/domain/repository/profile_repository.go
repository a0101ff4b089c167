// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the standard operations for profile persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProfileRepository interface {
	// FindByID retrieves a single profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByAuthID retrieves a single profile by its identity-provider subject.
	FindByAuthID(ctx context.Context, authID string) (*entity.Profile, error)

	// Create persists a new profile entity to the storage.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile entity in the storage.
	Update(ctx context.Context, profile *entity.Profile) error

	// Delete removes a profile entity from the storage.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubscriberDirectory yields the candidate list for opportunity dispatch:
// profiles with a verified contact email. It is a separate, narrow contract
// because the dispatcher needs nothing else from profile persistence.
type SubscriberDirectory interface {
	// ListVerifiedSubscribers returns every profile with a verified email.
	ListVerifiedSubscribers(ctx context.Context) ([]*entity.Subscriber, error)
}
