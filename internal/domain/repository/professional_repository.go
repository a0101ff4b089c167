// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfessionalInfoNotFound is returned when a profile has no professional-info record.
var ErrProfessionalInfoNotFound = errors.New("professional info not found")

// ProfessionalRepository defines the interface for professional-info persistence.
type ProfessionalRepository interface {
	// FindByProfileID retrieves the professional-info record for a profile.
	// Returns ErrProfessionalInfoNotFound if none exists.
	FindByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.ProfessionalInfo, error)

	// Upsert creates or replaces the professional-info record for a profile.
	Upsert(ctx context.Context, info *entity.ProfessionalInfo) error

	// FindOperatingArea retrieves just the declared operating area for a
	// profile. Returns (nil, nil) when the profile has professional info but
	// no declared area; returns ErrProfessionalInfoNotFound when the record
	// itself is missing.
	FindOperatingArea(ctx context.Context, profileID uuid.UUID) (*entity.OperatingArea, error)

	// DeleteByProfileID removes the professional-info record for a profile.
	// Deleting an absent record is not an error.
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error
}
