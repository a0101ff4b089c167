package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// OperatingAreaInput carries a declared service catchment. A zero radius is
// legal and matches only opportunities at the exact center point.
type OperatingAreaInput struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	RadiusKm  float64 `json:"radius_km" validate:"gte=0"`
}

// UpdateProfessionalInfoInput carries the professional-info fields.
// OperatingArea may be nil to withdraw the declared catchment.
type UpdateProfessionalInfoInput struct {
	Profession    string              `json:"profession" validate:"required,max=120"`
	Bio           string              `json:"bio" validate:"max=2000"`
	OperatingArea *OperatingAreaInput `json:"operating_area" validate:"omitempty"`
}

// ProfessionalUsecase defines the professional-info management use cases.
type ProfessionalUsecase interface {
	// GetProfessionalInfo retrieves the professional-info record for a profile.
	GetProfessionalInfo(ctx context.Context, profileID uuid.UUID) (*entity.ProfessionalInfo, error)

	// UpdateProfessionalInfo creates or replaces the professional-info record.
	UpdateProfessionalInfo(ctx context.Context, profileID uuid.UUID, input *UpdateProfessionalInfoInput) (*entity.ProfessionalInfo, error)
}
