// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProfessionalInfo holds the professional details a profile declares about
// itself, including the operating area used to match broadcast
// opportunities against the professional's catchment.
type ProfessionalInfo struct {
	ProfileID     uuid.UUID      `json:"profile_id"`     // Foreign Key linking this record to a Profile.
	Profession    string         `json:"profession"`     // The declared trade or profession.
	Bio           string         `json:"bio"`            // Free-form description of services offered.
	OperatingArea *OperatingArea `json:"operating_area"` // The declared service catchment. Nil means not declared.
	UpdatedAt     time.Time      `json:"updated_at"`     // Timestamp of the last modification.
}

// OperatingArea is a circle on the globe: a center point plus a radius in
// kilometers. A profile is only notified about opportunities inside it.
type OperatingArea struct {
	Center   Location `json:"center"`
	RadiusKm float64  `json:"radius_km"`
}
