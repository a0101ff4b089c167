// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the core entity of the platform, representing one person's
// account as mirrored from the external identity provider.
type Profile struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the profile.
	AuthID        string    // The identity-provider subject this profile is synced from.
	Email         string    // The profile's contact email. Empty until the provider reports one.
	EmailVerified bool      // Whether the identity provider has verified the email address.
	DisplayName   string    // The profile's display name.
	CreatedAt     time.Time // Timestamp of when this profile was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this profile.
}

// Subscriber is the directory projection of a profile used by the
// opportunity dispatch pipeline: just the identifier and the verified
// contact address.
type Subscriber struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
