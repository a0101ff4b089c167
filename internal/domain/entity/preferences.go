// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Preferences holds a profile's notification settings. Every nested level is
// optional: a profile that never saved preferences has no document at all,
// and a saved document may omit any branch. Readers must go through the
// accessor methods, which default to false on any missing link.
type Preferences struct {
	ProfileID     uuid.UUID                `json:"profile_id"`
	Notifications *NotificationPreferences `json:"notifications,omitempty"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

// NotificationPreferences groups notification settings by channel.
type NotificationPreferences struct {
	Email *EmailPreferences `json:"email,omitempty"`
}

// EmailPreferences holds per-topic email toggles.
type EmailPreferences struct {
	Updates   *bool `json:"updates,omitempty"`
	Marketing *bool `json:"marketing,omitempty"`
}

// EmailUpdatesEnabled reports whether the profile has opted into update
// emails. Any missing branch counts as disabled.
func (p *Preferences) EmailUpdatesEnabled() bool {
	if p == nil || p.Notifications == nil || p.Notifications.Email == nil {
		return false
	}
	if p.Notifications.Email.Updates == nil {
		return false
	}

	return *p.Notifications.Email.Updates
}

// EmailMarketingEnabled reports whether the profile has opted into
// marketing emails, defaulting to false on any missing branch.
func (p *Preferences) EmailMarketingEnabled() bool {
	if p == nil || p.Notifications == nil || p.Notifications.Email == nil {
		return false
	}
	if p.Notifications.Email.Marketing == nil {
		return false
	}

	return *p.Notifications.Email.Marketing
}
