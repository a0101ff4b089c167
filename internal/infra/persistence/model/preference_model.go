package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PreferenceModel mirrors the 'profile_preferences' table. The notification
// document is stored as JSONB verbatim, so fields a client never set stay
// absent instead of collapsing to false.
type PreferenceModel struct {
	ProfileID     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Notifications datatypes.JSON `gorm:"type:jsonb"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PreferenceModel) TableName() string {
	return "profile_preferences"
}
