package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. The auth_id column carries the
// identity provider's subject and is the join point for webhook events.
type ProfileModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	AuthID        string    `gorm:"type:varchar(255);unique;not null"`
	Email         string    `gorm:"type:varchar(255)"`
	EmailVerified bool      `gorm:"not null;default:false"`
	DisplayName   string    `gorm:"type:varchar(120)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
