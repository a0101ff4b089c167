package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfessionalModel mirrors the 'professional_info' table. The operating
// area columns are nullable as a group: either all three are set or the
// profile has no declared catchment.
type ProfessionalModel struct {
	ProfileID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Profession string    `gorm:"type:varchar(100)"`
	Bio        string    `gorm:"type:text"`
	AreaLat    *float64  `gorm:"type:double precision"`
	AreaLng    *float64  `gorm:"type:double precision"`
	AreaRadius *float64  `gorm:"type:double precision"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfessionalModel) TableName() string {
	return "professional_info"
}
