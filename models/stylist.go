package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Stylist struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Bio       string    `json:"bio"`
	Specialty string    `json:"specialty"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`

	// Optional link to the account that manages this profile.
	UserID *uuid.UUID `gorm:"type:uuid;index" json:"-"`

	Appointments     []Appointment           `gorm:"foreignKey:StylistID" json:"-"`
	Unavailabilities []StylistUnavailability `gorm:"foreignKey:StylistID" json:"-"`
}

func (s *Stylist) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
