package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StylistUnavailability blocks bookings for one stylist over the half-open
// interval [StartTime, EndTime). EndTime must be strictly after StartTime.
type StylistUnavailability struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StylistID uuid.UUID `gorm:"type:uuid;index;not null" json:"stylistId"`
	StartTime time.Time `gorm:"not null" json:"startTime"`
	EndTime   time.Time `gorm:"not null" json:"endTime"`

	CreatedAt time.Time `json:"createdAt"`
}

func (u *StylistUnavailability) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
