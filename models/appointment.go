package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment occupies a single slot for one stylist. The composite unique
// index on (stylist_id, start_time) is the authoritative double-booking
// guard: concurrent inserts for the same slot race on it, and the loser
// surfaces as a unique-constraint violation.
type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StylistID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stylist_start,priority:1" json:"stylistId"`
	StartTime time.Time `gorm:"not null;uniqueIndex:idx_stylist_start,priority:2" json:"startTime"`

	ServiceID uuid.UUID `gorm:"type:uuid;index;not null" json:"serviceId"`

	FullName string `gorm:"not null" json:"fullName"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `json:"phone"`

	CreatedAt time.Time `json:"createdAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
