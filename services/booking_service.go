// services/booking_service.go
package services

import (
	"errors"
	"time"

	"bookacut-backend/models"
	"bookacut-backend/utils"

	"github.com/google/uuid"
)

// SlotInterval is the booking granularity: appointments may only start on
// these boundaries within a day.
const SlotInterval = 30 * time.Minute

// Caller-input failures, reported back for correction. Checked in this
// order, short-circuiting on the first failure.
var (
	ErrInvalidService         = errors.New("unknown service")
	ErrInvalidStylist         = errors.New("unknown or inactive stylist")
	ErrInvalidTimeGranularity = errors.New("time must be in 30-minute increments")
	ErrInvalidDate            = errors.New("time is in the past")
)

// ErrSlotTaken is returned by AppointmentStore.InsertAppointment when the
// (stylist, start time) uniqueness constraint rejects the insert.
var ErrSlotTaken = errors.New("slot already taken")

// Catalog is the read-only reference data the scheduler validates against.
// Lookups return nil (not an error) when no row matches.
type Catalog interface {
	GetService(id uuid.UUID) (*models.Service, error)
	GetActiveStylist(id uuid.UUID) (*models.Stylist, error)
}

// AppointmentStore is the durable record of appointments and
// unavailability ranges.
type AppointmentStore interface {
	// HasConflict reports whether the stylist already has an appointment at
	// exactly start, or start falls inside one of their unavailability
	// ranges.
	HasConflict(stylistID uuid.UUID, start time.Time) (bool, error)

	// InsertAppointment atomically inserts, failing with ErrSlotTaken on a
	// uniqueness violation.
	InsertAppointment(appt *models.Appointment) error
}

type BookingRequest struct {
	ServiceID uuid.UUID
	StylistID uuid.UUID
	Start     time.Time
	FullName  string
	Email     string
	Phone     string
}

type BookingStatus string

const (
	StatusBooked          BookingStatus = "booked"
	StatusSlotUnavailable BookingStatus = "slot_unavailable"
)

// BookingResult is the outcome of a valid booking attempt, carrying the
// resolved display names either way.
type BookingResult struct {
	Status        BookingStatus
	AppointmentID uuid.UUID
	ServiceName   string
	StylistName   string
	DateText      string
	TimeText      string
}

type BookingService struct {
	catalog Catalog
	store   AppointmentStore
	now     func() time.Time
}

func NewBookingService(catalog Catalog, store AppointmentStore) *BookingService {
	return &BookingService{
		catalog: catalog,
		store:   store,
		now:     time.Now,
	}
}

// AttemptBooking validates the request, checks the slot and inserts the
// appointment. A taken slot is a normal outcome (StatusSlotUnavailable),
// not an error; validation failures return one of the ErrInvalid sentinels
// and any other error is a storage fault. No state is mutated unless the
// returned result has StatusBooked.
func (s *BookingService) AttemptBooking(req BookingRequest) (*BookingResult, error) {
	service, err := s.catalog.GetService(req.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrInvalidService
	}

	stylist, err := s.catalog.GetActiveStylist(req.StylistID)
	if err != nil {
		return nil, err
	}
	if stylist == nil {
		return nil, ErrInvalidStylist
	}

	if utils.TimeOfDay(req.Start)%SlotInterval != 0 {
		return nil, ErrInvalidTimeGranularity
	}

	if req.Start.Before(s.now()) {
		return nil, ErrInvalidDate
	}

	result := &BookingResult{
		ServiceName: service.Name,
		StylistName: stylist.Name,
		DateText:    req.Start.Format("Monday, Jan 2, 2006"),
		TimeText:    req.Start.Format("15:04"),
	}

	// Friendly pre-check. The unique index on (stylist_id, start_time)
	// remains the authoritative conflict detector; this only catches the
	// common case without burning an insert.
	conflict, err := s.store.HasConflict(req.StylistID, req.Start)
	if err != nil {
		return nil, err
	}
	if conflict {
		result.Status = StatusSlotUnavailable
		return result, nil
	}

	appt := &models.Appointment{
		StylistID: req.StylistID,
		ServiceID: req.ServiceID,
		StartTime: req.Start,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if err := s.store.InsertAppointment(appt); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			// Lost the race against a concurrent booking for the same slot.
			result.Status = StatusSlotUnavailable
			return result, nil
		}
		return nil, err
	}

	result.Status = StatusBooked
	result.AppointmentID = appt.ID
	return result, nil
}
