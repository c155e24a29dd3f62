// services/gorm_store.go
package services

import (
	"errors"
	"time"

	"bookacut-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// DBStore backs Catalog and AppointmentStore with Postgres through gorm.
// Every call reads current rows; nothing is cached across calls.
type DBStore struct {
	db *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) GetService(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := s.db.Where("id = ?", id).First(&service).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (s *DBStore) GetActiveStylist(id uuid.UUID) (*models.Stylist, error) {
	var stylist models.Stylist
	err := s.db.Where("id = ? AND is_active = true", id).First(&stylist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stylist, nil
}

func (s *DBStore) HasConflict(stylistID uuid.UUID, start time.Time) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Appointment{}).
		Where("stylist_id = ? AND start_time = ?", stylistID, start).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	// Half-open ranges: end_time is exclusive.
	if err := s.db.Model(&models.StylistUnavailability{}).
		Where("stylist_id = ? AND start_time <= ? AND end_time > ?", stylistID, start, start).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *DBStore) InsertAppointment(appt *models.Appointment) error {
	if err := s.db.Create(appt).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

// InsertUnavailabilityIfAbsent inserts the range unless an identical
// (stylist, start, end) row already exists.
func (s *DBStore) InsertUnavailabilityIfAbsent(rng *models.StylistUnavailability) error {
	var count int64
	if err := s.db.Model(&models.StylistUnavailability{}).
		Where("stylist_id = ? AND start_time = ? AND end_time = ?",
			rng.StylistID, rng.StartTime, rng.EndTime).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.db.Create(rng).Error
}

// DeleteAppointment removes the appointment; a missing id is a no-op.
func (s *DBStore) DeleteAppointment(id uuid.UUID) error {
	return s.db.Where("id = ?", id).Delete(&models.Appointment{}).Error
}

// DeleteUnavailability removes the range; a missing id is a no-op.
func (s *DBStore) DeleteUnavailability(id uuid.UUID) error {
	return s.db.Where("id = ?", id).Delete(&models.StylistUnavailability{}).Error
}

// isUniqueViolation recognizes a unique-constraint failure either through
// gorm's translated sentinel or the raw Postgres error code.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
