package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"bookacut-backend/models"
	"bookacut-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	service *models.Service
	stylist *models.Stylist
}

func (s *stubCatalog) GetService(id uuid.UUID) (*models.Service, error) {
	if s.service != nil && s.service.ID == id {
		return s.service, nil
	}
	return nil, nil
}

func (s *stubCatalog) GetActiveStylist(id uuid.UUID) (*models.Stylist, error) {
	if s.stylist != nil && s.stylist.ID == id {
		return s.stylist, nil
	}
	return nil, nil
}

type stubStore struct {
	mu     sync.Mutex
	booked map[string]bool
}

func (s *stubStore) HasConflict(stylistID uuid.UUID, start time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.booked[stylistID.String()+start.String()], nil
}

func (s *stubStore) InsertAppointment(appt *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := appt.StylistID.String() + appt.StartTime.String()
	if s.booked[key] {
		return services.ErrSlotTaken
	}
	s.booked[key] = true
	appt.ID = uuid.New()
	return nil
}

func newBookingRouter() (*gin.Engine, uuid.UUID, uuid.UUID) {
	gin.SetMode(gin.TestMode)

	serviceID := uuid.New()
	stylistID := uuid.New()
	catalog := &stubCatalog{
		service: &models.Service{ID: serviceID, Name: "Haircut", Price: 25, IsActive: true},
		stylist: &models.Stylist{ID: stylistID, Name: "Alex", IsActive: true},
	}
	store := &stubStore{booked: make(map[string]bool)}

	bc := NewBookingController(services.NewBookingService(catalog, store))

	r := gin.New()
	r.POST("/api/bookings", bc.Book)
	return r, serviceID, stylistID
}

func postBooking(t *testing.T, r *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBooking(serviceID, stylistID uuid.UUID) map[string]any {
	return map[string]any{
		"serviceId": serviceID.String(),
		"stylistId": stylistID.String(),
		"date":      "2100-06-02",
		"time":      "09:00",
		"fullName":  "Pat Doe",
		"email":     "pat@example.com",
		"phone":     "+15550001111",
	}
}

func TestBook_Success(t *testing.T) {
	r, serviceID, stylistID := newBookingRouter()

	w := postBooking(t, r, validBooking(serviceID, stylistID))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "booked", resp["status"])
	assert.Equal(t, "Haircut", resp["serviceName"])
	assert.Equal(t, "Alex", resp["stylistName"])
	assert.Equal(t, "Pat Doe", resp["customerName"])
	assert.NotEmpty(t, resp["appointmentId"])
	assert.Equal(t, "09:00", resp["timeText"])
}

func TestBook_TakenSlotAnswersConflict(t *testing.T) {
	r, serviceID, stylistID := newBookingRouter()

	first := postBooking(t, r, validBooking(serviceID, stylistID))
	require.Equal(t, http.StatusCreated, first.Code)

	second := postBooking(t, r, validBooking(serviceID, stylistID))
	require.Equal(t, http.StatusConflict, second.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, "slot_unavailable", resp["status"])
	assert.Equal(t, "Haircut", resp["serviceName"])
	assert.Nil(t, resp["appointmentId"])
}

func TestBook_MisalignedTime(t *testing.T) {
	r, serviceID, stylistID := newBookingRouter()

	body := validBooking(serviceID, stylistID)
	body["time"] = "09:15"
	w := postBooking(t, r, body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "time", resp["field"])
}

func TestBook_PastDate(t *testing.T) {
	r, serviceID, stylistID := newBookingRouter()

	body := validBooking(serviceID, stylistID)
	body["date"] = "2020-06-02"
	w := postBooking(t, r, body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "date", resp["field"])
}

func TestBook_UnknownService(t *testing.T) {
	r, _, stylistID := newBookingRouter()

	body := validBooking(uuid.New(), stylistID)
	w := postBooking(t, r, body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "serviceId", resp["field"])
}

func TestBook_MalformedInput(t *testing.T) {
	r, serviceID, stylistID := newBookingRouter()

	cases := map[string]map[string]any{
		"missing fullName": func() map[string]any {
			b := validBooking(serviceID, stylistID)
			delete(b, "fullName")
			return b
		}(),
		"bad stylist uuid": func() map[string]any {
			b := validBooking(serviceID, stylistID)
			b["stylistId"] = "not-a-uuid"
			return b
		}(),
		"bad date": func() map[string]any {
			b := validBooking(serviceID, stylistID)
			b["date"] = "02/06/2100"
			return b
		}(),
		"bad phone": func() map[string]any {
			b := validBooking(serviceID, stylistID)
			b["phone"] = "abc"
			return b
		}(),
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := postBooking(t, r, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
