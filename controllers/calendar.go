// controllers/calendar.go
package controllers

import (
	"net/http"
	"time"

	"bookacut-backend/config"
	"bookacut-backend/models"
	"bookacut-backend/services"
	"bookacut-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CalendarRow is one appointment line in the schedule view
type CalendarRow struct {
	AppointmentID uuid.UUID `json:"appointmentId"`
	StartTime     time.Time `json:"startTime"`
	FullName      string    `json:"fullName"`
	Service       string    `json:"service"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
}

// UnavailabilityRow is one blocked range in the schedule view
type UnavailabilityRow struct {
	ID          uuid.UUID `json:"id"`
	StylistName string    `json:"stylistName"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
}

type CreateUnavailabilityInput struct {
	StylistID   string `json:"stylistId" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"` // yyyy-mm-dd
	StartTime   string `json:"startTime"`                    // HH:MM, ignored when startAllDay
	StartAllDay bool   `json:"startAllDay"`
	EndDate     string `json:"endDate" binding:"required"`
	EndTime     string `json:"endTime"`
	EndAllDay   bool   `json:"endAllDay"`
}

// GetCalendar returns every appointment and unavailability range, ordered
// by start time, optionally filtered to one stylist.
func GetCalendar(c *gin.Context) {
	var stylistFilter *uuid.UUID
	if raw := c.Query("stylistId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid stylist ID format")
			return
		}
		stylistFilter = &id
	}

	apptQuery := config.DB.Model(&models.Appointment{}).Order("start_time asc")
	unavailQuery := config.DB.Model(&models.StylistUnavailability{}).Order("start_time asc")
	if stylistFilter != nil {
		apptQuery = apptQuery.Where("stylist_id = ?", *stylistFilter)
		unavailQuery = unavailQuery.Where("stylist_id = ?", *stylistFilter)
	}

	var appointments []models.Appointment
	if err := apptQuery.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	var unavailabilities []models.StylistUnavailability
	if err := unavailQuery.Find(&unavailabilities).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve unavailability")
		return
	}

	var stylists []models.Stylist
	if err := config.DB.Order("name").Find(&stylists).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve stylists")
		return
	}

	serviceNames := make(map[uuid.UUID]string)
	stylistNames := make(map[uuid.UUID]string)
	var serviceList []models.Service
	if err := config.DB.Find(&serviceList).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	for _, s := range serviceList {
		serviceNames[s.ID] = s.Name
	}
	for _, s := range stylists {
		stylistNames[s.ID] = s.Name
	}

	rows := make([]CalendarRow, 0, len(appointments))
	for _, a := range appointments {
		rows = append(rows, CalendarRow{
			AppointmentID: a.ID,
			StartTime:     a.StartTime,
			FullName:      a.FullName,
			Service:       serviceNames[a.ServiceID],
			Email:         a.Email,
			Phone:         a.Phone,
		})
	}

	unavailRows := make([]UnavailabilityRow, 0, len(unavailabilities))
	for _, u := range unavailabilities {
		unavailRows = append(unavailRows, UnavailabilityRow{
			ID:          u.ID,
			StylistName: stylistNames[u.StylistID],
			StartTime:   u.StartTime,
			EndTime:     u.EndTime,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments":     rows,
		"unavailabilities": unavailRows,
		"stylists":         stylists,
	})
}

// CreateUnavailability blocks a stylist over a date/time range. Invalid
// windows (reversed dates, end not after start) are silent no-ops, matching
// the schedule form's redirect behavior. Existing appointments inside the
// range are left alone; they only matter to future booking attempts.
func CreateUnavailability(c *gin.Context) {
	var input CreateUnavailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	stylistUUID, err := uuid.Parse(input.StylistID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid stylist ID format")
		return
	}

	startDate, err := time.ParseInLocation("2006-01-02", input.StartDate, time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid start date format")
		return
	}
	endDate, err := time.ParseInLocation("2006-01-02", input.EndDate, time.Local)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid end date format")
		return
	}

	startTime, err := parseTimeOfDay(input.StartTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid start time format")
		return
	}
	endTime, err := parseTimeOfDay(input.EndTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid end time format")
		return
	}

	start, end, ok := services.ResolveUnavailabilityWindow(
		startDate, startTime, input.StartAllDay,
		endDate, endTime, input.EndAllDay,
	)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"message": "No change"})
		return
	}

	store := services.NewDBStore(config.DB)
	if err := store.InsertUnavailabilityIfAbsent(&models.StylistUnavailability{
		StylistID: stylistUUID,
		StartTime: start,
		EndTime:   end,
	}); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create unavailability")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Unavailability created"})
}

// DeleteUnavailability removes a range; a missing id still answers 200.
func DeleteUnavailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	store := services.NewDBStore(config.DB)
	if err := store.DeleteUnavailability(id); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete unavailability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unavailability deleted"})
}

// DeleteAppointment removes an appointment; a missing id still answers 200.
func DeleteAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		return
	}

	store := services.NewDBStore(config.DB)
	if err := store.DeleteAppointment(id); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}

// parseTimeOfDay reads "HH:MM" into an offset from midnight. Empty input
// is valid and returns nil.
func parseTimeOfDay(raw string) (*time.Duration, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return nil, err
	}
	d := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
	return &d, nil
}
