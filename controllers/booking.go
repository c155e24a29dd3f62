// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"bookacut-backend/config"
	"bookacut-backend/models"
	"bookacut-backend/services"
	"bookacut-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingInput defines the expected JSON structure for a booking attempt
type BookingInput struct {
	ServiceID string `json:"serviceId" binding:"required"`
	StylistID string `json:"stylistId" binding:"required"`
	Date      string `json:"date" binding:"required"` // yyyy-mm-dd
	Time      string `json:"time" binding:"required"` // HH:MM, 24h
	FullName  string `json:"fullName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

type BookingController struct {
	Scheduler *services.BookingService
}

func NewBookingController(scheduler *services.BookingService) *BookingController {
	return &BookingController{Scheduler: scheduler}
}

// Book attempts to reserve a slot. A taken slot answers 409 with the same
// display payload a successful booking gets; validation failures answer 400
// naming the offending field.
func (bc *BookingController) Book(c *gin.Context) {
	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		respondFieldError(c, "serviceId", "Invalid service ID format")
		return
	}

	stylistUUID, err := uuid.Parse(input.StylistID)
	if err != nil {
		respondFieldError(c, "stylistId", "Invalid stylist ID format")
		return
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", input.Date+" "+input.Time, time.Local)
	if err != nil {
		respondFieldError(c, "date", "Invalid date or time format")
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		respondFieldError(c, "phone", "Invalid phone number")
		return
	}

	result, err := bc.Scheduler.AttemptBooking(services.BookingRequest{
		ServiceID: serviceUUID,
		StylistID: stylistUUID,
		Start:     start,
		FullName:  input.FullName,
		Email:     input.Email,
		Phone:     input.Phone,
	})

	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidService):
			respondFieldError(c, "serviceId", "Please choose a valid service")
		case errors.Is(err, services.ErrInvalidStylist):
			respondFieldError(c, "stylistId", "Please choose a valid stylist")
		case errors.Is(err, services.ErrInvalidTimeGranularity):
			respondFieldError(c, "time",
				"Please choose a time in 30-minute increments (for example, 9:00, 9:30, 10:00)")
		case errors.Is(err, services.ErrInvalidDate):
			respondFieldError(c, "date", "Please choose a date and time in the future")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to process booking")
		}
		return
	}

	if result.Status == services.StatusSlotUnavailable {
		c.JSON(http.StatusConflict, gin.H{
			"status":       result.Status,
			"customerName": input.FullName,
			"serviceName":  result.ServiceName,
			"stylistName":  result.StylistName,
			"dateText":     result.DateText,
			"timeText":     result.TimeText,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":        result.Status,
		"appointmentId": result.AppointmentID,
		"customerName":  input.FullName,
		"serviceName":   result.ServiceName,
		"stylistName":   result.StylistName,
		"dateText":      result.DateText,
		"timeText":      result.TimeText,
	})
}

// Options returns the reference data the booking form needs.
func Options(c *gin.Context) {
	var serviceList []models.Service
	if err := config.DB.Where("is_active = true").Order("name").Find(&serviceList).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	var stylists []models.Stylist
	if err := config.DB.Where("is_active = true").Order("name").Find(&stylists).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve stylists")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"services": serviceList,
		"stylists": stylists,
	})
}

func respondFieldError(c *gin.Context, field, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"field": field, "error": message})
}
