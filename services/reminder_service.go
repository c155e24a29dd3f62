// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"bookacut-backend/models"
	"bookacut-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler sends tomorrow's appointment reminders every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		s.SendUpcomingReminders(time.Now())
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendUpcomingReminders delivers an SMS for every appointment that starts
// tomorrow (relative to now) and records the attempt. Appointments without
// a phone number are logged as skipped. Failures are never retried.
func (s *ReminderService) SendUpcomingReminders(now time.Time) {
	log.Println("Starting reminder processing...")

	dayStart := utils.BeginningOfDay(now).AddDate(0, 0, 1)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var appointments []models.Appointment
	if err := s.db.
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Order("start_time asc").
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's appointments: %v", err)
		return
	}

	for _, appt := range appointments {
		s.sendReminder(appt)
	}

	log.Printf("Reminder processing completed (%d appointments)", len(appointments))
}

func (s *ReminderService) sendReminder(appt models.Appointment) {
	var stylist models.Stylist
	stylistName := "your stylist"
	if err := s.db.First(&stylist, "id = ?", appt.StylistID).Error; err == nil {
		stylistName = stylist.Name
	}

	message := fmt.Sprintf("Hi %s, a reminder of your appointment with %s tomorrow at %s.",
		appt.FullName, stylistName, appt.StartTime.Format("15:04"))

	if appt.Phone == "" {
		s.logReminder(appt, message, "skipped", "no phone number on file")
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(appt.Phone)
	params.SetBody(message)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", appt.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", appt.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", appt.Phone)
	}

	s.logReminder(appt, message, status, errorMsg)
}

func (s *ReminderService) logReminder(appt models.Appointment, message, status, errorMsg string) {
	reminderLog := models.ReminderLog{
		AppointmentID: appt.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for appointment %s: %v", appt.ID, err)
	}
}
