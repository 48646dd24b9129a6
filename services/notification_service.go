// services/notification_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"cotizapro-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type NotificationService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// NotifyQuoteCreated tells the client a new quote is ready.
func (s *NotificationService) NotifyQuoteCreated(client *models.Client, quote *models.Quote) {
	message := fmt.Sprintf(
		"Hola %s, tu cotización por %.2f está lista. Es válida hasta el %s.",
		client.Name, quote.Total, quote.ValidUntil.Format("02/01/2006"))
	s.send(client, quote, "quote_created", message)
}

// NotifyQuoteApproved confirms an approved quote to the client.
func (s *NotificationService) NotifyQuoteApproved(client *models.Client, quote *models.Quote) {
	message := fmt.Sprintf(
		"Hola %s, tu cotización por %.2f fue aprobada.",
		client.Name, quote.Total)
	s.send(client, quote, "quote_approved", message)
}

func (s *NotificationService) send(client *models.Client, quote *models.Quote, event, message string) {
	if client.Phone == "" {
		log.Printf("Client %s has no phone, skipping %s notification", client.ID, event)
		return
	}

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	var to string

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(client.Phone, "+") {
		to = "whatsapp:" + client.Phone
		channel = "whatsapp"
	} else {
		to = client.Phone
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send %s notification to %s: %v", event, client.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Notification sent to %s, SID: %s", client.Phone, *resp.Sid)
	} else {
		log.Printf("Notification sent to %s, but no SID returned", client.Phone)
	}

	notificationLog := models.NotificationLog{
		QuoteID:      quote.ID,
		ClientID:     client.ID,
		Event:        event,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&notificationLog).Error; err != nil {
		log.Printf("Failed to log notification for quote %s: %v", quote.ID, err)
	}
}
