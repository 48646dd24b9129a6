// services/email_quote_service.go
package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"cotizapro-backend/models"

	"gorm.io/gorm"
)

type EmailQuoteService struct {
	db     *gorm.DB
	quotes *QuoteService
}

func NewEmailQuoteService(db *gorm.DB) *EmailQuoteService {
	return &EmailQuoteService{
		db:     db,
		quotes: NewQuoteService(db),
	}
}

// Process records an inbound quote-request email, runs service detection over
// its body and, when candidates are found, creates a preliminary quote for
// the sender. The intake record is persisted even when detection finds
// nothing so the email can be reprocessed later.
func (s *EmailQuoteService) Process(subject, sender, originalHTML string) (*models.EmailQuote, error) {
	emailQuote := models.EmailQuote{
		Subject:      subject,
		Sender:       strings.ToLower(strings.TrimSpace(sender)),
		ReceivedAt:   time.Now(),
		OriginalHTML: originalHTML,
		Status:       models.EmailQuoteStatusPending,
	}

	emailQuote.DetectedServices = s.detectServices(originalHTML)

	if err := s.db.Create(&emailQuote).Error; err != nil {
		return nil, err
	}

	if len(emailQuote.DetectedServices) == 0 {
		return &emailQuote, nil
	}

	quote, err := s.createPreliminaryQuote(&emailQuote)
	if err != nil {
		emailQuote.Status = models.EmailQuoteStatusFailed
		emailQuote.ProcessingErrors = append(emailQuote.ProcessingErrors, models.ProcessingError{
			Message:   err.Error(),
			Timestamp: time.Now(),
		})
		if saveErr := s.db.Save(&emailQuote).Error; saveErr != nil {
			log.Printf("Failed to mark email quote %s as failed: %v", emailQuote.ID, saveErr)
		}
		return &emailQuote, nil
	}

	emailQuote.ProcessedQuoteID = &quote.ID
	emailQuote.Status = models.EmailQuoteStatusProcessed
	if err := s.db.Save(&emailQuote).Error; err != nil {
		return nil, err
	}

	return &emailQuote, nil
}

func (s *EmailQuoteService) createPreliminaryQuote(emailQuote *models.EmailQuote) (*models.Quote, error) {
	// Find or create the client by sender address; the local part serves as
	// a temporary name until someone edits the record.
	var client models.Client
	err := s.db.First(&client, "email = ?", emailQuote.Sender).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		client = models.Client{
			Email: emailQuote.Sender,
			Name:  strings.SplitN(emailQuote.Sender, "@", 2)[0],
		}
		if err := s.db.Create(&client).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	lines := make([]QuoteLineInput, 0, len(emailQuote.DetectedServices))
	for _, candidate := range emailQuote.DetectedServices {
		var service models.Service
		if err := s.db.First(&service, "name = ?", candidate.ServiceName).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entity: "service", ID: candidate.ServiceName}
			}
			return nil, err
		}

		quantity := candidate.Quantity
		if quantity < 1 {
			quantity = 1
		}
		lines = append(lines, QuoteLineInput{
			ServiceID: service.ID,
			Quantity:  quantity,
		})
	}

	return s.quotes.CreateQuote(client.ID, lines, "Generada desde email: "+emailQuote.Subject)
}

// detectServices extracts service candidates from the email body. The
// detection step itself is not implemented yet; intakes are stored with no
// candidates and stay pending for manual handling.
func (s *EmailQuoteService) detectServices(originalHTML string) models.DetectedServiceList {
	return nil
}
