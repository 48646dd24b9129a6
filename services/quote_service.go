// services/quote_service.go
package services

import (
	"errors"
	"log"
	"time"

	"cotizapro-backend/models"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Quotes stay valid this long after creation.
const quoteValidityDays = 30

type QuoteService struct {
	db       *gorm.DB
	pricing  *PricingService
	notifier *NotificationService
}

func NewQuoteService(db *gorm.DB) *QuoteService {
	return &QuoteService{
		db:       db,
		pricing:  NewPricingService(db),
		notifier: NewNotificationService(db),
	}
}

// QuoteLineInput is one requested service line.
type QuoteLineInput struct {
	ServiceID       uuid.UUID
	Quantity        int
	DiscountPercent float64
}

// CreateQuote assembles and persists a quote for a client. The client is
// checked first; every referenced service must exist. The operation is
// all-or-nothing: a partial quote is never written.
func (s *QuoteService) CreateQuote(clientID uuid.UUID, lines []QuoteLineInput, notes string) (*models.Quote, error) {
	var client models.Client
	if err := s.db.First(&client, "id = ?", clientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "client", ID: clientID.String()}
		}
		return nil, err
	}

	now := time.Now()
	items := make([]models.QuoteItem, 0, len(lines))

	for _, line := range lines {
		var service models.Service
		if err := s.db.First(&service, "id = ?", line.ServiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entity: "service", ID: line.ServiceID.String()}
			}
			return nil, err
		}

		unitPrice, err := s.pricing.ResolveLinePrice(&client, &service, line.Quantity, now)
		if err != nil {
			return nil, err
		}

		// Rejects out-of-range quantity and discount before anything is written
		if _, err := LineTotal(unitPrice, line.Quantity, line.DiscountPercent); err != nil {
			return nil, err
		}

		items = append(items, models.QuoteItem{
			ID:              uuid.New(),
			ServiceID:       service.ID,
			Quantity:        line.Quantity,
			UnitPrice:       unitPrice,
			DiscountPercent: line.DiscountPercent,
		})
	}

	quote := models.Quote{
		ClientID:      client.ID,
		CustomerName:  client.Name,
		CustomerEmail: client.Email,
		Items:         items,
		Status:        models.QuoteStatusPending,
		ValidUntil:    now.AddDate(0, 0, quoteValidityDays),
		Notes:         notes,
	}

	// Total is derived in the BeforeSave hook
	if err := s.db.Create(&quote).Error; err != nil {
		return nil, err
	}

	// Best effort, after the durable write
	s.notifier.NotifyQuoteCreated(&client, &quote)

	return &quote, nil
}

// GetQuoteByID loads a quote with its line items.
func (s *QuoteService) GetQuoteByID(id uuid.UUID) (*models.Quote, error) {
	var quote models.Quote
	if err := s.db.Preload("Items").First(&quote, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "quote", ID: id.String()}
		}
		return nil, err
	}
	return &quote, nil
}

func (s *QuoteService) ListQuotes() ([]models.Quote, error) {
	var quotes []models.Quote
	if err := s.db.Preload("Items").Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

// UpdateQuoteStatus moves a quote through the allowed-transitions table.
func (s *QuoteService) UpdateQuoteStatus(id uuid.UUID, status string) (*models.Quote, error) {
	if !models.IsValidQuoteStatus(status) {
		return nil, &ConstraintError{Field: "status", Message: "must be one of pending, approved, rejected, expired"}
	}

	quote, err := s.GetQuoteByID(id)
	if err != nil {
		return nil, err
	}

	if !models.CanTransitionQuoteStatus(quote.Status, status) {
		return nil, &ConstraintError{Field: "status", Message: "transition from " + quote.Status + " to " + status + " is not allowed"}
	}

	if err := s.db.Model(quote).Update("status", status).Error; err != nil {
		return nil, err
	}
	quote.Status = status

	if status == models.QuoteStatusApproved {
		var client models.Client
		if err := s.db.First(&client, "id = ?", quote.ClientID).Error; err == nil {
			s.notifier.NotifyQuoteApproved(&client, quote)
		}
	}

	return quote, nil
}

// ExpireOverdueQuotes marks pending quotes past their validity deadline as
// expired. Returns the number of quotes touched.
func (s *QuoteService) ExpireOverdueQuotes() (int64, error) {
	result := s.db.Model(&models.Quote{}).
		Where("status = ? AND valid_until < ?", models.QuoteStatusPending, time.Now()).
		Update("status", models.QuoteStatusExpired)
	return result.RowsAffected, result.Error
}

// StartExpiryScheduler runs the expiry sweep daily at 2 AM.
func (s *QuoteService) StartExpiryScheduler() {
	c := cron.New()

	c.AddFunc("0 2 * * *", func() {
		count, err := s.ExpireOverdueQuotes()
		if err != nil {
			log.Printf("Quote expiry sweep failed: %v", err)
			return
		}
		log.Printf("Quote expiry sweep completed, %d quote(s) expired", count)
	})

	c.Start()
	log.Println("Quote expiry scheduler started")
}
