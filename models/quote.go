package models

import (
	"time"

	"cotizapro-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	QuoteStatusPending  = "pending"
	QuoteStatusApproved = "approved"
	QuoteStatusRejected = "rejected"
	QuoteStatusExpired  = "expired"
)

func IsValidQuoteStatus(status string) bool {
	switch status {
	case QuoteStatusPending, QuoteStatusApproved, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// CanTransitionQuoteStatus implements the allowed-transitions table:
// pending -> approved/rejected, any state -> expired. Re-asserting the
// current status is a no-op.
func CanTransitionQuoteStatus(from, to string) bool {
	if from == to {
		return true
	}
	if to == QuoteStatusExpired {
		return true
	}
	return from == QuoteStatusPending &&
		(to == QuoteStatusApproved || to == QuoteStatusRejected)
}

type QuoteItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	QuoteID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	Quantity        int     `gorm:"default:1;not null"`
	UnitPrice       float64 `gorm:"type:decimal(10,2);not null"`
	DiscountPercent float64 `gorm:"type:decimal(5,2);default:0.0"`
}

// Amount is the discounted line total.
func (i QuoteItem) Amount() float64 {
	subtotal := i.UnitPrice * float64(i.Quantity)
	return subtotal - subtotal*(i.DiscountPercent/100)
}

type Quote struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Reference string    `gorm:"uniqueIndex;not null"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null"`

	// Client snapshot at quote time
	CustomerName  string `gorm:"not null"`
	CustomerEmail string `gorm:"not null"`

	Items []QuoteItem `gorm:"foreignKey:QuoteID"`

	Status     string    `gorm:"type:varchar(20);default:'pending'"`
	Total      float64   `gorm:"type:decimal(10,2);not null"`
	ValidUntil time.Time `gorm:"not null"`
	Notes      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Quote) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.Reference == "" {
		q.Reference = "COT-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)
	}
	return
}

// ComputeTotal derives Total from the line items. Callers never set Total
// directly.
func (q *Quote) ComputeTotal() {
	total := 0.0
	for _, item := range q.Items {
		total += item.Amount()
	}
	q.Total = total
}

// Keep the total in sync whenever the quote is written with its items loaded
func (q *Quote) BeforeSave(tx *gorm.DB) (err error) {
	if len(q.Items) > 0 {
		q.ComputeTotal()
	}
	return
}
