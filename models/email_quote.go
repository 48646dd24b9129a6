package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EmailQuoteStatusPending   = "pending"
	EmailQuoteStatusProcessed = "processed"
	EmailQuoteStatusFailed    = "failed"
	EmailQuoteStatusIgnored   = "ignored"
)

// DetectedService is a service candidate extracted from an inbound email.
type DetectedService struct {
	ServiceName    string  `json:"serviceName"`
	Confidence     float64 `json:"confidence"`
	Quantity       int     `json:"quantity"`
	EstimatedPrice float64 `json:"estimatedPrice"`
}

type DetectedServiceList []DetectedService

func (l DetectedServiceList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *DetectedServiceList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}

type ProcessingError struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ProcessingErrorList []ProcessingError

func (l ProcessingErrorList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *ProcessingErrorList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}

type EmailQuote struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Subject    string    `gorm:"not null"`
	Sender     string    `gorm:"not null"`
	ReceivedAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	OriginalHTML     string              `gorm:"type:text;not null"`
	DetectedServices DetectedServiceList `gorm:"type:jsonb;default:'[]'"`
	Status           string              `gorm:"type:varchar(20);default:'pending'"`
	ProcessedQuoteID *uuid.UUID          `gorm:"type:uuid"`
	ProcessingErrors ProcessingErrorList `gorm:"type:jsonb;default:'[]'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *EmailQuote) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
