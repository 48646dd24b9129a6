package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Material is a named cost attached to a service (consumables, rentals).
type Material struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// MaterialList is stored as a JSONB column.
type MaterialList []Material

func (m MaterialList) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *MaterialList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, m)
}

type Service struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name       string    `gorm:"not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;index;not null"`
	Category   Category  `gorm:"foreignKey:CategoryID"`

	Location    string       `gorm:"not null"`
	BasePrice   float64      `gorm:"type:decimal(10,2);not null"`
	Description string       `gorm:"not null"`
	Duration    int          `gorm:"default:60"` // in minutes
	Materials   MaterialList `gorm:"type:jsonb;default:'[]'"`
	IsActive    bool         `gorm:"default:true"`
	LastUpdated time.Time

	PriceTiers []PriceTier `gorm:"foreignKey:ServiceID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// Refresh LastUpdated on every write
func (s *Service) BeforeSave(tx *gorm.DB) (err error) {
	s.LastUpdated = time.Now()
	return
}
