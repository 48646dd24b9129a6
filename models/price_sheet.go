package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriceSheetItem fixes a price for one service inside a sheet, independent of
// tiers and client overrides.
type PriceSheetItem struct {
	ServiceID uuid.UUID `json:"id"`
	Price     float64   `json:"price"`
}

// PriceSheetItemList is stored as a JSONB column.
type PriceSheetItemList []PriceSheetItem

func (l PriceSheetItemList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *PriceSheetItemList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}

type PriceSheet struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	IsActive    bool      `gorm:"default:true"`

	Services    PriceSheetItemList `gorm:"type:jsonb;default:'[]'"`
	LastUpdated time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *PriceSheet) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// Refresh LastUpdated on every write
func (p *PriceSheet) BeforeSave(tx *gorm.DB) (err error) {
	p.LastUpdated = time.Now()
	return
}
