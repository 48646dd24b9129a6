package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomPrice is a per-client override for one service.
type CustomPrice struct {
	BasePrice float64 `json:"basePrice"`
}

// CustomPriceMap is keyed by service id and stored as a JSONB column. Updates
// replace the whole map.
type CustomPriceMap map[string]CustomPrice

func (m CustomPriceMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *CustomPriceMap) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, m)
}

type Client struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name  string    `gorm:"not null"`
	Email string    `gorm:"uniqueIndex;not null"`

	Phone   string
	Address string
	Notes   string

	HasCustomPricing bool           `gorm:"default:false"`
	CustomPricing    CustomPriceMap `gorm:"type:jsonb;default:'{}'"`
	IsActive         bool           `gorm:"default:true"`

	Quotes []Quote `gorm:"foreignKey:ClientID"`

	gorm.Model
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

// CustomPriceFor returns the client's override for a service, if any.
func (c *Client) CustomPriceFor(serviceID uuid.UUID) (float64, bool) {
	if c.CustomPricing == nil {
		return 0, false
	}
	cp, ok := c.CustomPricing[serviceID.String()]
	if !ok {
		return 0, false
	}
	return cp.BasePrice, true
}
