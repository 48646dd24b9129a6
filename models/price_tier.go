package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Duration labels a tier can carry.
var ValidTierDurations = []string{"15 mins", "35 mins", "HD", "FD", "2 Días"}

func IsValidTierDuration(duration string) bool {
	for _, d := range ValidTierDurations {
		if d == duration {
			return true
		}
	}
	return false
}

// PriceRange maps a pax band to a per-person price. Both bounds are inclusive.
type PriceRange struct {
	MinPax      int     `json:"minPax"`
	MaxPax      int     `json:"maxPax"`
	PricePerPax float64 `json:"pricePerPax"`
}

// PriceRangeList is stored as a JSONB column.
type PriceRangeList []PriceRange

func (r PriceRangeList) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *PriceRangeList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, r)
}

type PriceTier struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	Duration    string         `gorm:"type:varchar(20);not null"`
	PriceRanges PriceRangeList `gorm:"type:jsonb;not null"`
	ActiveFrom  time.Time      `gorm:"default:CURRENT_TIMESTAMP"`
	ActiveTo    *time.Time
	IsActive    bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *PriceTier) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// PriceForPax returns the per-person price for the first range covering pax.
// The second return value is false when no range applies and the caller must
// fall back to the next pricing source.
func (t *PriceTier) PriceForPax(pax int) (float64, bool) {
	for _, r := range t.PriceRanges {
		if pax >= r.MinPax && pax <= r.MaxPax {
			return r.PricePerPax, true
		}
	}
	return 0, false
}

// ValidatePriceRanges checks that ranges are well-formed, ascending and
// non-overlapping.
func ValidatePriceRanges(ranges []PriceRange) error {
	if len(ranges) == 0 {
		return errors.New("at least one price range is required")
	}
	prevMax := 0
	for i, r := range ranges {
		if r.MinPax < 1 {
			return fmt.Errorf("range %d: minPax must be at least 1", i)
		}
		if r.MaxPax < r.MinPax {
			return fmt.Errorf("range %d: maxPax must not be below minPax", i)
		}
		if r.PricePerPax < 0 {
			return fmt.Errorf("range %d: pricePerPax must not be negative", i)
		}
		if r.MinPax <= prevMax {
			return fmt.Errorf("range %d: overlaps or is out of order with the previous range", i)
		}
		prevMax = r.MaxPax
	}
	return nil
}
