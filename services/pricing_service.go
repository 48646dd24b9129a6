// services/pricing_service.go
package services

import (
	"fmt"
	"time"

	"cotizapro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PricingService struct {
	db *gorm.DB
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{db: db}
}

// FindActiveTier returns the tier in effect for a service at asOf, or nil if
// none qualifies. A tier qualifies when it is active and its activeTo is
// unset or still in the future. When several qualify, the most recent
// activeFrom wins; two qualifying tiers with the same activeFrom are
// ambiguous.
func (s *PricingService) FindActiveTier(serviceID uuid.UUID, asOf time.Time) (*models.PriceTier, error) {
	var tiers []models.PriceTier
	err := s.db.
		Where("service_id = ? AND is_active = true AND (active_to IS NULL OR active_to > ?)", serviceID, asOf).
		Order("active_from DESC").
		Limit(2).
		Find(&tiers).Error
	if err != nil {
		return nil, err
	}
	if len(tiers) == 0 {
		return nil, nil
	}
	if len(tiers) > 1 && tiers[0].ActiveFrom.Equal(tiers[1].ActiveFrom) {
		return nil, fmt.Errorf("service %s: %w", serviceID, ErrAmbiguousTier)
	}
	return &tiers[0], nil
}

// ResolveTierPrice looks up the tiered per-person price for a service and
// pax count. The boolean is false when no tier or no range applies.
func (s *PricingService) ResolveTierPrice(serviceID uuid.UUID, pax int, asOf time.Time) (float64, bool, error) {
	if pax < 1 {
		return 0, false, &ConstraintError{Field: "quantity", Message: "must be at least 1"}
	}
	tier, err := s.FindActiveTier(serviceID, asOf)
	if err != nil {
		return 0, false, err
	}
	if tier == nil {
		return 0, false, nil
	}
	price, ok := tier.PriceForPax(pax)
	return price, ok, nil
}

// ResolveLinePrice determines the unit price for one quote line. Precedence:
// tiered price, then the client's custom price, then the service base price.
// Tiers represent negotiated bulk rates and must win over a standing custom
// rate; do not reorder.
func (s *PricingService) ResolveLinePrice(client *models.Client, service *models.Service, pax int, asOf time.Time) (float64, error) {
	price, ok, err := s.ResolveTierPrice(service.ID, pax, asOf)
	if err != nil {
		return 0, err
	}
	if ok {
		return price, nil
	}
	return resolveUnitPrice(service, client, nil, pax), nil
}

func resolveUnitPrice(service *models.Service, client *models.Client, tier *models.PriceTier, pax int) float64 {
	if tier != nil {
		if price, ok := tier.PriceForPax(pax); ok {
			return price
		}
	}
	if client != nil {
		if price, ok := client.CustomPriceFor(service.ID); ok {
			return price
		}
	}
	return service.BasePrice
}

// LineTotal computes the discounted amount for one line. Quantity and
// discount are re-validated here because this path is also reachable from
// email-quote processing, not just the HTTP layer. The arithmetic itself
// lives on QuoteItem so stored quotes and ad-hoc line math cannot drift.
func LineTotal(unitPrice float64, quantity int, discountPercent float64) (float64, error) {
	if quantity < 1 {
		return 0, &ConstraintError{Field: "quantity", Message: "must be at least 1"}
	}
	if discountPercent < 0 || discountPercent > 100 {
		return 0, &ConstraintError{Field: "discount", Message: "must be between 0 and 100"}
	}
	item := models.QuoteItem{UnitPrice: unitPrice, Quantity: quantity, DiscountPercent: discountPercent}
	return item.Amount(), nil
}
