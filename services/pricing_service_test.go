package services

import (
	"testing"

	"cotizapro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(basePrice float64) *models.Service {
	return &models.Service{ID: uuid.New(), Name: "Tour", BasePrice: basePrice}
}

func testClientWithCustomPrice(serviceID uuid.UUID, price float64) *models.Client {
	return &models.Client{
		ID:               uuid.New(),
		HasCustomPricing: true,
		CustomPricing: models.CustomPriceMap{
			serviceID.String(): {BasePrice: price},
		},
	}
}

func TestResolveUnitPriceBasePriceFallback(t *testing.T) {
	service := testService(100)
	client := &models.Client{ID: uuid.New()}

	price := resolveUnitPrice(service, client, nil, 3)

	assert.Equal(t, 100.0, price)
}

func TestResolveUnitPriceTierWinsOverCustomAndBase(t *testing.T) {
	service := testService(100)
	client := testClientWithCustomPrice(service.ID, 90)
	tier := &models.PriceTier{
		ServiceID:   service.ID,
		IsActive:    true,
		PriceRanges: models.PriceRangeList{{MinPax: 1, MaxPax: 5, PricePerPax: 80}},
	}

	price := resolveUnitPrice(service, client, tier, 5)

	assert.Equal(t, 80.0, price)
}

func TestResolveUnitPriceCustomWinsOverBase(t *testing.T) {
	service := testService(100)
	client := testClientWithCustomPrice(service.ID, 90)

	price := resolveUnitPrice(service, client, nil, 3)

	assert.Equal(t, 90.0, price)
}

func TestResolveUnitPriceTierMissFallsThrough(t *testing.T) {
	service := testService(100)
	tier := &models.PriceTier{
		ServiceID:   service.ID,
		IsActive:    true,
		PriceRanges: models.PriceRangeList{{MinPax: 1, MaxPax: 5, PricePerPax: 80}},
	}

	// pax 6 is outside every range: the custom price applies next
	client := testClientWithCustomPrice(service.ID, 90)
	assert.Equal(t, 90.0, resolveUnitPrice(service, client, tier, 6))

	// without a custom price the base price is the last resort
	assert.Equal(t, 100.0, resolveUnitPrice(service, &models.Client{ID: uuid.New()}, tier, 6))
}

func TestResolveUnitPriceCustomPriceForOtherServiceIgnored(t *testing.T) {
	service := testService(100)
	client := testClientWithCustomPrice(uuid.New(), 90)

	assert.Equal(t, 100.0, resolveUnitPrice(service, client, nil, 1))
}

func TestResolveUnitPriceIsDeterministic(t *testing.T) {
	service := testService(100)
	client := testClientWithCustomPrice(service.ID, 90)
	tier := &models.PriceTier{
		ServiceID:   service.ID,
		PriceRanges: models.PriceRangeList{{MinPax: 1, MaxPax: 5, PricePerPax: 80}},
	}

	first := resolveUnitPrice(service, client, tier, 4)
	second := resolveUnitPrice(service, client, tier, 4)

	assert.Equal(t, first, second)
}

func TestLineTotal(t *testing.T) {
	total, err := LineTotal(90, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 243.0, total)

	total, err = LineTotal(50, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 100.0, total)

	total, err = LineTotal(30, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, 15.0, total)
}

func TestLineTotalMatchesQuoteItemAmount(t *testing.T) {
	item := models.QuoteItem{UnitPrice: 72.5, Quantity: 4, DiscountPercent: 12.5}

	total, err := LineTotal(item.UnitPrice, item.Quantity, item.DiscountPercent)
	require.NoError(t, err)

	assert.Equal(t, item.Amount(), total)
}

func TestLineTotalRejectsBadInput(t *testing.T) {
	var constraint *ConstraintError

	_, err := LineTotal(100, 0, 0)
	require.Error(t, err)
	assert.ErrorAs(t, err, &constraint)

	_, err = LineTotal(100, 1, -1)
	require.Error(t, err)
	assert.ErrorAs(t, err, &constraint)

	_, err = LineTotal(100, 1, 150)
	require.Error(t, err)
	assert.ErrorAs(t, err, &constraint)
}
