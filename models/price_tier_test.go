package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceForPaxBoundsAreInclusive(t *testing.T) {
	tier := PriceTier{
		PriceRanges: PriceRangeList{
			{MinPax: 1, MaxPax: 5, PricePerPax: 80},
			{MinPax: 6, MaxPax: 10, PricePerPax: 70},
		},
	}

	price, ok := tier.PriceForPax(1)
	require.True(t, ok)
	assert.Equal(t, 80.0, price)

	price, ok = tier.PriceForPax(5)
	require.True(t, ok)
	assert.Equal(t, 80.0, price)

	price, ok = tier.PriceForPax(6)
	require.True(t, ok)
	assert.Equal(t, 70.0, price)
}

func TestPriceForPaxNoApplicableRange(t *testing.T) {
	tier := PriceTier{
		PriceRanges: PriceRangeList{
			{MinPax: 1, MaxPax: 5, PricePerPax: 80},
		},
	}

	_, ok := tier.PriceForPax(6)
	assert.False(t, ok)
}

func TestPriceForPaxFirstMatchWins(t *testing.T) {
	tier := PriceTier{
		PriceRanges: PriceRangeList{
			{MinPax: 1, MaxPax: 10, PricePerPax: 80},
			{MinPax: 5, MaxPax: 10, PricePerPax: 60},
		},
	}

	price, ok := tier.PriceForPax(7)
	require.True(t, ok)
	assert.Equal(t, 80.0, price)
}

func TestValidatePriceRanges(t *testing.T) {
	err := ValidatePriceRanges([]PriceRange{
		{MinPax: 1, MaxPax: 5, PricePerPax: 80},
		{MinPax: 6, MaxPax: 10, PricePerPax: 70},
	})
	assert.NoError(t, err)

	err = ValidatePriceRanges(nil)
	assert.Error(t, err)

	err = ValidatePriceRanges([]PriceRange{{MinPax: 0, MaxPax: 5, PricePerPax: 80}})
	assert.Error(t, err)

	err = ValidatePriceRanges([]PriceRange{{MinPax: 5, MaxPax: 2, PricePerPax: 80}})
	assert.Error(t, err)

	err = ValidatePriceRanges([]PriceRange{{MinPax: 1, MaxPax: 5, PricePerPax: -1}})
	assert.Error(t, err)

	// overlapping bands
	err = ValidatePriceRanges([]PriceRange{
		{MinPax: 1, MaxPax: 5, PricePerPax: 80},
		{MinPax: 5, MaxPax: 10, PricePerPax: 70},
	})
	assert.Error(t, err)

	// out of order
	err = ValidatePriceRanges([]PriceRange{
		{MinPax: 6, MaxPax: 10, PricePerPax: 70},
		{MinPax: 1, MaxPax: 5, PricePerPax: 80},
	})
	assert.Error(t, err)
}

func TestIsValidTierDuration(t *testing.T) {
	assert.True(t, IsValidTierDuration("15 mins"))
	assert.True(t, IsValidTierDuration("HD"))
	assert.True(t, IsValidTierDuration("2 Días"))
	assert.False(t, IsValidTierDuration("1 hour"))
}
