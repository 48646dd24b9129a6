package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteComputeTotal(t *testing.T) {
	quote := Quote{
		Items: []QuoteItem{
			{Quantity: 2, UnitPrice: 50, DiscountPercent: 0},
			{Quantity: 1, UnitPrice: 30, DiscountPercent: 50},
		},
	}

	quote.ComputeTotal()

	assert.Equal(t, 115.0, quote.Total)
}

func TestQuoteComputeTotalRecomputesAfterMutation(t *testing.T) {
	quote := Quote{
		Items: []QuoteItem{
			{Quantity: 3, UnitPrice: 90, DiscountPercent: 10},
		},
	}

	quote.ComputeTotal()
	assert.Equal(t, 243.0, quote.Total)

	quote.Items = append(quote.Items, QuoteItem{Quantity: 1, UnitPrice: 100})
	quote.ComputeTotal()
	assert.Equal(t, 343.0, quote.Total)
}

func TestQuoteItemAmountWithoutDiscount(t *testing.T) {
	item := QuoteItem{Quantity: 4, UnitPrice: 25}
	assert.Equal(t, 100.0, item.Amount())
}

func TestIsValidQuoteStatus(t *testing.T) {
	assert.True(t, IsValidQuoteStatus(QuoteStatusPending))
	assert.True(t, IsValidQuoteStatus(QuoteStatusApproved))
	assert.True(t, IsValidQuoteStatus(QuoteStatusRejected))
	assert.True(t, IsValidQuoteStatus(QuoteStatusExpired))
	assert.False(t, IsValidQuoteStatus("archived"))
	assert.False(t, IsValidQuoteStatus(""))
}

func TestCanTransitionQuoteStatus(t *testing.T) {
	assert.True(t, CanTransitionQuoteStatus(QuoteStatusPending, QuoteStatusApproved))
	assert.True(t, CanTransitionQuoteStatus(QuoteStatusPending, QuoteStatusRejected))

	// any state can expire
	assert.True(t, CanTransitionQuoteStatus(QuoteStatusPending, QuoteStatusExpired))
	assert.True(t, CanTransitionQuoteStatus(QuoteStatusApproved, QuoteStatusExpired))
	assert.True(t, CanTransitionQuoteStatus(QuoteStatusRejected, QuoteStatusExpired))

	// re-asserting the current status is a no-op
	assert.True(t, CanTransitionQuoteStatus(QuoteStatusPending, QuoteStatusPending))

	assert.False(t, CanTransitionQuoteStatus(QuoteStatusRejected, QuoteStatusApproved))
	assert.False(t, CanTransitionQuoteStatus(QuoteStatusApproved, QuoteStatusRejected))
	assert.False(t, CanTransitionQuoteStatus(QuoteStatusExpired, QuoteStatusPending))
}
