package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierHours(t *testing.T) {
	tests := []struct {
		label string
		hours float64
		known bool
	}{
		{"0-50 sqft", 1, true},
		{"50-100 sqft", 1.5, true},
		{"250-300 sqft", 3.5, true},
		{"500+ sqft", 6, true},
		{"9000 sqft", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		h, ok := TierHours(tt.label)
		assert.Equal(t, tt.hours, h, "hours for %q", tt.label)
		assert.Equal(t, tt.known, ok, "known for %q", tt.label)
	}
}

func TestAreaTierTableShape(t *testing.T) {
	require.Len(t, AreaTiers, 11)
	for i, tier := range AreaTiers {
		assert.Equal(t, 1+0.5*float64(i), tier.Hours, "tier %q", tier.Label)
	}
}

func TestCleaningQuoteSumsTierHours(t *testing.T) {
	q := CleaningQuote(CleaningSelection{
		CleaningType:  "normal",
		TypeOfService: "one_time",
		Services: map[string]string{
			"Bedroom": "50-100 sqft",
			"Kitchen": "100-150 sqft",
		},
	})
	assert.Equal(t, 3.5, q.TotalHours)
	assert.Equal(t, 600.0, q.RatePerHour)
	assert.Equal(t, 2100.0, q.Subtotal)
	assert.Equal(t, 0.0, q.Discount)
	assert.Equal(t, 2100.0, q.FinalAmount)
}

func TestCleaningQuoteDeepRate(t *testing.T) {
	q := CleaningQuote(CleaningSelection{
		CleaningType:  "deep",
		TypeOfService: "one_time",
		Services: map[string]string{
			"Bedroom": "50-100 sqft",
			"Kitchen": "100-150 sqft",
		},
	})
	assert.Equal(t, 3.5, q.TotalHours)
	assert.Equal(t, 3500.0, q.Subtotal)
	assert.Equal(t, 3500.0, q.FinalAmount)
}

func TestCleaningQuoteAMCDiscounts(t *testing.T) {
	tests := []struct {
		frequency string
		discount  float64
	}{
		{"3_months", 100},
		{"6_months", 250},
		{"12_months", 500},
		{"", 0},
		{"24_months", 0},
	}
	for _, tt := range tests {
		q := CleaningQuote(CleaningSelection{
			CleaningType:  "deep",
			TypeOfService: "amc",
			AMCFrequency:  tt.frequency,
			Services:      map[string]string{"Hall": "500+ sqft"},
		})
		assert.Equal(t, tt.discount, q.Discount, "frequency %q", tt.frequency)
		assert.Equal(t, q.Subtotal-tt.discount, q.FinalAmount, "frequency %q", tt.frequency)
	}
}

func TestCleaningQuoteDiscountIsFlat(t *testing.T) {
	small := CleaningQuote(CleaningSelection{
		CleaningType:  "normal",
		TypeOfService: "amc",
		AMCFrequency:  "6_months",
		Services:      map[string]string{"Toilet": "0-50 sqft"},
	})
	big := CleaningQuote(CleaningSelection{
		CleaningType:  "deep",
		TypeOfService: "amc",
		AMCFrequency:  "6_months",
		Services: map[string]string{
			"Hall":    "500+ sqft",
			"Kitchen": "500+ sqft",
		},
	})
	assert.Equal(t, 250.0, small.Discount)
	assert.Equal(t, 250.0, big.Discount)
}

func TestCleaningQuoteIgnoresDiscountForOneTime(t *testing.T) {
	q := CleaningQuote(CleaningSelection{
		CleaningType:  "normal",
		TypeOfService: "one_time",
		AMCFrequency:  "12_months", // stale field from a previous selection
		Services:      map[string]string{"Bedroom": "0-50 sqft"},
	})
	assert.Equal(t, 0.0, q.Discount)
}

func TestCleaningQuoteUnknownTierContributesZero(t *testing.T) {
	q := CleaningQuote(CleaningSelection{
		CleaningType:  "normal",
		TypeOfService: "one_time",
		Services: map[string]string{
			"Bedroom": "50-100 sqft",
			"Kitchen": "", // tier not assigned yet
		},
	})
	assert.Equal(t, 1.5, q.TotalHours)
}

func TestCleaningQuoteNegativeFinalAmountPreserved(t *testing.T) {
	// A 12-month AMC discount on a tiny one-room booking exceeds the
	// subtotal. The calculator does not floor at zero.
	q := CleaningQuote(CleaningSelection{
		CleaningType:  "normal",
		TypeOfService: "amc",
		AMCFrequency:  "12_months",
		Services:      map[string]string{},
	})
	assert.Equal(t, 0.0, q.Subtotal)
	assert.Equal(t, -500.0, q.FinalAmount)
}

func TestCleaningQuoteIdempotent(t *testing.T) {
	sel := CleaningSelection{
		CleaningType:  "deep",
		TypeOfService: "amc",
		AMCFrequency:  "6_months",
		Services: map[string]string{
			"Bedroom":  "200-250 sqft",
			"Kitchen":  "100-150 sqft",
			"Balcony":  "0-50 sqft",
			"T. V Room": "150-200 sqft",
		},
	}
	first := CleaningQuote(sel)
	second := CleaningQuote(sel)
	assert.Equal(t, first, second)
}
