package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	s := Split(3500)

	assert.InDelta(t, 2966.10, s.TaxableAmount, 0.01)
	assert.InDelta(t, 533.90, s.GSTAmount, 0.01)
	assert.Equal(t, 1750.0, s.AdvanceAmount)
	assert.Equal(t, 1750.0, s.DueAmount)

	// The unrounded parts reconstruct the total exactly.
	assert.InDelta(t, s.Total, s.TaxableAmount+s.GSTAmount, 1e-9)
	assert.Equal(t, s.Total, s.AdvanceAmount+s.DueAmount)
}

func TestSplitDerivesFromUnroundedTotal(t *testing.T) {
	// A total whose taxable part rounds awkwardly: every derived value must
	// come from the raw total, not from previously rounded figures.
	s := Split(999.99)
	assert.InDelta(t, 999.99/1.18, s.TaxableAmount, 1e-9)
	assert.InDelta(t, 999.99-999.99/1.18, s.GSTAmount, 1e-9)

	r := s.Rounded()
	assert.Equal(t, 847.45, r.TaxableAmount)
	assert.Equal(t, 152.54, r.GSTAmount)
	assert.Equal(t, 999.99, r.Total)
	assert.Equal(t, 500.0, r.AdvanceAmount)
	assert.Equal(t, 500.0, r.DueAmount)
}

func TestSplitZeroTotal(t *testing.T) {
	s := Split(0)
	assert.Equal(t, 0.0, s.TaxableAmount)
	assert.Equal(t, 0.0, s.GSTAmount)
	assert.Equal(t, 0.0, s.AdvanceAmount)
	assert.Equal(t, 0.0, s.DueAmount)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2966.10, Round2(2966.1016949152543))
	assert.Equal(t, 533.90, Round2(533.8983050847457))
	assert.Equal(t, 12.35, Round2(12.348))
	assert.Equal(t, -0.5, Round2(-0.499))
}

func TestLines(t *testing.T) {
	lines := Split(3500).Lines()
	assert.Equal(t, 2966.10, lines.TaxableAmount)
	assert.Equal(t, 533.90, lines.GSTAmount)
	assert.Equal(t, 3500.0, lines.TotalAmount)
	assert.Equal(t, 1750.0, lines.AdvanceAmount)
	assert.Equal(t, 1750.0, lines.DueAmount)
}
