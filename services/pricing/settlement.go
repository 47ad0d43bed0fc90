package pricing

import (
	"math"

	"splashshine/models"
)

// GSTRate is the tax rate, always modeled as inclusive in the quoted total.
const GSTRate = 0.18

// Settlement is the breakdown of a GST-inclusive total into its taxable and
// tax portions and the 50/50 advance/due split. All four derived values are
// computed from the unrounded total so rounding error never accumulates;
// rounding happens only at the presentation boundary via Rounded or Round2.
type Settlement struct {
	Total         float64
	TaxableAmount float64
	GSTAmount     float64
	AdvanceAmount float64
	DueAmount     float64
}

// Split breaks a GST-inclusive total down. Invoices, quotations, the payment
// screen and the admin ledger all derive their settlement lines from this one
// function so the figures can never diverge between surfaces.
func Split(total float64) Settlement {
	taxable := total / (1 + GSTRate)
	return Settlement{
		Total:         total,
		TaxableAmount: taxable,
		GSTAmount:     total - taxable,
		AdvanceAmount: total * 0.5,
		DueAmount:     total * 0.5,
	}
}

// Round2 rounds a currency value to two decimal places. All display rounding
// goes through here.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Lines converts the settlement to its rounded JSON presentation shape.
func (s Settlement) Lines() models.SettlementLines {
	r := s.Rounded()
	return models.SettlementLines{
		TaxableAmount: r.TaxableAmount,
		GSTAmount:     r.GSTAmount,
		TotalAmount:   r.Total,
		AdvanceAmount: r.AdvanceAmount,
		DueAmount:     r.DueAmount,
	}
}

// Rounded returns a copy of the settlement with every line rounded to two
// decimals, for presentation only.
func (s Settlement) Rounded() Settlement {
	return Settlement{
		Total:         Round2(s.Total),
		TaxableAmount: Round2(s.TaxableAmount),
		GSTAmount:     Round2(s.GSTAmount),
		AdvanceAmount: Round2(s.AdvanceAmount),
		DueAmount:     Round2(s.DueAmount),
	}
}
