package pricing

// AreaTier maps a square-footage bucket to its fixed hour allowance.
type AreaTier struct {
	Label string
	Hours float64
}

// AreaTiers is the fixed table of square-footage buckets. Hours run from 1.0
// to 6.0 in half-hour steps.
var AreaTiers = []AreaTier{
	{Label: "0-50 sqft", Hours: 1},
	{Label: "50-100 sqft", Hours: 1.5},
	{Label: "100-150 sqft", Hours: 2},
	{Label: "150-200 sqft", Hours: 2.5},
	{Label: "200-250 sqft", Hours: 3},
	{Label: "250-300 sqft", Hours: 3.5},
	{Label: "300-350 sqft", Hours: 4},
	{Label: "350-400 sqft", Hours: 4.5},
	{Label: "400-450 sqft", Hours: 5},
	{Label: "450-500 sqft", Hours: 5.5},
	{Label: "500+ sqft", Hours: 6},
}

// TierHours resolves an area tier label to its hour allowance. Unknown labels
// return (0, false); the calculator treats them as zero hours and leaves
// rejection to the validation gate.
func TierHours(label string) (float64, bool) {
	for _, t := range AreaTiers {
		if t.Label == label {
			return t.Hours, true
		}
	}
	return 0, false
}

// Hourly cleaning rates in rupees.
const (
	RateNormalCleaning = 600.0
	RateDeepCleaning   = 1000.0
)

// CleaningRate returns the hourly rate for a cleaning type. Unknown types
// rate as zero.
func CleaningRate(cleaningType string) float64 {
	switch cleaningType {
	case "normal":
		return RateNormalCleaning
	case "deep":
		return RateDeepCleaning
	default:
		return 0
	}
}

// AMCDiscount returns the flat rupee discount for an AMC frequency.
func AMCDiscount(frequency string) float64 {
	switch frequency {
	case "12_months":
		return 500
	case "6_months":
		return 250
	case "3_months":
		return 100
	default:
		return 0
	}
}

// Car wash pricing.
const (
	TwoWheelerRate   = 250.0
	ExtraServiceRate = 100.0
)

// carWashRates maps wash type then car size to the four-wheeler base price.
var carWashRates = map[string]map[string]float64{
	"normal": {
		"small":  300,
		"medium": 500,
		"large":  600,
	},
	"premium": {
		"small":  350,
		"medium": 550,
		"large":  650,
	},
}

// MoversRatePerKm is the flat linear rate for packers & movers.
const MoversRatePerKm = 1000.0
