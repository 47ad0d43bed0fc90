package pricing

// CleaningSelection is the input to the cleaning quote calculator.
type CleaningSelection struct {
	CleaningType  string            // "normal" or "deep"
	TypeOfService string            // "one_time" or "amc"
	AMCFrequency  string            // only meaningful when TypeOfService is "amc"
	Services      map[string]string // selected service -> area tier label
}

// Quote is the derived cleaning quote. It is never stored; it is recomputed
// from the selection on every call.
type Quote struct {
	TotalHours  float64 `json:"total_hours"`
	RatePerHour float64 `json:"rate_per_hour"`
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	FinalAmount float64 `json:"final_amount"`
}

// CleaningQuote computes a quote for a cleaning selection. Services mapped to
// unknown tier labels contribute zero hours; the validation gate catches
// incomplete selections before submission. The final amount is not floored at
// zero: an AMC discount larger than the subtotal yields a negative total,
// matching the established pricing behaviour.
func CleaningQuote(sel CleaningSelection) Quote {
	var hours float64
	for _, tierLabel := range sel.Services {
		h, _ := TierHours(tierLabel)
		hours += h
	}

	rate := CleaningRate(sel.CleaningType)
	subtotal := rate * hours

	var discount float64
	if sel.TypeOfService == "amc" {
		discount = AMCDiscount(sel.AMCFrequency)
	}

	return Quote{
		TotalHours:  hours,
		RatePerHour: rate,
		Subtotal:    subtotal,
		Discount:    discount,
		FinalAmount: subtotal - discount,
	}
}
