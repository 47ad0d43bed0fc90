package pricing

// CarWashSelection is the input to the car wash price calculator.
type CarWashSelection struct {
	VehicleType   string // "2_wheeler" or "4_wheeler"
	WashType      string // "normal" or "premium"
	CarSize       string // "small", "medium", "large"
	ExtraServices []string
}

// CarWashPrice computes the rupee price for a car wash selection.
// Two-wheelers have one flat rate and ignore wash type, size and extras.
// Four-wheelers price from the wash/size table plus 100 per extra service;
// a missing wash type or size leaves the base at zero, which the validation
// gate rejects before submission.
func CarWashPrice(sel CarWashSelection) float64 {
	var price float64

	switch sel.VehicleType {
	case "2_wheeler":
		return TwoWheelerRate
	case "4_wheeler":
		if sel.WashType != "" && sel.CarSize != "" {
			price = carWashRates[sel.WashType][sel.CarSize]
		}
		price += float64(len(sel.ExtraServices)) * ExtraServiceRate
	}

	return price
}
