package models

// SettlementLines is the JSON shape of the settlement breakdown, rounded to
// two decimals at the presentation boundary.
type SettlementLines struct {
	TaxableAmount float64 `json:"taxable_amount"`
	GSTAmount     float64 `json:"gst_amount"`
	TotalAmount   float64 `json:"total_amount"`
	AdvanceAmount float64 `json:"advance_amount"`
	DueAmount     float64 `json:"due_amount"`
}

// BookingResponse is returned after a successful booking submission and
// carries everything the payment phase needs.
type BookingResponse struct {
	BookingID    string          `json:"booking_id"`
	Kind         ServiceKind     `json:"kind"`
	CustomerName string          `json:"customer_name"`
	Mobile       string          `json:"mobile"`
	Address      string          `json:"address"`
	BookingDate  string          `json:"booking_date,omitempty"`
	Service      string          `json:"service"`
	Hours        float64         `json:"hours"`
	TotalPrice   float64         `json:"total_price"`
	Status       BookingStatus   `json:"status"`
	Settlement   SettlementLines `json:"settlement"`
}
