package models

// CleaningBookingInput is the request body for the cleaning booking flow.
type CleaningBookingInput struct {
	CustomerName  string            `json:"customer_name"`
	Mobile        string            `json:"mobile"`
	Address       string            `json:"address"`
	BookingDate   string            `json:"booking_date"` // "YYYY-MM-DD"
	CleaningType  string            `json:"cleaning_type"`
	TypeOfService string            `json:"type_of_service"`
	AMCFrequency  string            `json:"amc_frequency"`
	Services      map[string]string `json:"services"` // service name -> area tier label
	Category      string            `json:"category"`
}

// CarWashBookingInput is the request body for the mobile car wash flow.
type CarWashBookingInput struct {
	CustomerName  string   `json:"customer_name"`
	Mobile        string   `json:"mobile"`
	Address       string   `json:"address"`
	VehicleType   string   `json:"vehicle_type"`
	WashType      string   `json:"wash_type"`
	CarSize       string   `json:"car_size"`
	ExtraServices []string `json:"extra_services"`
}

// MoversBookingInput is the request body for the packers & movers flow.
// Distance arrives as free text and is parsed leniently; non-numeric
// input prices as zero but is rejected by validation.
type MoversBookingInput struct {
	CustomerName string `json:"customer_name"`
	Mobile       string `json:"mobile"`
	Address      string `json:"address"`
	GoodsType    string `json:"goods_type"`
	DistanceKm   string `json:"distance_km"`
}
