package models

import "time"

// ServiceKind identifies which booking flow produced a booking.
type ServiceKind string

const (
	KindCleaning ServiceKind = "cleaning"
	KindCarWash  ServiceKind = "car_wash"
	KindMovers   ServiceKind = "movers"
)

// BookingStatus tracks a booking through the workflow:
// draft -> submitted -> awaiting_payment -> advance_confirmed -> documents_issued.
type BookingStatus string

const (
	StatusDraft            BookingStatus = "draft"
	StatusSubmitted        BookingStatus = "submitted"
	StatusAwaitingPayment  BookingStatus = "awaiting_payment"
	StatusAdvanceConfirmed BookingStatus = "advance_confirmed"
	StatusDocumentsIssued  BookingStatus = "documents_issued"
)

// ServiceArea pairs a selected cleaning service with its square-footage bucket.
type ServiceArea struct {
	Service  string `bson:"service" json:"service"`
	AreaTier string `bson:"area_tier" json:"area_tier"`
}

// CleaningDetails holds the cleaning-flow specific fields.
type CleaningDetails struct {
	CleaningType  string        `bson:"cleaning_type" json:"cleaning_type"`       // "normal" or "deep"
	TypeOfService string        `bson:"type_of_service" json:"type_of_service"`   // "one_time" or "amc"
	AMCFrequency  string        `bson:"amc_frequency" json:"amc_frequency"`       // "3_months", "6_months", "12_months"
	Services      []ServiceArea `bson:"services" json:"services"`
	Category      string        `bson:"category" json:"category"` // "residential" or "commercial"
}

// CarWashDetails holds the mobile car wash flow specific fields.
type CarWashDetails struct {
	VehicleType   string   `bson:"vehicle_type" json:"vehicle_type"` // "2_wheeler" or "4_wheeler"
	WashType      string   `bson:"wash_type" json:"wash_type"`       // "normal" or "premium"
	CarSize       string   `bson:"car_size" json:"car_size"`         // "small", "medium", "large"
	ExtraServices []string `bson:"extra_services" json:"extra_services"`
}

// MoversDetails holds the packers & movers flow specific fields.
type MoversDetails struct {
	GoodsType  string  `bson:"goods_type" json:"goods_type"`
	DistanceKm float64 `bson:"distance_km" json:"distance_km"`
}

// Booking represents a persisted booking record. Exactly one of the detail
// pointers is set, matching Kind.
type Booking struct {
	ID           string           `bson:"id" json:"id"`
	Kind         ServiceKind      `bson:"kind" json:"kind"`
	UserID       string           `bson:"user_id,omitempty" json:"user_id,omitempty"`
	CustomerName string           `bson:"customer_name" json:"customer_name"`
	Mobile       string           `bson:"mobile" json:"mobile"`
	Address      string           `bson:"address" json:"address"`
	BookingDate  string           `bson:"booking_date" json:"booking_date"` // "YYYY-MM-DD"
	Cleaning     *CleaningDetails `bson:"cleaning,omitempty" json:"cleaning,omitempty"`
	CarWash      *CarWashDetails  `bson:"car_wash,omitempty" json:"car_wash,omitempty"`
	Movers       *MoversDetails   `bson:"movers,omitempty" json:"movers,omitempty"`
	Hours        float64          `bson:"hours" json:"hours"`
	PricePerHour float64          `bson:"price_per_hour,omitempty" json:"price_per_hour,omitempty"`
	TotalPrice   float64          `bson:"total_price" json:"total_price"` // GST-inclusive final amount
	Status       BookingStatus    `bson:"status" json:"status"`
	CreatedAt    time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time        `bson:"updated_at" json:"updated_at"`
}

// ServiceDescription renders the human-readable service line used on
// documents and admin tables, e.g. "Premium Wash - Large Car + Interior Vacuum".
func (b *Booking) ServiceDescription() string {
	switch b.Kind {
	case KindCleaning:
		if b.Cleaning == nil {
			return ""
		}
		if b.Cleaning.CleaningType == "deep" {
			return "Deep Cleaning"
		}
		return "Normal Cleaning"
	case KindCarWash:
		if b.CarWash == nil {
			return ""
		}
		return carWashDescription(b.CarWash)
	case KindMovers:
		if b.Movers == nil {
			return ""
		}
		return moversDescription(b.Movers)
	}
	return ""
}
