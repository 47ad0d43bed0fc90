package models

import "time"

// PaymentStatus is the advance payment state: pending -> approved | rejected.
// Transitions are admin actions; rejected is terminal.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

// DueStatus tracks the remaining 50%, independent of the advance status:
// pending -> paid. Paid is terminal and only reachable once the advance
// is approved.
type DueStatus string

const (
	DuePending DueStatus = "pending"
	DuePaid    DueStatus = "paid"
)

// Payment records an advance payment submission against a booking.
type Payment struct {
	ID               string        `bson:"id" json:"id"`
	BookingID        string        `bson:"booking_id" json:"booking_id"`
	CustomerName     string        `bson:"customer_name" json:"customer_name"`
	Mobile           string        `bson:"mobile" json:"mobile"`
	Method           string        `bson:"method" json:"method"` // "upi" or "bank_transfer"
	TransactionRef   string        `bson:"transaction_ref" json:"transaction_ref"`
	CustomerUPIID    string        `bson:"customer_upi_id,omitempty" json:"customer_upi_id,omitempty"`
	TotalAmount      float64       `bson:"total_amount" json:"total_amount"`     // GST-inclusive total
	AdvanceAmount    float64       `bson:"advance_amount" json:"advance_amount"` // 50% of total, from the settlement splitter
	Status           PaymentStatus `bson:"status" json:"status"`
	DuePaymentStatus DueStatus     `bson:"due_payment_status" json:"due_payment_status"`
	CreatedAt        time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time     `bson:"updated_at" json:"updated_at"`
}

// PaidAmount derives the collected amount from the current flags. Nothing is
// collected until the advance is approved; the full total is collected once
// the due payment is marked paid.
func (p *Payment) PaidAmount() float64 {
	if p.Status != PaymentApproved {
		return 0
	}
	if p.DuePaymentStatus == DuePaid {
		return p.TotalAmount
	}
	return p.AdvanceAmount
}

// RemainingAmount derives the outstanding balance from the current flags.
func (p *Payment) RemainingAmount() float64 {
	return p.TotalAmount - p.PaidAmount()
}
