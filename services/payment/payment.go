package payment

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "splashshine/database/repository/booking"
	paymentRepo "splashshine/database/repository/payment"
	"splashshine/models"
	"splashshine/services/booking"
	"splashshine/services/pricing"
	"splashshine/utils"
)

// ConfirmPaymentInput is the request body for submitting an advance payment.
type ConfirmPaymentInput struct {
	BookingID      string  `json:"booking_id"`
	Method         string  `json:"method"` // "upi" or "bank_transfer"
	TransactionRef string  `json:"transaction_ref"`
	CustomerUPIID  string  `json:"customer_upi_id"`
	Amount         float64 `json:"amount"`
}

// ReminderScheduler queues a due-payment reminder once an advance is approved.
type ReminderScheduler interface {
	ScheduleDueReminder(p *models.Payment) error
}

// PaymentService owns the payment lifecycle for bookings.
type PaymentService interface {
	ConfirmAdvance(in ConfirmPaymentInput) (*models.Payment, error)
	UpdateStatus(paymentID string, status models.PaymentStatus) (*models.Payment, error)
	UpdateDueStatus(bookingID string, due models.DueStatus) (*models.Payment, error)
	GetByBookingID(bookingID string) (*models.Payment, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Repo      paymentRepo.PaymentRepository
	Bookings  bookingRepo.BookingRepository
	Reminders ReminderScheduler
}

// ConfirmAdvance records an advance payment submission for a booking. The
// amount must match the 50% advance derived by the settlement splitter from
// the booking's GST-inclusive total. The record starts pending until an admin
// approves or rejects it.
func (s *DefaultPaymentService) ConfirmAdvance(in ConfirmPaymentInput) (*models.Payment, error) {
	b, err := s.Bookings.GetByID(in.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &booking.NotFoundError{BookingID: in.BookingID}
	}
	if b.Status != models.StatusAwaitingPayment {
		return nil, fmt.Errorf("booking %s is not awaiting payment", in.BookingID)
	}

	existing, err := s.Repo.GetByBookingID(in.BookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("a payment for booking %s was already submitted", in.BookingID)
	}

	if in.Method != "upi" && in.Method != "bank_transfer" {
		return nil, fmt.Errorf("unsupported payment method: %s", in.Method)
	}

	settlement := pricing.Split(b.TotalPrice)
	if pricing.Round2(in.Amount) != pricing.Round2(settlement.AdvanceAmount) {
		return nil, fmt.Errorf("advance amount must be %.2f (50%% of total)", pricing.Round2(settlement.AdvanceAmount))
	}

	p := &models.Payment{
		ID:               uuid.New().String(),
		BookingID:        b.ID,
		CustomerName:     b.CustomerName,
		Mobile:           b.Mobile,
		Method:           in.Method,
		TransactionRef:   in.TransactionRef,
		CustomerUPIID:    in.CustomerUPIID,
		TotalAmount:      b.TotalPrice,
		AdvanceAmount:    settlement.AdvanceAmount,
		Status:           models.PaymentPending,
		DuePaymentStatus: models.DuePending,
	}
	if err := s.Repo.Create(p); err != nil {
		utils.GetLogger().Error("failed to persist payment", zap.Error(err))
		return nil, fmt.Errorf("failed to record payment, please try again")
	}
	return p, nil
}

// UpdateStatus applies an admin approve/reject decision to a pending advance.
// Approval moves the booking to advance_confirmed and schedules a due-payment
// reminder.
func (s *DefaultPaymentService) UpdateStatus(paymentID string, status models.PaymentStatus) (*models.Payment, error) {
	p, err := s.Repo.GetByID(paymentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("payment %s not found", paymentID)
	}
	if !CanTransitionStatus(p.Status, status) {
		return nil, fmt.Errorf("invalid payment transition from %q to %q", p.Status, status)
	}

	p.Status = status
	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}

	if status == models.PaymentApproved {
		b, err := s.Bookings.GetByID(p.BookingID)
		if err == nil && b != nil && booking.CanTransition(b.Status, models.StatusAdvanceConfirmed) {
			if err := s.Bookings.UpdateStatus(b.ID, models.StatusAdvanceConfirmed); err != nil {
				utils.GetLogger().Warn("failed to advance booking after approval", zap.Error(err))
			}
		}
		if s.Reminders != nil {
			if err := s.Reminders.ScheduleDueReminder(p); err != nil {
				utils.GetLogger().Warn("failed to schedule due reminder", zap.Error(err))
			}
		}
	}
	return p, nil
}

// UpdateDueStatus marks the remaining 50% as paid. Valid only once the
// advance is approved; marking an already paid due is a no-op.
func (s *DefaultPaymentService) UpdateDueStatus(bookingID string, due models.DueStatus) (*models.Payment, error) {
	p, err := s.Repo.GetByBookingID(bookingID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("no payment found for booking %s", bookingID)
	}
	if p.DuePaymentStatus == due {
		return p, nil
	}
	if !CanTransitionDue(p.Status, p.DuePaymentStatus, due) {
		return nil, fmt.Errorf("invalid due payment transition from %q to %q while advance is %q",
			p.DuePaymentStatus, due, p.Status)
	}

	p.DuePaymentStatus = due
	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByBookingID loads the payment attached to a booking.
func (s *DefaultPaymentService) GetByBookingID(bookingID string) (*models.Payment, error) {
	return s.Repo.GetByBookingID(bookingID)
}
