package payment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splashshine/models"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return fmt.Errorf("booking with id %s not found", id)
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Count() (int64, error) {
	return int64(len(f.bookings)), nil
}

type fakePaymentRepo struct {
	payments map[string]*models.Payment
}

func (f *fakePaymentRepo) Create(p *models.Payment) error {
	f.payments[p.ID] = p
	return nil
}

func (f *fakePaymentRepo) Update(p *models.Payment) error {
	if _, ok := f.payments[p.ID]; !ok {
		return fmt.Errorf("payment with id %s not found", p.ID)
	}
	f.payments[p.ID] = p
	return nil
}

func (f *fakePaymentRepo) GetByID(id string) (*models.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakePaymentRepo) GetByBookingID(bookingID string) (*models.Payment, error) {
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) GetAll() ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range f.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePaymentRepo) Count() (int64, error) {
	return int64(len(f.payments)), nil
}

type fakeScheduler struct {
	scheduled []string
}

func (f *fakeScheduler) ScheduleDueReminder(p *models.Payment) error {
	f.scheduled = append(f.scheduled, p.BookingID)
	return nil
}

func newFixture() (*DefaultPaymentService, *fakeBookingRepo, *fakePaymentRepo, *fakeScheduler) {
	bookings := &fakeBookingRepo{bookings: map[string]*models.Booking{
		"bk-1": {
			ID:           "bk-1",
			Kind:         models.KindCleaning,
			CustomerName: "Asha Rao",
			Mobile:       "9876543210",
			TotalPrice:   3500,
			Status:       models.StatusAwaitingPayment,
		},
	}}
	payments := &fakePaymentRepo{payments: map[string]*models.Payment{}}
	scheduler := &fakeScheduler{}
	svc := &DefaultPaymentService{Repo: payments, Bookings: bookings, Reminders: scheduler}
	return svc, bookings, payments, scheduler
}

func TestConfirmAdvance(t *testing.T) {
	svc, _, _, _ := newFixture()

	p, err := svc.ConfirmAdvance(ConfirmPaymentInput{
		BookingID:      "bk-1",
		Method:         "upi",
		TransactionRef: "TXN123",
		Amount:         1750,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, p.Status)
	assert.Equal(t, models.DuePending, p.DuePaymentStatus)
	assert.Equal(t, 3500.0, p.TotalAmount)
	assert.Equal(t, 1750.0, p.AdvanceAmount)
	assert.Equal(t, 0.0, p.PaidAmount())
	assert.Equal(t, 3500.0, p.RemainingAmount())
}

func TestConfirmAdvanceRejectsWrongAmount(t *testing.T) {
	svc, _, _, _ := newFixture()

	_, err := svc.ConfirmAdvance(ConfirmPaymentInput{
		BookingID: "bk-1",
		Method:    "upi",
		Amount:    3500, // full total, not the 50% advance
	})
	assert.ErrorContains(t, err, "advance amount must be 1750.00")
}

func TestConfirmAdvanceRejectsUnknownMethod(t *testing.T) {
	svc, _, _, _ := newFixture()

	_, err := svc.ConfirmAdvance(ConfirmPaymentInput{
		BookingID: "bk-1",
		Method:    "card",
		Amount:    1750,
	})
	assert.ErrorContains(t, err, "unsupported payment method")
}

func TestConfirmAdvanceRejectsDuplicate(t *testing.T) {
	svc, _, _, _ := newFixture()

	in := ConfirmPaymentInput{BookingID: "bk-1", Method: "upi", Amount: 1750}
	_, err := svc.ConfirmAdvance(in)
	require.NoError(t, err)

	_, err = svc.ConfirmAdvance(in)
	assert.ErrorContains(t, err, "already submitted")
}

func TestConfirmAdvanceRejectsMissingBooking(t *testing.T) {
	svc, _, _, _ := newFixture()

	_, err := svc.ConfirmAdvance(ConfirmPaymentInput{BookingID: "nope", Method: "upi", Amount: 1})
	assert.ErrorContains(t, err, "not found")
}

func TestApproveAdvancesBookingAndSchedulesReminder(t *testing.T) {
	svc, bookings, _, scheduler := newFixture()

	p, err := svc.ConfirmAdvance(ConfirmPaymentInput{BookingID: "bk-1", Method: "upi", Amount: 1750})
	require.NoError(t, err)

	approved, err := svc.UpdateStatus(p.ID, models.PaymentApproved)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentApproved, approved.Status)
	assert.Equal(t, 1750.0, approved.PaidAmount())
	assert.Equal(t, 1750.0, approved.RemainingAmount())

	assert.Equal(t, models.StatusAdvanceConfirmed, bookings.bookings["bk-1"].Status)
	assert.Equal(t, []string{"bk-1"}, scheduler.scheduled)
}

func TestRejectIsTerminal(t *testing.T) {
	svc, _, _, _ := newFixture()

	p, err := svc.ConfirmAdvance(ConfirmPaymentInput{BookingID: "bk-1", Method: "upi", Amount: 1750})
	require.NoError(t, err)

	rejected, err := svc.UpdateStatus(p.ID, models.PaymentRejected)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rejected.PaidAmount())

	_, err = svc.UpdateStatus(p.ID, models.PaymentApproved)
	assert.ErrorContains(t, err, "invalid payment transition")
}

func TestDueTransitionRequiresApproval(t *testing.T) {
	svc, _, _, _ := newFixture()

	p, err := svc.ConfirmAdvance(ConfirmPaymentInput{BookingID: "bk-1", Method: "bank_transfer", Amount: 1750})
	require.NoError(t, err)

	_, err = svc.UpdateDueStatus("bk-1", models.DuePaid)
	assert.ErrorContains(t, err, "invalid due payment transition")

	_, err = svc.UpdateStatus(p.ID, models.PaymentApproved)
	require.NoError(t, err)

	paid, err := svc.UpdateDueStatus("bk-1", models.DuePaid)
	require.NoError(t, err)
	assert.Equal(t, models.DuePaid, paid.DuePaymentStatus)
	assert.Equal(t, 3500.0, paid.PaidAmount())
	assert.Equal(t, 0.0, paid.RemainingAmount())

	// Paid is terminal; repeating is a no-op, reverting is rejected.
	again, err := svc.UpdateDueStatus("bk-1", models.DuePaid)
	require.NoError(t, err)
	assert.Equal(t, models.DuePaid, again.DuePaymentStatus)

	_, err = svc.UpdateDueStatus("bk-1", models.DuePending)
	assert.Error(t, err)
}

func TestCanTransitionStatusTable(t *testing.T) {
	assert.True(t, CanTransitionStatus(models.PaymentPending, models.PaymentApproved))
	assert.True(t, CanTransitionStatus(models.PaymentPending, models.PaymentRejected))
	assert.False(t, CanTransitionStatus(models.PaymentApproved, models.PaymentRejected))
	assert.False(t, CanTransitionStatus(models.PaymentRejected, models.PaymentApproved))
	assert.False(t, CanTransitionStatus(models.PaymentPending, models.PaymentPending))
}
