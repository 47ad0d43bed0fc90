package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splashshine/models"
)

type fakeUserRepo struct {
	users []models.User
}

func (r *fakeUserRepo) Create(u *models.User) error { r.users = append(r.users, *u); return nil }
func (r *fakeUserRepo) Update(u *models.User) error { return nil }
func (r *fakeUserRepo) Delete(id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*models.User, error)       { return nil, nil }
func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) GetAll() ([]models.User, error)                { return r.users, nil }
func (r *fakeUserRepo) Count() (int64, error)                         { return int64(len(r.users)), nil }

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (r *fakeBookingRepo) Create(b *models.Booking) error { r.bookings = append(r.bookings, *b); return nil }
func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) { return nil, nil }
func (r *fakeBookingRepo) GetAll() ([]models.Booking, error)          { return r.bookings, nil }
func (r *fakeBookingRepo) UpdateStatus(id string, status models.BookingStatus) error { return nil }
func (r *fakeBookingRepo) Count() (int64, error) { return int64(len(r.bookings)), nil }

type fakePaymentRepo struct {
	payments []models.Payment
}

func (r *fakePaymentRepo) Create(p *models.Payment) error { r.payments = append(r.payments, *p); return nil }
func (r *fakePaymentRepo) Update(p *models.Payment) error { return nil }
func (r *fakePaymentRepo) GetByID(id string) (*models.Payment, error) { return nil, nil }
func (r *fakePaymentRepo) GetByBookingID(bookingID string) (*models.Payment, error) {
	return nil, nil
}
func (r *fakePaymentRepo) GetAll() ([]models.Payment, error) { return r.payments, nil }
func (r *fakePaymentRepo) Count() (int64, error)             { return int64(len(r.payments)), nil }

func newService() (*DefaultAdminService, *fakeUserRepo, *fakeBookingRepo, *fakePaymentRepo) {
	users := &fakeUserRepo{}
	bookings := &fakeBookingRepo{}
	payments := &fakePaymentRepo{}
	return &DefaultAdminService{Users: users, Bookings: bookings, Payments: payments}, users, bookings, payments
}

func TestListBookingsJoinsPaymentFlags(t *testing.T) {
	svc, _, bookings, payments := newService()
	bookings.bookings = []models.Booking{
		{ID: "bk-1", CustomerName: "Asha", TotalPrice: 3500},
		{ID: "bk-2", CustomerName: "Ravi", TotalPrice: 600},
	}
	payments.payments = []models.Payment{
		{
			ID:               "pay-1",
			BookingID:        "bk-1",
			TotalAmount:      3500,
			AdvanceAmount:    1750,
			Status:           models.PaymentApproved,
			DuePaymentStatus: models.DuePending,
		},
	}

	rows, err := svc.ListBookings()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "approved", rows[0].PaymentStatus)
	assert.Equal(t, "pending", rows[0].DuePaymentStatus)
	assert.Equal(t, 1750.0, rows[0].PaidAmount)

	assert.Equal(t, "no_payment", rows[1].PaymentStatus)
	assert.Equal(t, 0.0, rows[1].PaidAmount)
}

func TestListPaymentsDerivesAmounts(t *testing.T) {
	svc, _, _, payments := newService()
	payments.payments = []models.Payment{
		{
			ID:               "pay-1",
			BookingID:        "bk-1",
			TotalAmount:      3500,
			AdvanceAmount:    1750,
			Status:           models.PaymentApproved,
			DuePaymentStatus: models.DuePaid,
		},
		{
			ID:            "pay-2",
			BookingID:     "bk-2",
			TotalAmount:   600,
			AdvanceAmount: 300,
			Status:        models.PaymentPending,
		},
	}

	rows, err := svc.ListPayments()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 3500.0, rows[0].PaidAmount)
	assert.Equal(t, 0.0, rows[0].RemainingAmount)

	assert.Equal(t, 0.0, rows[1].PaidAmount)
	assert.Equal(t, 600.0, rows[1].RemainingAmount)
}

func TestDashboardCounters(t *testing.T) {
	svc, users, bookings, payments := newService()
	users.users = []models.User{{ID: "u-1"}, {ID: "u-2"}}
	bookings.bookings = []models.Booking{{ID: "bk-1"}, {ID: "bk-2"}, {ID: "bk-3"}}
	payments.payments = []models.Payment{
		{BookingID: "bk-1", TotalAmount: 3500, AdvanceAmount: 1750, Status: models.PaymentApproved},
		{BookingID: "bk-2", TotalAmount: 600, AdvanceAmount: 300, Status: models.PaymentApproved, DuePaymentStatus: models.DuePaid},
		{BookingID: "bk-3", TotalAmount: 1000, AdvanceAmount: 500, Status: models.PaymentPending},
	}

	stats, err := svc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.TotalBookings)
	assert.Equal(t, int64(3), stats.TotalPayments)
	assert.Equal(t, 1, stats.PendingPayments)
	// 1750 advance collected on bk-1 plus the full 600 on bk-2.
	assert.Equal(t, 2350.0, stats.TotalCollected)
}
