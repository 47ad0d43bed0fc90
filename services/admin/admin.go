package admin

import (
	"golang.org/x/sync/errgroup"

	bookingRepo "splashshine/database/repository/booking"
	paymentRepo "splashshine/database/repository/payment"
	userRepo "splashshine/database/repository/user"
	"splashshine/models"
	"splashshine/services/pricing"
)

// BookingRow is a booking as shown on the admin bookings table, composed with
// its payment flags. Bookings without a payment display as "no_payment".
type BookingRow struct {
	models.Booking
	PaymentStatus    string  `json:"payment_status"`
	DuePaymentStatus string  `json:"due_payment_status"`
	PaidAmount       float64 `json:"paid_amount"`
}

// PaymentRow is a payment as shown on the admin ledger, with the derived
// amounts recomputed from the current flags.
type PaymentRow struct {
	models.Payment
	PaidAmount      float64 `json:"paid_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
}

// DashboardStats aggregates the admin dashboard counters.
type DashboardStats struct {
	TotalUsers      int64   `json:"total_users"`
	TotalBookings   int64   `json:"total_bookings"`
	TotalPayments   int64   `json:"total_payments"`
	PendingPayments int     `json:"pending_payments"`
	TotalCollected  float64 `json:"total_collected"`
}

// AdminService backs the admin tables and dashboard.
type AdminService interface {
	ListUsers() ([]models.User, error)
	DeleteUser(id string) error
	ListBookings() ([]BookingRow, error)
	ListPayments() ([]PaymentRow, error)
	Dashboard() (*DashboardStats, error)
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	Users    userRepo.UserRepository
	Bookings bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
}

// ListUsers returns every registered customer.
func (s *DefaultAdminService) ListUsers() ([]models.User, error) {
	return s.Users.GetAll()
}

// DeleteUser removes a customer account.
func (s *DefaultAdminService) DeleteUser(id string) error {
	return s.Users.Delete(id)
}

// ListBookings returns every booking joined with its payment flags.
func (s *DefaultAdminService) ListBookings() ([]BookingRow, error) {
	bookings, err := s.Bookings.GetAll()
	if err != nil {
		return nil, err
	}
	payments, err := s.Payments.GetAll()
	if err != nil {
		return nil, err
	}

	byBooking := make(map[string]*models.Payment, len(payments))
	for i := range payments {
		byBooking[payments[i].BookingID] = &payments[i]
	}

	rows := make([]BookingRow, 0, len(bookings))
	for _, b := range bookings {
		row := BookingRow{
			Booking:          b,
			PaymentStatus:    "no_payment",
			DuePaymentStatus: string(models.DuePending),
		}
		if p, ok := byBooking[b.ID]; ok {
			row.PaymentStatus = string(p.Status)
			row.DuePaymentStatus = string(p.DuePaymentStatus)
			row.PaidAmount = pricing.Round2(p.PaidAmount())
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ListPayments returns the payment ledger with derived amounts.
func (s *DefaultAdminService) ListPayments() ([]PaymentRow, error) {
	payments, err := s.Payments.GetAll()
	if err != nil {
		return nil, err
	}

	rows := make([]PaymentRow, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, PaymentRow{
			Payment:         p,
			PaidAmount:      pricing.Round2(p.PaidAmount()),
			RemainingAmount: pricing.Round2(p.RemainingAmount()),
		})
	}
	return rows, nil
}

// Dashboard fetches the three underlying resources concurrently and joins the
// results only once all three resolve; any single failure fails the whole
// dashboard rather than serving partial numbers.
func (s *DefaultAdminService) Dashboard() (*DashboardStats, error) {
	var (
		stats    DashboardStats
		payments []models.Payment
	)

	var g errgroup.Group
	g.Go(func() error {
		n, err := s.Users.Count()
		if err != nil {
			return err
		}
		stats.TotalUsers = n
		return nil
	})
	g.Go(func() error {
		n, err := s.Bookings.Count()
		if err != nil {
			return err
		}
		stats.TotalBookings = n
		return nil
	})
	g.Go(func() error {
		all, err := s.Payments.GetAll()
		if err != nil {
			return err
		}
		payments = all
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.TotalPayments = int64(len(payments))
	for _, p := range payments {
		switch p.Status {
		case models.PaymentPending:
			stats.PendingPayments++
		case models.PaymentApproved:
			stats.TotalCollected += p.PaidAmount()
		}
	}
	stats.TotalCollected = pricing.Round2(stats.TotalCollected)
	return &stats, nil
}
