package paymentRepo

import "splashshine/models"

// PaymentRepository defines persistence operations for payment records.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	Update(payment *models.Payment) error
	GetByID(id string) (*models.Payment, error)
	GetByBookingID(bookingID string) (*models.Payment, error)
	GetAll() ([]models.Payment, error)
	Count() (int64, error)
}
