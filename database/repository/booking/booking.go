package bookingRepo

import "splashshine/models"

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetAll() ([]models.Booking, error)
	UpdateStatus(id string, status models.BookingStatus) error
	Count() (int64, error)
}
