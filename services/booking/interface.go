package booking

import "splashshine/models"

// BookingService runs the booking intake flows: gate the input, compute the
// quote, persist the booking, and hand the payment phase its values.
type BookingService interface {
	CreateCleaning(in models.CleaningBookingInput) (*models.BookingResponse, error)
	CreateCarWash(in models.CarWashBookingInput) (*models.BookingResponse, error)
	CreateMovers(in models.MoversBookingInput) (*models.BookingResponse, error)
	GetByID(id string) (*models.Booking, error)
	GetPaymentSummary(id string) (*PaymentSession, error)
	MarkDocumentsIssued(id string) error
}
