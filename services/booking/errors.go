package booking

import "fmt"

// NotFoundError signals a missing booking record.
type NotFoundError struct {
	BookingID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.BookingID)
}
