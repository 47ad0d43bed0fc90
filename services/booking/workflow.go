package booking

import (
	"fmt"

	"splashshine/models"
)

// The booking workflow is strictly linear:
// draft -> submitted -> awaiting_payment -> advance_confirmed -> documents_issued.
var nextStatus = map[models.BookingStatus]models.BookingStatus{
	models.StatusDraft:            models.StatusSubmitted,
	models.StatusSubmitted:        models.StatusAwaitingPayment,
	models.StatusAwaitingPayment:  models.StatusAdvanceConfirmed,
	models.StatusAdvanceConfirmed: models.StatusDocumentsIssued,
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to models.BookingStatus) bool {
	return nextStatus[from] == to
}

// Advance moves a booking one step forward in the workflow, guarding against
// skipped or backwards transitions.
func Advance(b *models.Booking, to models.BookingStatus) error {
	if !CanTransition(b.Status, to) {
		return fmt.Errorf("invalid booking transition from %q to %q", b.Status, to)
	}
	b.Status = to
	return nil
}
