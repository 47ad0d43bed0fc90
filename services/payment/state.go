package payment

import "splashshine/models"

// The advance payment machine: pending -> approved | rejected, admin driven,
// rejected terminal. The due flag runs independently once approved:
// pending -> paid, paid terminal.

// CanTransitionStatus reports whether an advance status change is legal.
func CanTransitionStatus(from, to models.PaymentStatus) bool {
	if from != models.PaymentPending {
		return false
	}
	return to == models.PaymentApproved || to == models.PaymentRejected
}

// CanTransitionDue reports whether a due flag change is legal given the
// current advance status.
func CanTransitionDue(status models.PaymentStatus, from, to models.DueStatus) bool {
	if status != models.PaymentApproved {
		return false
	}
	return from == models.DuePending && to == models.DuePaid
}
