package document

import "fmt"

// BuildUPILink builds the UPI deep link for collecting the advance payment.
// The client renders it as a QR code; the server only supplies the string.
func BuildUPILink(ownerUPIID, bookingID string, advanceAmount float64) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=SplashShine&am=%.2f&cu=INR&tn=Booking%s",
		ownerUPIID, advanceAmount, bookingID)
}
