package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"splashshine/config"
	"splashshine/services/booking"
	"splashshine/services/document"
	"splashshine/services/payment"
	"splashshine/services/pricing"
)

// ConfirmPaymentHandler records an advance payment submission. The amount
// must equal the 50% advance for the booking; the record starts pending
// until the admin approves it.
func ConfirmPaymentHandler(svc payment.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req payment.ConfirmPaymentInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		p, err := svc.ConfirmAdvance(req)
		if err != nil {
			var nferr *booking.NotFoundError
			if errors.As(err, &nferr) {
				c.JSON(http.StatusNotFound, gin.H{"error": nferr.Error()})
				return
			}
			logger.Warn("Advance payment rejected", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		logger.Info("Advance payment submitted",
			zap.String("bookingID", p.BookingID),
			zap.String("method", p.Method))
		c.JSON(http.StatusCreated, p)
	}
}

// PaymentSummaryHandler returns the payment-phase values for a booking: the
// computed quote carried forward from submission, served from the session
// cache when it is still live.
func PaymentSummaryHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		session, err := bookings.GetPaymentSummary(c.Param("booking_id"))
		if err != nil {
			bookingError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// UPILinkHandler builds the UPI deep link for a booking's advance payment.
func UPILinkHandler(bookings booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		session, err := bookings.GetPaymentSummary(c.Param("booking_id"))
		if err != nil {
			bookingError(c, logger, err)
			return
		}

		advance := pricing.Round2(session.Settlement.AdvanceAmount)
		link := document.BuildUPILink(config.AppConfig.OwnerUPIID, session.BookingID, advance)

		c.JSON(http.StatusOK, gin.H{
			"booking_id":     session.BookingID,
			"advance_amount": advance,
			"upi_link":       link,
		})
	}
}
