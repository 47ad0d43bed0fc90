package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"splashshine/services/booking"
	"splashshine/services/document"
	"splashshine/services/payment"
)

// DocumentHandler renders an invoice or quotation for a booking. HTML by
// default; ?format=pdf renders through Gotenberg. A successful download of
// either document moves a payment-confirmed booking to documents_issued.
func DocumentHandler(kind document.Kind, docs *document.Service, bookings booking.BookingService, payments payment.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		bookingID := c.Param("id")

		b, err := bookings.GetByID(bookingID)
		if err != nil {
			bookingError(c, logger, err)
			return
		}

		// Missing payment is fine: quotations render before any payment and
		// the invoice falls back to the booking's own values.
		p, err := payments.GetByBookingID(bookingID)
		if err != nil {
			logger.Warn("Failed to load payment for document", zap.Error(err))
		}

		data := document.Build(kind, b, p)

		if c.Query("format") == "pdf" {
			pdf, err := docs.RenderPDF(c.Request.Context(), kind, data)
			if err != nil {
				logger.Error("PDF rendering failed", zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": "PDF rendering failed"})
				return
			}
			if err := bookings.MarkDocumentsIssued(bookingID); err != nil {
				logger.Warn("Failed to mark documents issued", zap.Error(err))
			}
			c.Header("Content-Disposition", `attachment; filename="`+data.DocumentNo+`.pdf"`)
			c.Data(http.StatusOK, "application/pdf", pdf)
			return
		}

		html, err := docs.RenderHTML(kind, data)
		if err != nil {
			logger.Error("Document rendering failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Document rendering failed"})
			return
		}
		if err := bookings.MarkDocumentsIssued(bookingID); err != nil {
			logger.Warn("Failed to mark documents issued", zap.Error(err))
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	}
}
