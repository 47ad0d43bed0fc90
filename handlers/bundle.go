package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for the routes
// package to wire.
type HandlerBundle struct {
	// Auth endpoints
	RegisterHandler       gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	ForgotPasswordHandler gin.HandlerFunc
	ResetPasswordHandler  gin.HandlerFunc

	// Quote endpoints
	QuoteCleaningHandler gin.HandlerFunc
	QuoteCarWashHandler  gin.HandlerFunc
	QuoteMoversHandler   gin.HandlerFunc

	// Booking endpoints
	BookCleaningHandler gin.HandlerFunc
	BookCarWashHandler  gin.HandlerFunc
	BookMoversHandler   gin.HandlerFunc

	// Payment endpoints
	ConfirmPaymentHandler gin.HandlerFunc
	PaymentSummaryHandler gin.HandlerFunc
	UPILinkHandler        gin.HandlerFunc

	// Document endpoints
	InvoiceHandler   gin.HandlerFunc
	QuotationHandler gin.HandlerFunc

	// Admin endpoints
	AdminListUsersHandler           gin.HandlerFunc
	AdminDeleteUserHandler          gin.HandlerFunc
	AdminListBookingsHandler        gin.HandlerFunc
	AdminListPaymentsHandler        gin.HandlerFunc
	AdminUpdatePaymentStatusHandler gin.HandlerFunc
	AdminUpdateDueStatusHandler     gin.HandlerFunc
	AdminDashboardHandler           gin.HandlerFunc
}
