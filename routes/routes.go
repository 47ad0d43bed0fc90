package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"splashshine/handlers"
	"splashshine/middleware"
)

// RegisterAuthRoutes registers customer account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/register", hb.RegisterHandler)
	r.POST("/login", hb.LoginHandler)
	r.POST("/forgot-password", hb.ForgotPasswordHandler)
	r.POST("/reset-password", hb.ResetPasswordHandler)
}

// RegisterQuoteRoutes registers the pure calculator endpoints. These never
// persist anything and are safe to call repeatedly.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	quote := r.Group("/quote")
	{
		quote.POST("/cleaning", hb.QuoteCleaningHandler)
		quote.POST("/carwash", hb.QuoteCarWashHandler)
		quote.POST("/movers", hb.QuoteMoversHandler)
	}
}

// RegisterBookingRoutes registers the booking intake and document endpoints.
// Booking and everything downstream of it require a signed-in customer.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	protected := r.Group("")
	protected.Use(middleware.UserAuthMiddleware())
	protected.POST("/book", hb.BookCleaningHandler)
	protected.POST("/book/carwash", hb.BookCarWashHandler)
	protected.POST("/book/movers", hb.BookMoversHandler)

	protected.GET("/bookings/:id/invoice", hb.InvoiceHandler)
	protected.GET("/bookings/:id/quotation", hb.QuotationHandler)
}

// RegisterPaymentRoutes registers the payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	protected := r.Group("")
	protected.Use(middleware.UserAuthMiddleware())
	protected.POST("/confirm-payment", hb.ConfirmPaymentHandler)
	protected.GET("/payments/:booking_id/session", hb.PaymentSummaryHandler)
	protected.GET("/payments/:booking_id/upi", hb.UPILinkHandler)
}

// RegisterAdminRoutes sets up endpoints for the owner's panel.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/users", hb.AdminListUsersHandler)
		adminGroup.DELETE("/users/:id", hb.AdminDeleteUserHandler)
		adminGroup.GET("/bookings", hb.AdminListBookingsHandler)
		adminGroup.PUT("/bookings/:id/due-payment-status", hb.AdminUpdateDueStatusHandler)
		adminGroup.GET("/payments", hb.AdminListPaymentsHandler)
		adminGroup.PUT("/payment/status/:id", hb.AdminUpdatePaymentStatusHandler)
		adminGroup.GET("/dashboard", hb.AdminDashboardHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Splash Shine is up"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
