package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"splashshine/config"
	"splashshine/cron"
	"splashshine/database"
	bookingRepoPkg "splashshine/database/repository/booking"
	paymentRepoPkg "splashshine/database/repository/payment"
	userRepoPkg "splashshine/database/repository/user"
	"splashshine/handlers"
	"splashshine/middleware"
	"splashshine/routes"
	"splashshine/services/admin"
	"splashshine/services/booking"
	"splashshine/services/document"
	"splashshine/services/payment"
	"splashshine/services/user"
	"splashshine/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	cron.InitReminderWorker()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		CacheClient: utils.GetCacheClient(),
	}
	paymentService := &payment.DefaultPaymentService{
		Repo:      paymentRepo,
		Bookings:  bookingRepo,
		Reminders: cron.NewReminderScheduler(),
	}
	adminService := &admin.DefaultAdminService{
		Users:    userRepo,
		Bookings: bookingRepo,
		Payments: paymentRepo,
	}
	gotenbergClient := document.NewGotenbergClient(config.AppConfig.GotenbergURL)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := gotenbergClient.Ping(pingCtx); err != nil {
		logger.Sugar().Warnf("main: gotenberg unreachable at %s, PDF rendering will fail until it is up: %v",
			config.AppConfig.GotenbergURL, err)
	}
	pingCancel()
	documentService := document.NewService(gotenbergClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		RegisterHandler:       handlers.RegisterHandler(userService),
		LoginHandler:          handlers.LoginHandler(userService),
		ForgotPasswordHandler: handlers.ForgotPasswordHandler(userService),
		ResetPasswordHandler:  handlers.ResetPasswordHandler(userService),

		// Quote endpoints.
		QuoteCleaningHandler: handlers.QuoteCleaningHandler(),
		QuoteCarWashHandler:  handlers.QuoteCarWashHandler(),
		QuoteMoversHandler:   handlers.QuoteMoversHandler(),

		// Booking endpoints.
		BookCleaningHandler: handlers.BookCleaningHandler(bookingService),
		BookCarWashHandler:  handlers.BookCarWashHandler(bookingService),
		BookMoversHandler:   handlers.BookMoversHandler(bookingService),

		// Payment endpoints.
		ConfirmPaymentHandler: handlers.ConfirmPaymentHandler(paymentService),
		PaymentSummaryHandler: handlers.PaymentSummaryHandler(bookingService),
		UPILinkHandler:        handlers.UPILinkHandler(bookingService),

		// Document endpoints.
		InvoiceHandler:   handlers.DocumentHandler(document.KindInvoice, documentService, bookingService, paymentService),
		QuotationHandler: handlers.DocumentHandler(document.KindQuotation, documentService, bookingService, paymentService),

		// Admin endpoints.
		AdminListUsersHandler:           handlers.AdminListUsersHandler(adminService),
		AdminDeleteUserHandler:          handlers.AdminDeleteUserHandler(adminService),
		AdminListBookingsHandler:        handlers.AdminListBookingsHandler(adminService),
		AdminListPaymentsHandler:        handlers.AdminListPaymentsHandler(adminService),
		AdminUpdatePaymentStatusHandler: handlers.AdminUpdatePaymentStatusHandler(paymentService),
		AdminUpdateDueStatusHandler:     handlers.AdminUpdateDueStatusHandler(paymentService),
		AdminDashboardHandler:           handlers.AdminDashboardHandler(adminService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
