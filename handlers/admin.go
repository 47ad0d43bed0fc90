package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"splashshine/models"
	"splashshine/services/admin"
	"splashshine/services/payment"
)

// AdminListUsersHandler returns every registered customer.
func AdminListUsersHandler(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		users, err := svc.ListUsers()
		if err != nil {
			logger.Error("Failed to list users", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// AdminDeleteUserHandler removes a customer account.
func AdminDeleteUserHandler(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if err := svc.DeleteUser(c.Param("id")); err != nil {
			logger.Error("Failed to delete user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}

// AdminListBookingsHandler returns every booking joined with its payment flags.
func AdminListBookingsHandler(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		rows, err := svc.ListBookings()
		if err != nil {
			logger.Error("Failed to list bookings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// AdminListPaymentsHandler returns the payment ledger with derived amounts.
func AdminListPaymentsHandler(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		rows, err := svc.ListPayments()
		if err != nil {
			logger.Error("Failed to list payments", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// AdminUpdatePaymentStatusHandler approves or rejects a pending advance.
func AdminUpdatePaymentStatusHandler(svc payment.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Status models.PaymentStatus `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		p, err := svc.UpdateStatus(c.Param("id"), req.Status)
		if err != nil {
			logger.Warn("Payment status update rejected", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// AdminUpdateDueStatusHandler marks the remaining 50% as collected.
func AdminUpdateDueStatusHandler(svc payment.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			DuePaymentStatus models.DueStatus `json:"due_payment_status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		p, err := svc.UpdateDueStatus(c.Param("id"), req.DuePaymentStatus)
		if err != nil {
			logger.Warn("Due status update rejected", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// AdminDashboardHandler returns the dashboard counters.
func AdminDashboardHandler(svc admin.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		stats, err := svc.Dashboard()
		if err != nil {
			logger.Error("Failed to build dashboard", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
