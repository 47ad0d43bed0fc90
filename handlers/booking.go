package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"splashshine/models"
	"splashshine/services/booking"
)

// bookingError maps service failures to HTTP responses. Validation problems
// come back as a 400 with the full problem list so the client can surface
// every issue at once.
func bookingError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *booking.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "problems": verr.Problems})
		return
	}
	var nferr *booking.NotFoundError
	if errors.As(err, &nferr) {
		c.JSON(http.StatusNotFound, gin.H{"error": nferr.Error()})
		return
	}
	logger.Error("Booking operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking operation failed"})
}

// BookCleaningHandler submits a cleaning booking.
func BookCleaningHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.CleaningBookingInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.CreateCleaning(req)
		if err != nil {
			bookingError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// BookCarWashHandler submits a mobile car wash booking.
func BookCarWashHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.CarWashBookingInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.CreateCarWash(req)
		if err != nil {
			bookingError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// BookMoversHandler submits a packers & movers booking.
func BookMoversHandler(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.MoversBookingInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, err := svc.CreateMovers(req)
		if err != nil {
			bookingError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}
