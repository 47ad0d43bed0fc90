package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"splashshine/services/pricing"
)

// QuoteCleaningHandler prices a cleaning selection without persisting
// anything. The same selection always yields the same quote.
func QuoteCleaningHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			CleaningType  string            `json:"cleaning_type"`
			TypeOfService string            `json:"type_of_service"`
			AMCFrequency  string            `json:"amc_frequency"`
			Services      map[string]string `json:"services"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		quote := pricing.CleaningQuote(pricing.CleaningSelection{
			CleaningType:  req.CleaningType,
			TypeOfService: req.TypeOfService,
			AMCFrequency:  req.AMCFrequency,
			Services:      req.Services,
		})

		c.JSON(http.StatusOK, gin.H{
			"quote":      quote,
			"settlement": pricing.Split(quote.FinalAmount).Lines(),
		})
	}
}

// QuoteCarWashHandler prices a car wash selection.
func QuoteCarWashHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			VehicleType   string   `json:"vehicle_type"`
			WashType      string   `json:"wash_type"`
			CarSize       string   `json:"car_size"`
			ExtraServices []string `json:"extra_services"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		price := pricing.CarWashPrice(pricing.CarWashSelection{
			VehicleType:   req.VehicleType,
			WashType:      req.WashType,
			CarSize:       req.CarSize,
			ExtraServices: req.ExtraServices,
		})

		c.JSON(http.StatusOK, gin.H{
			"total_price": price,
			"settlement":  pricing.Split(price).Lines(),
		})
	}
}

// QuoteMoversHandler prices a packers & movers distance. The distance arrives
// as free text and non-numeric input prices as zero.
func QuoteMoversHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			DistanceKm string `json:"distance_km"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		km := pricing.ParseDistance(req.DistanceKm)
		price := pricing.MoversPrice(km)

		c.JSON(http.StatusOK, gin.H{
			"distance_km": km,
			"total_price": price,
			"settlement":  pricing.Split(price).Lines(),
		})
	}
}
