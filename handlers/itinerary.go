package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"trip-planner-ai/models"
	"trip-planner-ai/services"
)

// GenerateItinerary builds a complete trip itinerary for the requested
// destination, dates and budget.
func GenerateItinerary(c *gin.Context) {
	var req models.TripRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	requestID := uuid.NewString()
	log.Printf("Itinerary request %s - Destination: %s, Budget: %d, Days: %s..%s",
		requestID, req.Destination, req.Budget, req.StartDate, req.EndDate)

	result, err := services.GenerateItinerary(req)
	if err != nil {
		log.Printf("Itinerary request %s failed: %v", requestID, err)

		status := http.StatusInternalServerError
		var reqErr *services.RequestError
		var provErr *services.ProviderError
		switch {
		case errors.As(err, &reqErr):
			status = http.StatusBadRequest
		case errors.As(err, &provErr):
			status = http.StatusBadGateway
		}

		c.JSON(status, gin.H{
			"success":    false,
			"request_id": requestID,
			"error":      err.Error(),
			"agent_logs": result.Logs,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"request_id":   requestID,
		"itinerary":    result.Itinerary,
		"agent_logs":   result.Logs,
		"verification": result.Verification,
	})
}
