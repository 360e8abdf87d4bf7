// File: travix/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers the router needs.
type HandlerBundle struct {
	// Trip planner endpoints
	TripTurnHandler     gin.HandlerFunc
	ClearSessionHandler gin.HandlerFunc

	// Booking endpoints
	GetBookingHandler        gin.HandlerFunc
	CancelBookingHandler     gin.HandlerFunc
	RescheduleBookingHandler gin.HandlerFunc

	// Operational endpoints
	HealthHandler  gin.HandlerFunc
	MetricsHandler gin.HandlerFunc
}
