// File: travix/handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"travix/services/booking"
	"travix/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves lookups, reschedules and cancellations for placed bookings.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingHandler{Service: svc, Logger: logger}
}

// GetBooking returns a booking by its reference.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	record, err := h.Service.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// CancelBooking cancels a booking and voids its payment session.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	record, err := h.Service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled", "booking": record})
}

type rescheduleRequest struct {
	NewDate string `json:"newDate" binding:"required"`
}

// RescheduleBooking moves a booking to the date in the request body.
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	id := c.Param("id")
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "newDate is required", err.Error())
		return
	}
	res, err := h.Service.RescheduleBooking(c.Request.Context(), id, req.NewDate)
	if err != nil {
		h.writeError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Booking rescheduled successfully",
		"bookingId":    res.BookingID,
		"originalDate": res.OriginalDate,
		"newDate":      res.NewDate,
		"booking":      res.Booking,
	})
}

func (h *BookingHandler) writeError(c *gin.Context, id string, err error) {
	var bErr *booking.BookingError
	if errors.As(err, &bErr) {
		status := http.StatusBadRequest
		switch bErr.Code {
		case "not_found":
			status = http.StatusNotFound
		case "already_cancelled", "booking_cancelled":
			status = http.StatusConflict
		}
		utils.JSONError(c, status, bErr.Message, bErr.Code)
		return
	}
	h.Logger.Error("Booking operation failed", zap.String("bookingId", id), zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Booking operation failed", err.Error())
}
