package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ticketo/internal/models"
	"ticketo/internal/services"
	"ticketo/internal/utils"
)

type BookingHandler struct {
	bookings *services.BookingService
}

func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	booking, err := h.bookings.CreateBooking(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Missing required fields", "name, email and eventId are required"))
		case errors.Is(err, services.ErrEventNotFound):
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Event not found", ""))
		default:
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create booking", err.Error()))
		}
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse("Booking created", booking))
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookings.ListBookings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to load bookings", err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Bookings retrieved", bookings))
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Missing status", "status is required"))
		return
	}

	booking, err := h.bookings.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Booking not found", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update booking", err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Booking updated", booking))
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	removed, err := h.bookings.DeleteBooking(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete booking", err.Error()))
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, utils.ErrorResponse("Booking not found", ""))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Booking deleted", nil))
}
