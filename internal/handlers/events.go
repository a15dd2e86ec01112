package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketo/internal/models"
	"ticketo/internal/services"
	"ticketo/internal/utils"
)

type EventHandler struct {
	events *services.EventService
}

func NewEventHandler(events *services.EventService) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.events.ListEvents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to load events", err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Events retrieved", events))
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.events.GetEvent(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Event not found", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to load event", err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Event retrieved", event))
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var input models.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	event, err := h.events.CreateEvent(&input)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse("Missing required fields", "title is required"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to create event", err.Error()))
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse("Event created", event))
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var input models.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	event, err := h.events.UpdateEvent(c.Param("id"), &input)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Event not found", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to update event", err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Event updated", event))
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.events.DeleteEvent(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse("Event not found", ""))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to delete event", err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Event deleted", nil))
}
