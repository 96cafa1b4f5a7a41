package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
	"github.com/IgrejaViva/igreja_backend/internal/middleware"
)

// eventHandler handles HTTP requests related to congregation events.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade) *eventHandler {
	return &eventHandler{eventService: es}
}

func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade) {
	h := newEventHandler(eventService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:event_id", h.getEvent)
		events.PUT("/:event_id", h.updateEvent)
		events.DELETE("/:event_id", h.deleteEvent)
	}
}

// createEvent godoc
// @Summary Schedule an event
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.EventResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [post]
func (h *eventHandler) createEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req, actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// listEvents godoc
// @Summary List events of a congregation
// @Tags events
// @Produce json
// @Param congregationID query string true "Congregation ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListEventsResponse
// @Security BearerAuth
// @Router /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	var params dto.ListEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), actorUserID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list events")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEventsResponse(events))
}

// getEvent godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{event_id} [get]
func (h *eventHandler) getEvent(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	event, err := h.eventService.GetEventByID(c.Request.Context(), c.Param("event_id"), actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to get event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// updateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param event body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{event_id} [put]
func (h *eventHandler) updateEvent(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), c.Param("event_id"), req, actorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// deleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /events/{event_id} [delete]
func (h *eventHandler) deleteEvent(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), c.Param("event_id"), actorUserID); err != nil {
		respondWithError(c, err, "Failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}
