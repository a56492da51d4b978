package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hukuitappei/voicetask/internal/domains/calendarsync"
	"github.com/hukuitappei/voicetask/internal/domains/event"
	"github.com/hukuitappei/voicetask/internal/domains/session"
	"github.com/hukuitappei/voicetask/pkg/Logger"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventService event.EventService
	syncService  calendarsync.SyncService
	logger       *Logger.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService event.EventService, syncService calendarsync.SyncService, logger *Logger.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		syncService:  syncService,
		logger:       logger,
	}
}

// CreateEvent handles event creation
// @Summary Create a new event
// @Description Create a new calendar event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body event.CreateEventRequest true "Event creation data"
// @Success 201 {object} CreateEventResponse "Event created successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req event.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	eventResponse, err := h.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrInvalidEventData):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid event data"})
		default:
			h.logger.Errorf("create event error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, CreateEventResponse{
		Message: "Event created successfully",
		Event:   *eventResponse,
	})
}

// GetEvent handles getting a specific event
// @Summary Get event by ID
// @Description Get a specific event by ID
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} EventDetailResponse "Event data"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	eventResponse, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		switch err {
		case event.ErrEventNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
		default:
			h.logger.Errorf("get event error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, EventDetailResponse{Event: *eventResponse})
}

// UpdateEvent handles updating an event
// @Summary Update event
// @Description Update a specific event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body event.UpdateEventRequest true "Event update data"
// @Success 200 {object} UpdateEventResponse "Event updated successfully"
// @Failure 400 {object} ErrorResponse "Invalid request data"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	var req event.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request data",
			Details: err.Error(),
		})
		return
	}

	eventResponse, err := h.eventService.UpdateEvent(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrEventNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
		case errors.Is(err, event.ErrInvalidEventData):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid event data"})
		default:
			h.logger.Errorf("update event error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, UpdateEventResponse{
		Message: "Event updated successfully",
		Event:   *eventResponse,
	})
}

// DeleteEvent handles event deletion
// @Summary Delete event
// @Description Delete a specific event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} SuccessResponse "Event deleted successfully"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		switch err {
		case event.ErrEventNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
		default:
			h.logger.Errorf("delete event error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Event deleted successfully"})
}

// ListEvents handles listing events with filtering
// @Summary List events
// @Description List events with optional category and date range filters, ordered by start date
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param from query string false "Earliest start date (RFC3339)"
// @Param to query string false "Latest start date (RFC3339)"
// @Param offset query int false "Number of events to skip" default(0)
// @Param limit query int false "Number of events to return" default(20)
// @Success 200 {object} ListEventsResponse "List of events with pagination"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	var filters event.ListEventsRequest
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid query parameters",
			Details: err.Error(),
		})
		return
	}

	// Set default limits
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 20
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}

	events, total, err := h.eventService.ListEvents(c.Request.Context(), filters)
	if err != nil {
		h.logger.Errorf("list events error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ListEventsResponse{
		Events: events,
		Pagination: PaginationInfo{
			Total:  total,
			Offset: filters.Offset,
			Limit:  filters.Limit,
		},
	})
}

// SyncEvent handles mirroring an event to Google Calendar
// @Summary Sync event to Google Calendar
// @Description Mirror a specific event to Google Calendar. Already-mirrored events succeed without a second insert.
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} SyncedEventResponse "Event synced successfully"
// @Failure 400 {object} ErrorResponse "Invalid event ID"
// @Failure 401 {object} ErrorResponse "Session not authenticated"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 503 {object} ErrorResponse "Google Calendar is not linked"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /events/{id}/sync [post]
func (h *EventHandler) SyncEvent(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}

	eventResponse, err := h.syncService.SyncEvent(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, calendarsync.ErrNotLinked):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: calendarsync.ErrNotLinked.Error()})
		case errors.Is(err, event.ErrEventNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Event not found"})
		default:
			h.logger.Errorf("sync event error: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "Calendar sync failed",
				Details: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, SyncedEventResponse{
		Message: "Event synced to Google Calendar",
		Event:   *eventResponse,
	})
}

// RegisterEventRoutes registers all event-related routes
func (h *EventHandler) RegisterEventRoutes(r *gin.RouterGroup, sessionService session.SessionService) {
	protected := r.Group("/events")
	protected.Use(AuthMiddleware(sessionService, h.logger))
	{
		protected.POST("", h.CreateEvent)
		protected.GET("", h.ListEvents)
		protected.GET("/:id", h.GetEvent)
		protected.PUT("/:id", h.UpdateEvent)
		protected.DELETE("/:id", h.DeleteEvent)
		protected.POST("/:id/sync", h.SyncEvent)
	}
}
