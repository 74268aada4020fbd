package handler

import (
	"net/http"

	"github.com/aviodata/traffic-api/internal/service"
	"go.uber.org/zap"
)

// EventsHandler serves the disruption annotations
type EventsHandler struct {
	eventService *service.EventService
	logger       *zap.Logger
}

// NewEventsHandler creates a new EventsHandler instance
func NewEventsHandler(eventService *service.EventService, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// List godoc
// @Summary List disruption events
// @Description Get the annotated disruption events (lockdowns, strikes) ordered by period
// @Tags Events
// @Produce json
// @Success 200 {array} domain.EventDTO
// @Failure 500 {object} domain.APIError
// @Router /events [get]
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list events", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}
