package handler

import (
	"errors"
	"net/http"

	"github.com/aviodata/traffic-api/internal/service"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// RecordsHandler handles HTTP requests for raw traffic records
type RecordsHandler struct {
	trafficService *service.TrafficService
	logger         *zap.Logger
}

// NewRecordsHandler creates a new RecordsHandler instance
func NewRecordsHandler(trafficService *service.TrafficService, logger *zap.Logger) *RecordsHandler {
	return &RecordsHandler{
		trafficService: trafficService,
		logger:         logger,
	}
}

// List godoc
// @Summary List traffic records
// @Description Get a paginated list of monthly carrier traffic records with optional filters
// @Tags Records
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 1000)" default(100)
// @Param yearFrom query int false "First year of the range, inclusive"
// @Param yearTo query int false "Last year of the range, inclusive"
// @Param countries query string false "Comma-separated carrier countries"
// @Param nationality query string false "Carrier nationality (F=French, E=foreign)"
// @Success 200 {object} domain.RecordPage
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /records [get]
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			respondValidationError(w, err)
			return
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page := parseIntParam(r, "page", 1)
	pageSize := parseIntParam(r, "pageSize", 0)

	result, err := h.trafficService.List(r.Context(), filter, page, pageSize)
	if err != nil {
		h.logger.Error("Failed to list traffic records", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
