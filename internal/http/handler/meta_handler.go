package handler

import (
	"net/http"

	"github.com/aviodata/traffic-api/internal/service"
	"go.uber.org/zap"
)

// MetaHandler serves filter discovery metadata: the years, countries and
// metrics clients can filter on
type MetaHandler struct {
	trafficService *service.TrafficService
	logger         *zap.Logger
}

// NewMetaHandler creates a new MetaHandler instance
func NewMetaHandler(trafficService *service.TrafficService, logger *zap.Logger) *MetaHandler {
	return &MetaHandler{
		trafficService: trafficService,
		logger:         logger,
	}
}

// Years godoc
// @Summary List dataset years
// @Description Get the years covered by the stored dataset, ascending
// @Tags Meta
// @Produce json
// @Success 200 {array} int
// @Failure 500 {object} domain.APIError
// @Router /meta/years [get]
func (h *MetaHandler) Years(w http.ResponseWriter, r *http.Request) {
	years, err := h.trafficService.Years(r.Context())
	if err != nil {
		h.logger.Error("Failed to list dataset years", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, years)
}

// Countries godoc
// @Summary List carrier countries
// @Description Get the carrier countries present in the stored dataset, ascending
// @Tags Meta
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} domain.APIError
// @Router /meta/countries [get]
func (h *MetaHandler) Countries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.trafficService.Countries(r.Context())
	if err != nil {
		h.logger.Error("Failed to list carrier countries", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, countries)
}

// Metrics godoc
// @Summary List selectable metrics
// @Description Get the metrics available for aggregation, including computed ratios
// @Tags Meta
// @Produce json
// @Success 200 {array} domain.MetricInfo
// @Router /meta/metrics [get]
func (h *MetaHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.trafficService.Metrics())
}
