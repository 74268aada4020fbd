package handler

import (
	"errors"
	"net/http"

	"github.com/aviodata/traffic-api/internal/domain"
	"github.com/aviodata/traffic-api/internal/service"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// AnalyticsHandler handles HTTP requests for the aggregated views
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	logger           *zap.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler instance
func NewAnalyticsHandler(analyticsService *service.AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// parseAnalyticsParams reads the filter and metric shared by every
// analytics endpoint
func (h *AnalyticsHandler) parseAnalyticsParams(w http.ResponseWriter, r *http.Request) (domain.RecordFilter, domain.Metric, bool) {
	filter, err := parseFilter(r)
	if err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			respondValidationError(w, err)
			return filter, "", false
		}
		respondWithError(w, http.StatusBadRequest, err.Error())
		return filter, "", false
	}
	return filter, parseMetric(r), true
}

// Summary godoc
// @Summary Headline KPIs
// @Description Get row count, passenger and flight totals, first/latest values and change for a metric over the filtered view
// @Tags Analytics
// @Produce json
// @Param metric query string false "Metric name" default(pax)
// @Param yearFrom query int false "First year of the range, inclusive"
// @Param yearTo query int false "Last year of the range, inclusive"
// @Param countries query string false "Comma-separated carrier countries"
// @Param nationality query string false "Carrier nationality (F=French, E=foreign)"
// @Success 200 {object} domain.SummaryMetrics
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	filter, metric, ok := h.parseAnalyticsParams(w, r)
	if !ok {
		return
	}

	result, err := h.analyticsService.Summary(r.Context(), filter, metric)
	if err != nil {
		h.logger.Error("Failed to compute summary", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Timeseries godoc
// @Summary Metric trend over time
// @Description Get a metric aggregated per year or per month, with the series median and disruption events in range
// @Tags Analytics
// @Produce json
// @Param metric query string false "Metric name" default(pax)
// @Param interval query string false "Aggregation interval (year or month)" default(year)
// @Param yearFrom query int false "First year of the range, inclusive"
// @Param yearTo query int false "Last year of the range, inclusive"
// @Param countries query string false "Comma-separated carrier countries"
// @Param nationality query string false "Carrier nationality (F=French, E=foreign)"
// @Success 200 {object} domain.TimeseriesResult
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /analytics/timeseries [get]
func (h *AnalyticsHandler) Timeseries(w http.ResponseWriter, r *http.Request) {
	filter, metric, ok := h.parseAnalyticsParams(w, r)
	if !ok {
		return
	}

	interval := r.URL.Query().Get("interval")
	result, err := h.analyticsService.Timeseries(r.Context(), filter, metric, interval)
	if err != nil {
		h.logger.Error("Failed to compute timeseries", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Countries godoc
// @Summary Country ranking
// @Description Get carrier countries ranked by a metric total over the filtered view
// @Tags Analytics
// @Produce json
// @Param metric query string false "Metric name" default(pax)
// @Param limit query int false "Maximum countries returned (0 for all)"
// @Param yearFrom query int false "First year of the range, inclusive"
// @Param yearTo query int false "Last year of the range, inclusive"
// @Param nationality query string false "Carrier nationality (F=French, E=foreign)"
// @Success 200 {array} domain.CountryTotal
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /analytics/countries [get]
func (h *AnalyticsHandler) Countries(w http.ResponseWriter, r *http.Request) {
	filter, metric, ok := h.parseAnalyticsParams(w, r)
	if !ok {
		return
	}

	limit := parseIntParam(r, "limit", 0)
	result, err := h.analyticsService.Countries(r.Context(), filter, metric, limit)
	if err != nil {
		h.logger.Error("Failed to compute country totals", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Seasonality godoc
// @Summary Year-by-month matrix
// @Description Get a metric aggregated per year and month, the seasonality heatmap view
// @Tags Analytics
// @Produce json
// @Param metric query string false "Metric name" default(pax)
// @Param agg query string false "Cell aggregation (sum or mean)" default(sum)
// @Param lastYears query int false "Restrict to the most recent N years"
// @Param yearFrom query int false "First year of the range, inclusive"
// @Param yearTo query int false "Last year of the range, inclusive"
// @Param countries query string false "Comma-separated carrier countries"
// @Param nationality query string false "Carrier nationality (F=French, E=foreign)"
// @Success 200 {object} domain.SeasonalityMatrix
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /analytics/seasonality [get]
func (h *AnalyticsHandler) Seasonality(w http.ResponseWriter, r *http.Request) {
	filter, metric, ok := h.parseAnalyticsParams(w, r)
	if !ok {
		return
	}

	agg := domain.Aggregate(r.URL.Query().Get("agg"))
	if agg == "" {
		// legacy alias
		agg = domain.Aggregate(r.URL.Query().Get("aggregate"))
	}
	lastYears := parseIntParam(r, "lastYears", 0)

	result, err := h.analyticsService.Seasonality(r.Context(), filter, metric, agg, lastYears)
	if err != nil {
		h.logger.Error("Failed to compute seasonality matrix", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Carriers godoc
// @Summary Carrier comparison
// @Description Get top carriers by a metric with their yearly trends; defaults to French carriers when no nationality filter is set
// @Tags Analytics
// @Produce json
// @Param metric query string false "Metric name" default(pax)
// @Param limit query int false "Number of carriers (max 50)" default(10)
// @Param yearFrom query int false "First year of the range, inclusive"
// @Param yearTo query int false "Last year of the range, inclusive"
// @Param countries query string false "Comma-separated carrier countries"
// @Param nationality query string false "Carrier nationality (F=French, E=foreign)"
// @Success 200 {object} domain.CarrierComparison
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /analytics/carriers [get]
func (h *AnalyticsHandler) Carriers(w http.ResponseWriter, r *http.Request) {
	filter, metric, ok := h.parseAnalyticsParams(w, r)
	if !ok {
		return
	}

	limit := parseIntParam(r, "limit", 0)
	result, err := h.analyticsService.Carriers(r.Context(), filter, metric, limit)
	if err != nil {
		h.logger.Error("Failed to compute carrier comparison", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Recovery godoc
// @Summary Recovery vs baseline year
// @Description Compare each carrier's latest-year total against the baseline year (2019 by default)
// @Tags Analytics
// @Produce json
// @Param metric query string false "Metric name" default(pax)
// @Param limit query int false "Number of carriers (max 50)" default(10)
// @Param yearFrom query int false "First year of the range, inclusive"
// @Param yearTo query int false "Last year of the range, inclusive"
// @Param countries query string false "Comma-separated carrier countries"
// @Param nationality query string false "Carrier nationality (F=French, E=foreign)"
// @Success 200 {object} domain.RecoveryReport
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /analytics/recovery [get]
func (h *AnalyticsHandler) Recovery(w http.ResponseWriter, r *http.Request) {
	filter, metric, ok := h.parseAnalyticsParams(w, r)
	if !ok {
		return
	}

	limit := parseIntParam(r, "limit", 0)
	result, err := h.analyticsService.Recovery(r.Context(), filter, metric, limit)
	if err != nil {
		h.logger.Error("Failed to compute recovery report", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
