package handler

import (
	"net/http"

	"github.com/aviodata/traffic-api/internal/service"
	"go.uber.org/zap"
)

// DatasetHandler handles dataset status and admin refresh requests
type DatasetHandler struct {
	datasetService *service.DatasetService
	logger         *zap.Logger
}

// NewDatasetHandler creates a new DatasetHandler instance
func NewDatasetHandler(datasetService *service.DatasetService, logger *zap.Logger) *DatasetHandler {
	return &DatasetHandler{
		datasetService: datasetService,
		logger:         logger,
	}
}

// Status godoc
// @Summary Dataset status
// @Description Get the stored snapshot's row count, year coverage, freshness and last import
// @Tags Dataset
// @Produce json
// @Success 200 {object} domain.DatasetStatus
// @Failure 500 {object} domain.APIError
// @Router /dataset/status [get]
func (h *DatasetHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.datasetService.Status(r.Context())
	if err != nil {
		h.logger.Error("Failed to read dataset status", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// Refresh godoc
// @Summary Trigger a dataset refresh
// @Description Download and re-ingest the upstream open-data archive, replacing the stored snapshot
// @Tags Dataset
// @Produce json
// @Success 200 {object} domain.ImportRunDTO
// @Failure 401 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /dataset/refresh [post]
func (h *DatasetHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	run, err := h.datasetService.Refresh(r.Context())
	if err != nil {
		h.logger.Error("Manual dataset refresh failed", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, run)
}

// History godoc
// @Summary Import history
// @Description Get the most recent import runs, newest first
// @Tags Dataset
// @Produce json
// @Param limit query int false "Maximum runs returned (max 100)" default(20)
// @Success 200 {array} domain.ImportRunDTO
// @Failure 500 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /dataset/history [get]
func (h *DatasetHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", 20)
	runs, err := h.datasetService.ImportHistory(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to list import history", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, runs)
}
