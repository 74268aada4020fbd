package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/aviodata/traffic-api/internal/domain"
	"github.com/aviodata/traffic-api/internal/service"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// filterQuery mirrors the shared filter query parameters for validation
type filterQuery struct {
	YearFrom    int    `validate:"omitempty,gte=1900,lte=2200"`
	YearTo      int    `validate:"omitempty,gte=1900,lte=2200"`
	Nationality string `validate:"omitempty,oneof=F E"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondValidationError sends a standardized validation error response with specific field messages
func respondValidationError(w http.ResponseWriter, err error) {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fieldName := toJSONFieldName(fe.Field())
			errs[fieldName] = formatValidationError(fe)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   domain.ErrorTypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
		Detail: "One or more fields failed validation",
		Errors: errs,
	})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", toJSONFieldName(fe.Field()))
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	default:
		return domain.GetValidationMessage(fe.Tag())
	}
}

// toJSONFieldName converts a Go struct field name to its JSON equivalent (camelCase)
func toJSONFieldName(field string) string {
	if len(field) == 0 {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// respondWithError sends a standardized JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   getErrorType(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: message,
	})
}

// respondServiceError maps service-level errors onto HTTP statuses
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidMetric),
		errors.Is(err, service.ErrInvalidAggregate),
		errors.Is(err, service.ErrInvalidNationality),
		errors.Is(err, service.ErrInvalidYearRange):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNoData):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrRefreshInProgress):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

// getErrorType returns the appropriate error type for an HTTP status code
func getErrorType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return domain.ErrorTypeBadRequest
	case http.StatusUnauthorized:
		return domain.ErrorTypeUnauthorized
	case http.StatusForbidden:
		return domain.ErrorTypeForbidden
	case http.StatusNotFound:
		return domain.ErrorTypeNotFound
	case http.StatusConflict:
		return domain.ErrorTypeConflict
	default:
		return domain.ErrorTypeInternal
	}
}

// parseFilter builds the shared record filter from query parameters.
// yearFrom/yearTo bound the year range, countries is a comma-separated
// list of carrier countries, nationality is F or E.
func parseFilter(r *http.Request) (domain.RecordFilter, error) {
	q := r.URL.Query()
	var f domain.RecordFilter

	if s := q.Get("yearFrom"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return f, fmt.Errorf("yearFrom must be an integer")
		}
		f.YearFrom = v
	}
	if s := q.Get("yearTo"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return f, fmt.Errorf("yearTo must be an integer")
		}
		f.YearTo = v
	}
	if s := q.Get("countries"); s != "" {
		for _, c := range strings.Split(s, ",") {
			if c = strings.TrimSpace(c); c != "" {
				f.Countries = append(f.Countries, c)
			}
		}
	}
	f.Nationality = domain.CarrierNationality(strings.ToUpper(q.Get("nationality")))

	fq := filterQuery{
		YearFrom:    f.YearFrom,
		YearTo:      f.YearTo,
		Nationality: string(f.Nationality),
	}
	if err := validate.Struct(fq); err != nil {
		return f, err
	}
	return f, nil
}

// parseMetric reads the metric query parameter, defaulting to passengers
func parseMetric(r *http.Request) domain.Metric {
	m := domain.Metric(r.URL.Query().Get("metric"))
	if m == "" {
		return domain.MetricPax
	}
	return m
}

// parseIntParam reads an optional integer query parameter
func parseIntParam(r *http.Request, name string, fallback int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}
