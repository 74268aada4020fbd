package service

import "errors"

var (
	// ErrInvalidMetric is returned for an unrecognised metric name
	ErrInvalidMetric = errors.New("invalid metric")

	// ErrInvalidAggregate is returned for an unrecognised aggregate name
	ErrInvalidAggregate = errors.New("invalid aggregate")

	// ErrInvalidNationality is returned when nationality is neither F nor E
	ErrInvalidNationality = errors.New("invalid nationality, must be F or E")

	// ErrInvalidYearRange is returned when yearFrom exceeds yearTo
	ErrInvalidYearRange = errors.New("yearFrom must not exceed yearTo")

	// ErrNoData is returned when the filtered view is empty
	ErrNoData = errors.New("no records match the requested filter")

	// ErrRefreshInProgress is returned when a dataset refresh is already
	// running
	ErrRefreshInProgress = errors.New("a dataset refresh is already in progress")

	// ErrEmptyDataset is returned when a fetched archive yields no usable
	// rows
	ErrEmptyDataset = errors.New("fetched archive contained no usable rows")
)
