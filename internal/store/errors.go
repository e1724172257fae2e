package store

import "errors"

var (
	// ErrAircraftNotFound is returned when an id resolves to no record.
	ErrAircraftNotFound = errors.New("aircraft not found")
	// ErrInvalidPeriod is returned for a period missing an endpoint.
	ErrInvalidPeriod = errors.New("maintenance period missing entrada or saida")
	// ErrInvalidDateRange is returned when entrada is after saida.
	ErrInvalidDateRange = errors.New("maintenance period entrada after saida")
)
