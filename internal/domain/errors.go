package domain

import "errors"

// ErrValidation is returned by service functions when input fails a
// business rule that is not one of the booking-specific kinds below
// (e.g. missing customer name).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// Booking errors. Every one of them is recoverable: the caller re-prompts
// or resubmits. None of them mutates the ledger.
var (
	// ErrUnknownService means the requested service is not in the catalog.
	ErrUnknownService = errors.New("unknown service")

	// ErrUnservedZipCode means the zip code is outside the served set.
	ErrUnservedZipCode = errors.New("unserved zip code")

	// ErrInvalidDateTime means the date or time could not be parsed.
	ErrInvalidDateTime = errors.New("invalid date or time")

	// ErrNoTechnicianAvailable means no technician offers the service in
	// the requested zip code at all.
	ErrNoTechnicianAvailable = errors.New("no technician available")

	// ErrSlotConflict means every qualifying technician is already booked
	// for an overlapping slot.
	ErrSlotConflict = errors.New("slot conflict")
)
