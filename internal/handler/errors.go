package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkordes/csr-assistant/internal/chat"
	"github.com/pkordes/csr-assistant/internal/domain"
)

// ErrorResponse is the body of every JSON error.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a message meant
// for people.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// bookingErrors maps booking sentinels to HTTP status and error code, in
// the order they are tested.
var bookingErrors = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrValidation, http.StatusUnprocessableEntity, "validation_error"},
	{domain.ErrUnknownService, http.StatusUnprocessableEntity, "unknown_service"},
	{domain.ErrUnservedZipCode, http.StatusUnprocessableEntity, "unserved_zip_code"},
	{domain.ErrInvalidDateTime, http.StatusUnprocessableEntity, "invalid_date_time"},
	{domain.ErrNoTechnicianAvailable, http.StatusUnprocessableEntity, "no_technician_available"},
	{domain.ErrSlotConflict, http.StatusConflict, "slot_conflict"},
}

// classifyBookingError returns the status and code for a booking error.
// ok is false for anything that is not a booking error.
func classifyBookingError(err error) (status int, code string, ok bool) {
	for _, be := range bookingErrors {
		if errors.Is(err, be.err) {
			return be.status, be.code, true
		}
	}
	return http.StatusInternalServerError, "internal_error", false
}

// bookingErrorBody returns the JSON body for a failed booking. The message
// is the same one the chat dialogue shows.
func (s *Server) bookingErrorBody(err error, req domain.BookingRequest) (int, ErrorResponse) {
	status, code, _ := classifyBookingError(err)
	return status, ErrorResponse{Error: ErrorDetail{
		Code:    code,
		Message: chat.BookingErrorMessage(err, req, s.catalog),
	}}
}

// requestBody returns an ErrorResponse for a request rejected before it
// reached the service layer (malformed JSON, bad query parameter).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "bad_request", Message: message}}
}

// decodeFailure answers a request whose JSON body could not be decoded:
// 413 when http.MaxBytesReader cut it off, 400 otherwise.
func decodeFailure(w http.ResponseWriter, err error, message string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: ErrorDetail{
			Code:    "request_too_large",
			Message: "request body is too large",
		}})
		return
	}
	writeJSON(w, http.StatusBadRequest, requestBody(message))
}

func notFoundBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}}
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the client has gone away; nothing useful to do.
	json.NewEncoder(w).Encode(v)
}

// internalError logs err and answers 500 without leaking details.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{
		Code:    "internal_error",
		Message: "internal server error",
	}})
}
