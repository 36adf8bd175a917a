package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/csr-assistant/internal/domain"
	"github.com/pkordes/csr-assistant/internal/service"
)

// BookingRequestBody is the body of POST /api/appointments. Date and time
// accept the same human formats as the chat dialogue.
type BookingRequestBody struct {
	CustomerName string `json:"customer_name"`
	Service      string `json:"service"`
	ZipCode      string `json:"zip_code"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}

// Appointment is the JSON form of domain.Appointment.
type Appointment struct {
	ID           openapi_types.UUID `json:"id"`
	CustomerName string             `json:"customer_name"`
	Service      string             `json:"service"`
	ServiceName  string             `json:"service_name"`
	Technician   string             `json:"technician"`
	ZipCode      string             `json:"zip_code"`
	Date         openapi_types.Date `json:"date"`
	Time         string             `json:"time"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Pagination describes the page returned by a listing.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// AppointmentList is the body of GET /api/appointments.
type AppointmentList struct {
	Data       []Appointment `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// ListAppointmentsParams are the query parameters of GET /api/appointments.
type ListAppointmentsParams struct {
	Technician *string
	Date       *openapi_types.Date
	Page       *int
	Limit      *int
}

// CreateAppointment handles POST /api/appointments.
// Returns 201 with the appointment, 422 for invalid input or when nobody
// offers the service in that zip code, 409 when every qualifying
// technician is busy.
func (s *Server) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var body BookingRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		decodeFailure(w, err, "request body must be a JSON booking request")
		return
	}

	req := domain.BookingRequest{
		CustomerName: body.CustomerName,
		Service:      body.Service,
		ZipCode:      body.ZipCode,
		Date:         body.Date,
		Time:         body.Time,
	}
	appt, err := s.bookings.Book(r.Context(), req)
	if err != nil {
		if _, _, ok := classifyBookingError(err); ok {
			status, resp := s.bookingErrorBody(err, req)
			writeJSON(w, status, resp)
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, appointmentToResponse(appt))
}

// ListAppointments handles GET /api/appointments.
// Supports ?technician=, ?date= (YYYY-MM-DD), ?page= and ?limit=
// (defaults: page=1, limit=20, max=100).
func (s *Server) ListAppointments(w http.ResponseWriter, r *http.Request) {
	var params ListAppointmentsParams
	query := r.URL.Query()
	for name, dest := range map[string]any{
		"technician": &params.Technician,
		"date":       &params.Date,
		"page":       &params.Page,
		"limit":      &params.Limit,
	} {
		if err := runtime.BindQueryParameter("form", true, false, name, query, dest); err != nil {
			writeJSON(w, http.StatusBadRequest, requestBody("invalid query parameter "+name))
			return
		}
	}

	var filter domain.AppointmentFilter
	if params.Technician != nil {
		filter.TechnicianName = *params.Technician
	}
	if params.Date != nil {
		d := time.Date(params.Date.Year(), params.Date.Month(), params.Date.Day(), 0, 0, 0, 0, time.UTC)
		filter.Date = &d
	}
	page := domain.NewPaginationParams(params.Page, params.Limit)

	appts, total, err := s.bookings.List(r.Context(), filter, page)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	data := make([]Appointment, len(appts))
	for i, a := range appts {
		data[i] = appointmentToResponse(a)
	}
	writeJSON(w, http.StatusOK, AppointmentList{
		Data: data,
		Pagination: Pagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: int(total),
		},
	})
}

// appointmentToResponse converts a domain.Appointment to its JSON form.
func appointmentToResponse(a domain.Appointment) Appointment {
	return Appointment{
		ID:           openapi_types.UUID(a.ID),
		CustomerName: a.CustomerName,
		Service:      string(a.Service),
		ServiceName:  service.DisplayService(a.Service),
		Technician:   a.TechnicianName,
		ZipCode:      a.ZipCode,
		Date:         openapi_types.Date{Time: a.Date},
		Time:         a.StartTime.String(),
		CreatedAt:    a.CreatedAt,
	}
}
