// Package handler implements the HTTP front-end of the CSR assistant: the
// booking page and form, the chat endpoint, and a small JSON API over the
// catalog, FAQ and appointment ledger.
// Handlers are methods on Server, split into files by concern.
package handler

import (
	"context"
	"embed"
	"html/template"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/csr-assistant/internal/chat"
	"github.com/pkordes/csr-assistant/internal/domain"
	"github.com/pkordes/csr-assistant/internal/service"
)

// BookingServicer defines the booking operations the handlers depend on.
// Defining it here, in the consumer package, lets handler tests inject a
// mock without touching the ledger.
type BookingServicer interface {
	Book(ctx context.Context, req domain.BookingRequest) (domain.Appointment, error)
	List(ctx context.Context, f domain.AppointmentFilter, p domain.PaginationParams) ([]domain.Appointment, int64, error)
}

// FAQServicer answers fixed-form questions.
type FAQServicer interface {
	Answer(text string) (service.FAQResponse, bool)
}

//go:embed templates/*.html
var templateFS embed.FS

// Server holds the dependencies shared by every handler.
type Server struct {
	catalog  *domain.Catalog
	bookings BookingServicer
	faq      FAQServicer
	sessions *chat.SessionStore
	pages    *template.Template
	log      *slog.Logger
}

// NewServer constructs the Server. A nil logger uses slog.Default.
func NewServer(catalog *domain.Catalog, bookings BookingServicer, faq FAQServicer, sessions *chat.SessionStore, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		catalog:  catalog,
		bookings: bookings,
		faq:      faq,
		sessions: sessions,
		pages:    template.Must(template.ParseFS(templateFS, "templates/*.html")),
		log:      log,
	}
}

// Routes returns the router for every endpoint. Cross-cutting middleware
// (request IDs, logging, CORS) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.GetIndex)
	r.Post("/book", s.PostBookForm)
	r.Post("/chat", s.PostChat)
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/services", s.ListServices)
		r.Get("/zip-codes", s.ListZipCodes)
		r.Get("/technicians", s.ListTechnicians)
		r.Get("/faq", s.GetFAQ)
		r.Post("/appointments", s.CreateAppointment)
		r.Get("/appointments", s.ListAppointments)
	})

	return r
}
