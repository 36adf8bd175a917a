package handler

import (
	"net/http"

	"github.com/pkordes/csr-assistant/internal/chat"
	"github.com/pkordes/csr-assistant/internal/domain"
	"github.com/pkordes/csr-assistant/internal/service"
)

// serviceOption is one <option> of the service select.
type serviceOption struct {
	Value    string
	Label    string
	Selected bool
}

// pageData feeds templates/index.html.
type pageData struct {
	Services     []serviceOption
	ZipCodes     []string
	Form         domain.BookingRequest
	Confirmation string
	Error        string
	Greeting     string
}

// GetIndex handles GET /. Loading the page starts a fresh conversation,
// so any chat session named by the cookie is discarded.
func (s *Server) GetIndex(w http.ResponseWriter, r *http.Request) {
	if id := sessionID(r); id != "" {
		s.sessions.Delete(id)
		clearSessionCookie(w)
	}
	s.render(w, r, http.StatusOK, s.newPageData(domain.BookingRequest{}))
}

// PostBookForm handles POST /book from the booking form. The page is
// rendered again with either the confirmation or the error; on error the
// submitted values are kept so the customer can correct them.
func (s *Server) PostBookForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		data := s.newPageData(domain.BookingRequest{})
		data.Error = "Sorry, that form submission could not be read. Please try again."
		s.render(w, r, http.StatusBadRequest, data)
		return
	}

	req := domain.BookingRequest{
		CustomerName: r.PostForm.Get("name"),
		Service:      r.PostForm.Get("service"),
		ZipCode:      r.PostForm.Get("zip_code"),
		Date:         r.PostForm.Get("date"),
		Time:         r.PostForm.Get("time"),
	}

	appt, err := s.bookings.Book(r.Context(), req)
	if err != nil {
		status, _, ok := classifyBookingError(err)
		if !ok {
			s.log.ErrorContext(r.Context(), "booking form failed", "error", err)
		}
		data := s.newPageData(req)
		data.Error = chat.BookingErrorMessage(err, req, s.catalog)
		s.render(w, r, status, data)
		return
	}

	data := s.newPageData(domain.BookingRequest{})
	data.Confirmation = chat.Confirmation(appt)
	s.render(w, r, http.StatusOK, data)
}

func (s *Server) newPageData(form domain.BookingRequest) pageData {
	selected, _ := s.catalog.LookupService(form.Service)
	services := s.catalog.Services()
	opts := make([]serviceOption, len(services))
	for i, svc := range services {
		opts[i] = serviceOption{
			Value:    string(svc),
			Label:    service.DisplayService(svc),
			Selected: svc == selected,
		}
	}
	return pageData{
		Services: opts,
		ZipCodes: s.catalog.ZipCodes(),
		Form:     form,
		Greeting: chat.HelpText,
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.pages.ExecuteTemplate(w, "index.html", data); err != nil {
		s.log.ErrorContext(r.Context(), "render page", "error", err)
	}
}
