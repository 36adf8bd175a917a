package handler

import (
	"net/http"
	"strings"

	"github.com/pkordes/csr-assistant/internal/service"
)

// ServiceItem is one entry of GET /api/services.
type ServiceItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TechnicianItem is one entry of GET /api/technicians.
type TechnicianItem struct {
	Name     string   `json:"name"`
	Services []string `json:"services"`
	ZipCodes []string `json:"zip_codes"`
}

// FAQAnswer is the body of GET /api/faq.
type FAQAnswer struct {
	Topic    string   `json:"topic"`
	Items    []string `json:"items"`
	Response string   `json:"response"`
}

// ListServices handles GET /api/services, in catalog order.
func (s *Server) ListServices(w http.ResponseWriter, _ *http.Request) {
	services := s.catalog.Services()
	out := make([]ServiceItem, len(services))
	for i, svc := range services {
		out[i] = ServiceItem{ID: string(svc), Name: service.DisplayService(svc)}
	}
	writeJSON(w, http.StatusOK, out)
}

// ListZipCodes handles GET /api/zip-codes, in catalog order.
func (s *Server) ListZipCodes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.ZipCodes())
}

// ListTechnicians handles GET /api/technicians, in declaration order.
func (s *Server) ListTechnicians(w http.ResponseWriter, _ *http.Request) {
	techs := s.catalog.Technicians()
	out := make([]TechnicianItem, len(techs))
	for i, t := range techs {
		item := TechnicianItem{Name: t.Name, Services: make([]string, len(t.Services)), ZipCodes: t.ZipCodes}
		for j, svc := range t.Services {
			item.Services[j] = string(svc)
		}
		out[i] = item
	}
	writeJSON(w, http.StatusOK, out)
}

// GetFAQ handles GET /api/faq?q=. It returns 404 when no canned answer
// matches the question.
func (s *Server) GetFAQ(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeJSON(w, http.StatusBadRequest, requestBody("query parameter q is required"))
		return
	}
	resp, ok := s.faq.Answer(q)
	if !ok {
		writeJSON(w, http.StatusNotFound, notFoundBody("no answer for that question"))
		return
	}
	writeJSON(w, http.StatusOK, FAQAnswer{Topic: string(resp.Topic), Items: resp.Items, Response: resp.Text})
}
