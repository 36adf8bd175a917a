package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pkordes/csr-assistant/internal/domain"
)

// FAQTopic names what an FAQ response is about.
type FAQTopic string

const (
	TopicServices FAQTopic = "services"
	TopicZipCodes FAQTopic = "zip_codes"
)

// FAQResponse is a canned answer. Items is the exact catalog list in
// catalog order; Text is the sentence shown to the customer.
type FAQResponse struct {
	Topic FAQTopic
	Items []string
	Text  string
}

// faqRule is one entry of the ordered rule table: if any keyword occurs in
// the lowercased input, respond builds the answer.
type faqRule struct {
	keywords []string
	respond  func(*domain.Catalog) FAQResponse
}

// faqRules is evaluated top to bottom; the first match wins.
var faqRules = []faqRule{
	{
		keywords: []string{"service", "offer", "what do you", "help with"},
		respond:  ServicesResponse,
	},
	{
		keywords: []string{"located", "location", "where", "zip", "area", "zone"},
		respond:  ZipCodesResponse,
	},
}

// FAQService answers fixed-form questions from the catalog. It holds no
// mutable state.
type FAQService struct {
	catalog *domain.Catalog
}

// NewFAQService constructs an FAQService over catalog.
func NewFAQService(catalog *domain.Catalog) *FAQService {
	return &FAQService{catalog: catalog}
}

// Answer matches text case-insensitively against the rule table. The
// second result is false when no rule matches; the caller chooses the
// fallback text.
func (s *FAQService) Answer(text string) (FAQResponse, bool) {
	lower := strings.ToLower(text)
	for _, rule := range faqRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.respond(s.catalog), true
			}
		}
	}
	return FAQResponse{}, false
}

// Services returns the services response directly, for the explicit
// "services" command.
func (s *FAQService) Services() FAQResponse {
	return ServicesResponse(s.catalog)
}

// ZipCodes returns the zip code response directly, for the explicit
// "locations" command.
func (s *FAQService) ZipCodes() FAQResponse {
	return ZipCodesResponse(s.catalog)
}

// ServicesResponse lists the catalog's services.
func ServicesResponse(c *domain.Catalog) FAQResponse {
	items := c.ServiceNames()
	return FAQResponse{
		Topic: TopicServices,
		Items: items,
		Text:  "We offer the following services:\n  " + strings.Join(DisplayServices(c.Services()), ", "),
	}
}

// ZipCodesResponse lists the catalog's zip codes.
func ZipCodesResponse(c *domain.Catalog) FAQResponse {
	items := c.ZipCodes()
	return FAQResponse{
		Topic: TopicZipCodes,
		Items: items,
		Text:  "We serve the following zip codes:\n  " + strings.Join(items, ", "),
	}
}

// DisplayService renders a service for people, e.g. "plumbing" → "Plumbing".
// Casers are stateful, so each call builds its own.
func DisplayService(s domain.Service) string {
	return cases.Title(language.English).String(string(s))
}

// DisplayServices applies DisplayService to each element.
func DisplayServices(services []domain.Service) []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = DisplayService(s)
	}
	return out
}
