package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pkordes/csr-assistant/internal/domain"
	"github.com/pkordes/csr-assistant/internal/service"
)

// Booker books appointments. *service.BookingService satisfies it.
type Booker interface {
	Book(ctx context.Context, req domain.BookingRequest) (domain.Appointment, error)
}

// Answerer answers FAQ questions. *service.FAQService satisfies it.
type Answerer interface {
	Answer(text string) (service.FAQResponse, bool)
	Services() service.FAQResponse
	ZipCodes() service.FAQResponse
}

// Bot holds what every conversation needs. It is stateless; per-user
// state lives in Session.
type Bot struct {
	catalog *domain.Catalog
	booker  Booker
	faq     Answerer
}

// NewBot constructs a Bot.
func NewBot(catalog *domain.Catalog, booker Booker, faq Answerer) *Bot {
	return &Bot{catalog: catalog, booker: booker, faq: faq}
}

// NewSession starts a fresh conversation.
func (b *Bot) NewSession() *Session {
	return &Session{bot: b}
}

// Reply is the assistant's answer to one line of input. End is set when
// the customer asked to leave.
type Reply struct {
	Text string
	End  bool
}

type step int

const (
	stepName step = iota
	stepService
	stepZip
	stepDate
	stepTime
)

// draft is a booking dialogue in progress.
type draft struct {
	step step
	req  domain.BookingRequest
}

// Session is one customer's conversation. Handle may be called from
// several goroutines but input is processed one line at a time.
type Session struct {
	bot *Bot

	mu    sync.Mutex
	draft *draft
}

// Booking reports whether a booking dialogue is in progress.
func (s *Session) Booking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft != nil
}

// Handle processes one line of input and returns the reply. Blank input
// yields an empty reply.
func (s *Session) Handle(ctx context.Context, input string) Reply {
	s.mu.Lock()
	defer s.mu.Unlock()

	text := strings.TrimSpace(input)
	if text == "" {
		return Reply{}
	}
	if s.draft != nil {
		return Reply{Text: s.continueBooking(ctx, text)}
	}

	switch ParseIntent(text) {
	case IntentBook:
		s.draft = &draft{step: stepName}
		return Reply{Text: "Let's book a two-hour appointment!\n\nWhat is your name?"}
	case IntentServices:
		return Reply{Text: s.bot.faq.Services().Text}
	case IntentLocations:
		return Reply{Text: s.bot.faq.ZipCodes().Text}
	case IntentHelp:
		return Reply{Text: HelpText}
	case IntentExit:
		return Reply{Text: Farewell, End: true}
	}

	if resp, ok := s.bot.faq.Answer(text); ok {
		return Reply{Text: resp.Text}
	}
	if isFarewell(text) {
		return Reply{Text: Farewell, End: true}
	}
	if isHelp(text) {
		return Reply{Text: HelpText}
	}
	return Reply{Text: NotUnderstood}
}

// continueBooking advances the dialogue by one step. Invalid answers keep
// the dialogue on the same step and echo the valid choices. Must be called
// with s.mu held.
func (s *Session) continueBooking(ctx context.Context, text string) string {
	if isCancel(text) {
		s.draft = nil
		return "Booking cancelled.\n\n" + HelpText
	}

	c := s.bot.catalog
	d := s.draft
	switch d.step {
	case stepName:
		d.req.CustomerName = text
		d.step = stepService
		return fmt.Sprintf("Nice to meet you, %s!\n\nAvailable services: %s\n\nWhat service do you need?",
			text, servicesList(c))

	case stepService:
		svc, ok := c.LookupService(text)
		if !ok {
			return fmt.Sprintf("Sorry, '%s' is not a valid service.\n\nAvailable services: %s", text, servicesList(c))
		}
		d.req.Service = string(svc)
		d.step = stepZip
		return fmt.Sprintf("We serve: %s\n\nWhat is your zip code?", zipList(c))

	case stepZip:
		if !c.Serves(text) {
			return fmt.Sprintf("Sorry, we don't serve '%s'.\n\nWe serve: %s", text, zipList(c))
		}
		d.req.ZipCode = text
		d.step = stepDate
		return fmt.Sprintf("What date would you like? (%s)", DateExample)

	case stepDate:
		if _, err := domain.ParseDate(text); err != nil {
			return fmt.Sprintf("Could not parse '%s'.\n\nPlease use a format like '2025-02-15' or 'February 15, 2025'.", text)
		}
		d.req.Date = text
		d.step = stepTime
		return fmt.Sprintf("What time would you like? (%s)", TimeExample)

	case stepTime:
		if _, err := domain.ParseTime(text); err != nil {
			return fmt.Sprintf("Could not parse '%s'.\n\nPlease use a format like '10:00 AM' or '2pm'.", text)
		}
		d.req.Time = text
		s.draft = nil

		appt, err := s.bot.booker.Book(ctx, d.req)
		if err != nil {
			return BookingErrorMessage(err, d.req, c) + "\n\nType 'book' to try again."
		}
		return Confirmation(appt)
	}

	s.draft = nil
	return "Something went wrong. Type 'book' to start over."
}
