// Package chat is the conversation engine shared by the console and web
// front-ends. It turns free-text lines into intents, runs the guided
// booking dialogue, and renders booking results as text.
package chat

import (
	"slices"
	"strings"
	"unicode"
)

// Intent is what a line of input asks for outside a booking dialogue.
type Intent int

const (
	// IntentOther covers everything not recognized below; the session
	// falls through to the FAQ responder and then to help keywords.
	IntentOther Intent = iota
	IntentBook
	IntentServices
	IntentLocations
	IntentHelp
	IntentExit
)

// commands are exact one-word inputs.
var commands = map[string]Intent{
	"book":      IntentBook,
	"services":  IntentServices,
	"locations": IntentLocations,
	"help":      IntentHelp,
	"quit":      IntentExit,
	"exit":      IntentExit,
}

// bookKeywords are matched as substrings after exact commands.
var bookKeywords = []string{"book", "appointment", "schedule"}

// farewellWords end a conversation when they appear as whole words in a
// line the FAQ responder did not answer.
var farewellWords = []string{"quit", "exit", "bye", "goodbye"}

// helpKeywords are checked only after the FAQ responder declines.
var helpKeywords = []string{"help", "?"}

// cancelWords abort a booking dialogue in progress.
var cancelWords = []string{"cancel", "quit", "exit"}

// ParseIntent classifies a line of input by exact command or booking
// keyword. Farewells inside longer lines are left to isFarewell, which
// runs after the FAQ responder.
func ParseIntent(text string) Intent {
	lower := strings.ToLower(strings.TrimSpace(text))
	if in, ok := commands[lower]; ok {
		return in
	}
	if containsAny(lower, bookKeywords) {
		return IntentBook
	}
	return IntentOther
}

func isFarewell(text string) bool {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range farewellWords {
		if slices.Contains(words, w) {
			return true
		}
	}
	return false
}

func isHelp(text string) bool {
	return containsAny(strings.ToLower(text), helpKeywords)
}

func isCancel(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, w := range cancelWords {
		if lower == w {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
