// File: service/ai/classifier.go
package ai

import (
	"regexp"
	"strings"

	"meetwise/models"
)

// Keyword families for the deterministic classifier.
var (
	bookingVerbRe  = regexp.MustCompile(`\b(book|schedule|arrange|set\s+up|create|add|plan)\b`)
	eventNounRe    = regexp.MustCompile(`\b(meeting|appointment|call|event)\b`)
	timeWordRe     = regexp.MustCompile(`\b(today|tomorrow|tonight|next\s+week|this\s+week|monday|tuesday|wednesday|thursday|friday|saturday|sunday|\d{1,2}(:\d{2})?\s*(am|pm)?)\b`)
	availabilityRe = regexp.MustCompile(`\b(available|availability|free|open|openings?|slots?)\b|what\s+time|when.*free|any.*slot`)
	modificationRe = regexp.MustCompile(`\b(cancel|delete|remove|reschedule|move|change|update)\b`)
)

// RuleBasedIntent classifies a message with keyword families alone. When
// booking verbs co-occur with availability words the availability reading
// wins; the default is a general query.
func RuleBasedIntent(text string) models.Intent {
	t := strings.ToLower(text)

	booking := bookingVerbRe.MatchString(t) ||
		(eventNounRe.MatchString(t) && timeWordRe.MatchString(t))
	available := availabilityRe.MatchString(t)

	switch {
	case booking && available:
		return models.IntentCheckAvailability
	case booking:
		return models.IntentBookAppointment
	case available:
		return models.IntentCheckAvailability
	case modificationRe.MatchString(t):
		return models.IntentModifyAppointment
	}
	return models.IntentGeneralQuery
}
