// File: service/ai/classifier_test.go
package ai

import (
	"context"
	"errors"
	"testing"

	"meetwise/models"

	"github.com/stretchr/testify/assert"
)

func TestRuleBasedIntent(t *testing.T) {
	cases := []struct {
		text string
		want models.Intent
	}{
		{"book a meeting tomorrow", models.IntentBookAppointment},
		{"schedule a call with the team", models.IntentBookAppointment},
		{"please set up an appointment", models.IntentBookAppointment},
		{"what times are available tomorrow?", models.IntentCheckAvailability},
		{"when am I free next week", models.IntentCheckAvailability},
		{"any slots on friday?", models.IntentCheckAvailability},
		{"cancel my appointment", models.IntentModifyAppointment},
		{"I need to change my booking time", models.IntentModifyAppointment},
		{"what's the weather like", models.IntentGeneralQuery},
		{"hello", models.IntentGeneralQuery},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RuleBasedIntent(tc.text), "text: %q", tc.text)
	}
}

func TestRuleBasedIntent_AvailabilityWinsOverBooking(t *testing.T) {
	// Booking verbs alongside availability wording read as an availability
	// check, not a booking.
	assert.Equal(t, models.IntentCheckAvailability,
		RuleBasedIntent("book me something when I'm free tomorrow"))
	assert.Equal(t, models.IntentCheckAvailability,
		RuleBasedIntent("schedule whatever slot is open"))
}

// stubCapability scripts the generation collaborator for classifier tests.
type stubCapability struct {
	intent    models.Intent
	intentErr error
	text      string
	textErr   error
}

func (s *stubCapability) ClassifyIntent(ctx context.Context, text string) (models.Intent, error) {
	return s.intent, s.intentErr
}

func (s *stubCapability) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.text, s.textErr
}

func TestClassify_PrefersCapability(t *testing.T) {
	c := &Classifier{Capability: &stubCapability{intent: models.IntentModifyAppointment}}
	// The capability's answer wins even when the rules would say otherwise.
	assert.Equal(t, models.IntentModifyAppointment, c.Classify(context.Background(), "book a meeting tomorrow"))
}

func TestClassify_FallsBackToRulesOnError(t *testing.T) {
	c := &Classifier{Capability: &stubCapability{intentErr: errors.New("quota exceeded")}}
	assert.Equal(t, models.IntentBookAppointment, c.Classify(context.Background(), "book a meeting tomorrow"))
}

func TestClassify_NilCapabilityUsesRules(t *testing.T) {
	c := &Classifier{}
	assert.Equal(t, models.IntentCheckAvailability, c.Classify(context.Background(), "what slots are open friday"))
}

func TestGenerateWithFallback(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "template", GenerateWithFallback(ctx, nil, "prompt", "template"))

	failing := &stubCapability{textErr: errors.New("timeout")}
	assert.Equal(t, "template", GenerateWithFallback(ctx, failing, "prompt", "template"))

	blank := &stubCapability{text: "   "}
	assert.Equal(t, "template", GenerateWithFallback(ctx, blank, "prompt", "template"))

	ok := &stubCapability{text: "  generated reply\n"}
	assert.Equal(t, "generated reply", GenerateWithFallback(ctx, ok, "prompt", "template"))
}
