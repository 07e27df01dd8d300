// File: service/ai/interface.go
package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meetwise/models"
	"meetwise/utils"

	"go.uber.org/zap"
)

// Capability is the external generation collaborator. It must be assumed
// slow and unreliable; every call site carries a deterministic fallback.
type Capability interface {
	ClassifyIntent(ctx context.Context, text string) (models.Intent, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// CallTimeout bounds every outbound generation call.
const CallTimeout = 5 * time.Second

const intentPrompt = `Analyze this user message and classify the intent. Respond with only one of these intents:
- "book_appointment": User wants to book/schedule something
- "check_availability": User wants to see available times
- "modify_appointment": User wants to cancel/change/reschedule
- "general_query": Other types of queries

User message: %q

Consider these patterns:
- Booking: "book", "schedule", "set up", "arrange", "plan", "create", "add"
- Availability: "available", "free", "open", "what time", "when free", "any slot"
- Modification: "cancel", "delete", "remove", "reschedule", "move", "change"

Intent:`

// ClassifyIntent sends the constrained intent prompt and maps the reply onto
// the label set. Unexpected or empty replies surface as errors so the caller
// falls through to the rule-based classifier.
func (g *GeminiClient) ClassifyIntent(ctx context.Context, text string) (models.Intent, error) {
	reply, err := g.GenerateText(ctx, fmt.Sprintf(intentPrompt, text))
	if err != nil {
		return "", err
	}

	reply = strings.ToLower(strings.TrimSpace(reply))
	switch {
	case strings.Contains(reply, string(models.IntentBookAppointment)):
		return models.IntentBookAppointment, nil
	case strings.Contains(reply, string(models.IntentCheckAvailability)):
		return models.IntentCheckAvailability, nil
	case strings.Contains(reply, string(models.IntentModifyAppointment)):
		return models.IntentModifyAppointment, nil
	case strings.Contains(reply, string(models.IntentGeneralQuery)):
		return models.IntentGeneralQuery, nil
	}
	return "", fmt.Errorf("unexpected intent reply: %q", reply)
}

// Classifier resolves user intent, preferring the generation capability and
// degrading to keyword rules. Classify never fails.
type Classifier struct {
	Capability Capability
}

func (c *Classifier) Classify(ctx context.Context, text string) models.Intent {
	if c.Capability != nil {
		cctx, cancel := context.WithTimeout(ctx, CallTimeout)
		defer cancel()

		intent, err := c.Capability.ClassifyIntent(cctx, text)
		if err == nil {
			return intent
		}
		utils.GetLogger().Warn("intent classification via capability failed, using rules",
			zap.Error(err))
	}
	return RuleBasedIntent(text)
}

// GenerateWithFallback asks the capability for phrasing and returns the
// fallback text verbatim when the capability is missing, slow, or errors.
func GenerateWithFallback(ctx context.Context, capability Capability, prompt, fallback string) string {
	if capability == nil {
		return fallback
	}
	cctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()

	text, err := capability.GenerateText(cctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		utils.GetLogger().Warn("text generation via capability failed, using template",
			zap.Error(err))
		return fallback
	}
	return strings.TrimSpace(text)
}
