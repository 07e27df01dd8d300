package conversation

import (
	"context"
	"time"

	"meetwise/models"
	"meetwise/services/availability"
	"meetwise/services/calendar"
	ai "meetwise/services/intelligence"
	"meetwise/services/temporal"
	"meetwise/utils"

	"go.uber.org/zap"
)

// stage identifies a node of the turn pipeline.
type stage string

const (
	stageCheckAvailability stage = "check_availability"
	stageGenerateResponse  stage = "generate_response"
)

// defaultLookaheadDays is searched when a turn carries no time and the
// session has no sticky spec either.
const defaultLookaheadDays = 7

// Orchestrator runs the four-stage turn pipeline: parse intent, parse time,
// optionally check availability, generate response. One call per user turn;
// the caller serializes turns per session.
type Orchestrator struct {
	Calendar   calendar.Provider
	Capability ai.Capability
	Classifier *ai.Classifier
}

func NewOrchestrator(provider calendar.Provider, capability ai.Capability) *Orchestrator {
	return &Orchestrator{
		Calendar:   provider,
		Capability: capability,
		Classifier: &ai.Classifier{Capability: capability},
	}
}

// turnState carries everything one pipeline execution accumulates.
type turnState struct {
	text    string
	loc     *time.Location
	now     time.Time
	tzName  string
	history []models.ChatMessage

	intent       models.Intent
	spec         *models.TemporalSpec
	slots        []models.FreeSlot
	sessionCtx   *models.ConversationContext
	needsConfirm bool
	confirmation *models.ConfirmationPayload
}

// ProcessTurn executes one full turn. It never fails: internal errors are
// captured into the context and surface as an apologetic, well-formed
// response, and the history always grows by the user message plus one
// assistant reply.
func (o *Orchestrator) ProcessTurn(ctx context.Context, in models.TurnInput) models.TurnOutput {
	logger := utils.GetLogger()

	state := &turnState{
		text:       in.Text,
		tzName:     in.UserTimezone,
		history:    append(append([]models.ChatMessage{}, in.History...), models.ChatMessage{Role: "user", Content: in.Text}),
		sessionCtx: in.Context,
	}
	if state.sessionCtx == nil {
		state.sessionCtx = &models.ConversationContext{}
	}
	// Past/busy flags and errors are signals of this turn, not of the
	// session; only the sticky spec survives from previous turns.
	state.sessionCtx.Error = ""
	state.sessionCtx.RequestedSlotPast = false
	state.sessionCtx.RequestedSlotBusy = false

	loc, err := time.LoadLocation(in.UserTimezone)
	if err != nil {
		logger.Warn("invalid user timezone", zap.String("timezone", in.UserTimezone), zap.Error(err))
		state.sessionCtx.Error = "unrecognized timezone " + in.UserTimezone
		loc = time.UTC
	}
	state.loc = loc
	state.now = time.Now().In(loc)

	o.parseIntent(ctx, state)
	o.parseTime(state)

	if decideNext(state) == stageCheckAvailability {
		o.checkAvailability(ctx, state)
	}
	response := o.compose(ctx, state)

	state.history = append(state.history, models.ChatMessage{Role: "assistant", Content: response})
	logger.Info("turn processed",
		zap.String("intent", string(state.intent)),
		zap.Bool("specPresent", state.spec != nil),
		zap.Int("slots", len(state.slots)),
		zap.Bool("needsConfirmation", state.needsConfirm))

	return models.TurnOutput{
		History:           state.history,
		NeedsConfirmation: state.needsConfirm,
		Confirmation:      state.confirmation,
		AvailableSlots:    state.slots,
		Context:           state.sessionCtx,
	}
}

// parseIntent classifies the turn; the classifier itself never fails.
func (o *Orchestrator) parseIntent(ctx context.Context, s *turnState) {
	s.intent = o.Classifier.Classify(ctx, s.text)
}

// parseTime resolves the turn's temporal expression. A turn that produces a
// spec overwrites the sticky value; a turn that produces none reuses it.
func (o *Orchestrator) parseTime(s *turnState) {
	if spec := temporal.Resolve(s.text, s.now, s.loc); spec != nil {
		s.spec = spec
		s.sessionCtx.LastDiscussedSpec = spec
		return
	}
	if s.sessionCtx.LastDiscussedSpec != nil {
		s.spec = s.sessionCtx.LastDiscussedSpec
	}
}

// decideNext is the branch table after parseTime. Pure function of the
// accumulated state.
func decideNext(s *turnState) stage {
	if s.sessionCtx.Error != "" {
		return stageGenerateResponse
	}

	switch s.intent {
	case models.IntentBookAppointment:
		switch {
		case s.spec != nil && len(s.slots) > 0:
			// Time known and already confirmed available: propose it.
			return stageGenerateResponse
		case s.spec != nil:
			return stageCheckAvailability
		default:
			// Intent is to book but no time was given: ask for one.
			return stageGenerateResponse
		}
	case models.IntentCheckAvailability:
		return stageCheckAvailability
	}
	return stageGenerateResponse
}

// checkAvailability fetches busy time from the calendar provider and runs
// the availability engine over the spec's window. Provider failures are
// captured into the context and never propagate.
func (o *Orchestrator) checkAvailability(ctx context.Context, s *turnState) {
	if s.spec == nil {
		window := models.Window{Start: s.now, End: s.now.AddDate(0, 0, defaultLookaheadDays)}
		busy, err := o.Calendar.GetBusyIntervals(ctx, window)
		if err != nil {
			s.fail("calendar lookup failed", err)
			return
		}
		duration := time.Duration(temporal.DefaultDurationMinutes) * time.Minute
		s.slots = availability.FreeSlots(busy, window, duration, s.now)
		return
	}

	spec := s.spec
	duration := spec.Duration()

	switch {
	case spec.MultiDay():
		busy, err := o.Calendar.GetBusyIntervals(ctx, models.Window{Start: spec.Start, End: spec.End})
		if err != nil {
			s.fail("calendar lookup failed", err)
			return
		}
		s.slots = availability.FreeSlotsPerDay(busy, *spec, duration, s.now)

	case spec.IsRange || spec.IsFullDay:
		window := models.Window{Start: spec.Start, End: spec.End}
		busy, err := o.Calendar.GetBusyIntervals(ctx, window)
		if err != nil {
			s.fail("calendar lookup failed", err)
			return
		}
		s.slots = availability.FreeSlots(busy, window, duration, s.now)

	default:
		start := spec.Start
		end := start.Add(duration)

		if !start.After(s.now) {
			s.sessionCtx.RequestedSlotPast = true
			s.slots = nil
			return
		}

		free, err := o.Calendar.IsPointAvailable(ctx, start, end)
		if err != nil {
			s.fail("calendar lookup failed", err)
			return
		}
		if free {
			s.slots = []models.FreeSlot{{Start: start, End: end}}
			return
		}

		// The requested point is taken: offer the rest of that day.
		s.sessionCtx.RequestedSlotBusy = true
		dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, s.loc)
		dayWindow := models.Window{Start: dayStart, End: dayStart.AddDate(0, 0, 1)}

		busy, err := o.Calendar.GetBusyIntervals(ctx, dayWindow)
		if err != nil {
			s.fail("calendar lookup failed", err)
			return
		}
		alternatives := availability.FreeSlots(busy, dayWindow, duration, s.now)
		if len(alternatives) > availability.MaxAlternatives {
			alternatives = alternatives[:availability.MaxAlternatives]
		}
		s.slots = alternatives
	}
}

func (s *turnState) fail(msg string, err error) {
	utils.GetLogger().Error(msg, zap.Error(err))
	s.sessionCtx.Error = msg
	s.slots = nil
}
