package trip

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"travix/models"
)

const (
	fallbackMessage  = "I'd be happy to help you further. Could you please provide more details about what you'd like to do?"
	cancelledMessage = "No problem, I've cleared your trip plan. Where would you like to go next?"
	chatErrorMessage = "I'm having trouble answering that right now. Could you rephrase your question?"
	itinerarySuffix  = "\n\nReady to book? I can help you book flights, trains, buses and hotels for this trip. Just let me know!"
)

var (
	itineraryPattern = regexp.MustCompile(`(?i)(make|create|plan|suggest|generate).*?(trip|itinerary|plan)`)
	daysPattern      = regexp.MustCompile(`(?i)(\d+)\s+days?`)
	interestsPattern = regexp.MustCompile(`(?i)(?:see|visit|experience|want)\s+([^\d]+?)(?:\s+for|$)`)
)

// DefaultTripService is the slot-filling planner. It keeps no state between
// turns; everything it knows arrives in the request context.
type DefaultTripService struct {
	deps   Dependencies
	merger *Merger
	logger *zap.Logger
}

func NewTripService(deps Dependencies, logger *zap.Logger) *DefaultTripService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Jitter == nil {
		deps.Jitter = defaultJitter
	}
	if deps.Currency == "" {
		deps.Currency = "INR"
	}
	return &DefaultTripService{
		deps:   deps,
		merger: NewMerger(deps.Dates, deps.Clock),
		logger: logger,
	}
}

// ProcessTurn folds one message (or offer selection) into the context and
// decides the single next step. Only malformed requests return an error;
// every conversational outcome, failures included, is a TurnResult.
func (s *DefaultTripService) ProcessTurn(ctx context.Context, req models.TurnRequest) (*models.TurnResult, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" && req.Selection == nil {
		return nil, ErrEmptyMessage
	}
	if err := req.Context.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContext, err)
	}

	res := s.processTurn(ctx, req, message)
	s.deps.Metrics.observeTurn(res)
	return res, nil
}

func (s *DefaultTripService) processTurn(ctx context.Context, req models.TurnRequest, message string) *models.TurnResult {
	tc, sel := req.Context, req.Selection

	// 1. Explicit selections skip field merging.
	if sel != nil {
		next, err := s.merger.Select(tc, *sel)
		if err != nil {
			s.logger.Info("Rejected offer selection", zap.String("kind", string(sel.Kind)), zap.Error(err))
			return failure(tc, selectionMessage(err))
		}
		intent := models.IntentUnknown
		if message != "" {
			intent = s.parse(ctx, message).Intent
		}
		return s.decide(ctx, next, intent)
	}

	// 2. NLU.
	parsed := s.parse(ctx, message)
	answering := tc.Ask != ""

	// 3. Conversational intents that never touch the slots.
	if !answering {
		switch parsed.Intent {
		case models.IntentCancelTrip:
			return &models.TurnResult{Success: true, Message: cancelledMessage, Context: models.TripContext{}}
		case models.IntentGeneralQuery:
			if s.deps.Assistant != nil {
				return s.chat(ctx, tc, message, req.History)
			}
		}
	}
	if res := s.itinerary(ctx, tc, message, parsed); res != nil {
		return res
	}

	// 4. Hotel-only detection, then merge.
	if parsed.Intent == models.IntentBookHotel || strings.Contains(strings.ToLower(message), "book hotel") {
		tc = markHotelOnly(tc)
	}
	merged, early := s.merger.Merge(tc, message, parsed)
	if early != nil {
		s.logger.Debug("Rejected past travel date", zap.String("ask", string(early.Ask)))
		return early
	}

	// 5. Decision chain.
	return s.decide(ctx, merged, parsed.Intent)
}

// decide picks the next step for a merged context. The first matching rule wins.
func (s *DefaultTripService) decide(ctx context.Context, tc models.TripContext, intent models.Intent) *models.TurnResult {
	if slot, ok := NextMissingSlot(tc); ok {
		return askSlot(tc, slot, nil)
	}
	if !tc.IsHotelOnly && tc.ReturnTrip && tc.ReturnDate == "" {
		return askSlot(tc, models.SlotReturnDate, nil)
	}
	if tc.IsHotelOnly && tc.Hotel == nil {
		return s.searchHotels(ctx, tc)
	}

	_, hasOutbound := tc.Outbound()
	if !tc.IsHotelOnly {
		switch {
		case !hasOutbound:
			return s.searchOutbound(ctx, tc)
		case tc.NeedsReturnLeg():
			return s.searchReturn(ctx, tc)
		case tc.Budget != "" && tc.Hotel == nil:
			return s.searchHotels(ctx, tc)
		}
	}

	// Booking needs an explicit request against a plan the user has seen.
	if intent == models.IntentBookTrip && planReady(tc) && tc.LastPlannedTrip != nil {
		return s.book(ctx, tc)
	}
	if planReady(tc) {
		return s.finalize(ctx, tc)
	}
	return &models.TurnResult{Success: false, Message: fallbackMessage, Context: tc}
}

func (s *DefaultTripService) parse(ctx context.Context, message string) models.ParsedIntent {
	done := s.deps.Metrics.track("nlu")
	parsed, err := s.deps.Parser.Parse(ctx, message)
	done(err)
	if err != nil {
		s.logger.Error("Intent parsing failed", zap.Error(err))
		return models.ParsedIntent{Intent: models.IntentUnknown}
	}
	if !parsed.Intent.Valid() {
		parsed.Intent = models.IntentUnknown
	}
	return parsed
}

func (s *DefaultTripService) chat(ctx context.Context, tc models.TripContext, message string, history []models.ChatMessage) *models.TurnResult {
	done := s.deps.Metrics.track("assistant")
	reply, err := s.deps.Assistant.Chat(ctx, message, history)
	done(err)
	if err != nil {
		s.logger.Error("Assistant chat failed", zap.Error(err))
		return failure(tc, chatErrorMessage)
	}
	return &models.TurnResult{Success: true, Message: reply, Context: tc}
}

// itinerary answers "plan a 3 days trip from X to Y" with a generated
// day-by-day plan. It returns nil when the message is not such a request or
// the assistant fails, so the turn continues as a booking turn.
func (s *DefaultTripService) itinerary(ctx context.Context, tc models.TripContext, message string, parsed models.ParsedIntent) *models.TurnResult {
	if s.deps.Assistant == nil || !itineraryPattern.MatchString(message) {
		return nil
	}
	m := daysPattern.FindStringSubmatch(message)
	if m == nil {
		return nil
	}
	days, err := strconv.Atoi(m[1])
	if err != nil || days < 1 {
		return nil
	}
	from, to := firstNonEmpty(parsed.From, tc.From), firstNonEmpty(parsed.To, tc.To)
	if from == "" || to == "" {
		return nil
	}

	req := models.ItineraryRequest{From: from, To: to, Days: days}
	if im := interestsPattern.FindStringSubmatch(message); im != nil {
		req.Interests = strings.TrimSpace(im[1])
	}
	done := s.deps.Metrics.track("assistant")
	plan, err := s.deps.Assistant.Itinerary(ctx, req)
	done(err)
	if err != nil {
		s.logger.Error("Itinerary generation failed", zap.String("to", to), zap.Error(err))
		return nil
	}
	next := withTo(withFrom(tc, from), to)
	return &models.TurnResult{Success: true, Message: plan + itinerarySuffix, Context: next}
}

func (s *DefaultTripService) finalize(ctx context.Context, tc models.TripContext) *models.TurnResult {
	plan, err := Finalize(ctx, tc, s.cabs(), s.deps.Jitter, s.deps.Currency)
	if err != nil {
		s.logger.Error("Finalizing trip plan failed", zap.Error(err))
		return failure(tc, "I'm experiencing difficulty finalizing your trip details. Please try again in a moment.")
	}

	next := tc
	next.LastPlannedTrip = &plan
	msg := "Perfect! Your complete itinerary is ready with real-time pricing. Please review your trip summary and proceed to secure booking."
	if tc.IsHotelOnly {
		msg = fmt.Sprintf("Perfect! Your hotel booking is ready: %s in %s for %s. Total: %s. Ready to confirm your booking?",
			tc.Hotel.Name, tc.To, guests(plan.GroupSize), formatAmount(plan.Currency, plan.Total))
	}
	return &models.TurnResult{
		Success: true,
		Message: msg,
		Data:    &models.TurnData{Plan: &plan},
		Context: next,
	}
}

// cabs wraps the cab pricer so its calls are timed and logged.
func (s *DefaultTripService) cabs() CabPricer {
	if s.deps.Cabs == nil {
		return nil
	}
	return trackedCabs{next: s.deps.Cabs, metrics: s.deps.Metrics, logger: s.logger}
}

type trackedCabs struct {
	next    CabPricer
	metrics *Metrics
	logger  *zap.Logger
}

func (t trackedCabs) Quote(ctx context.Context, origin, destination string) ([]models.CabQuote, error) {
	done := t.metrics.track("cabs")
	quotes, err := t.next.Quote(ctx, origin, destination)
	done(err)
	if err != nil {
		t.logger.Warn("Cab pricing failed, using fallback fare",
			zap.String("origin", origin), zap.String("destination", destination), zap.Error(err))
	}
	return quotes, err
}

// planReady reports whether every selection a plan needs has been made.
func planReady(tc models.TripContext) bool {
	if tc.Hotel == nil || tc.GroupSize < 1 {
		return false
	}
	if tc.IsHotelOnly {
		return true
	}
	_, ok := tc.Outbound()
	return ok && !tc.NeedsReturnLeg()
}

// markHotelOnly switches a trip to a stay without transport, dropping a
// pending transport question. A trip with a chosen outbound leg stays a full
// trip; asking for a hotel there means adding one.
func markHotelOnly(tc models.TripContext) models.TripContext {
	if tc.IsHotelOnly {
		return tc
	}
	if _, ok := tc.Outbound(); ok {
		return tc
	}
	tc.IsHotelOnly = true
	tc.ReturnTrip = false
	tc.ReturnDate = ""
	if tc.Ask == models.SlotFrom || tc.Ask == models.SlotMode || tc.Ask == models.SlotReturnTrip || tc.Ask == models.SlotReturnDate {
		tc.Ask = ""
	}
	return dropPlan(dropLegs(tc))
}

func askSlot(tc models.TripContext, slot models.Slot, data *models.TurnData) *models.TurnResult {
	return &models.TurnResult{
		Success:           data != nil,
		AssistantFollowUp: true,
		Ask:               slot,
		Message:           Prompt(slot),
		Data:              data,
		Context:           tc.WithAsk(slot),
	}
}

func failure(tc models.TripContext, msg string) *models.TurnResult {
	return &models.TurnResult{Success: false, Message: msg, Context: tc}
}

func selectionMessage(err error) string {
	if se, ok := err.(*SelectionError); ok {
		return "I couldn't use that selection: " + se.Message + "."
	}
	return "I couldn't use that selection. Please pick one of the options shown."
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func guests(n int) string {
	if n == 1 {
		return "1 guest"
	}
	return strconv.Itoa(n) + " guests"
}
