package trip

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"travix/models"
	"travix/services/dateparse"
)

const pastDateMessage = "That date has already passed. Please provide a future date for your travel."

var (
	// A message like "book a trip from Pune to Goa" while a slot is pending
	// starts a new trip instead of answering. The heuristic misfires on place
	// names that are themselves "from" or "to"; swap looksLikeFreshTrip to change it.
	freshTripPattern = regexp.MustCompile(`\b(trip|plan|travel|book|from|to)\b.*\b(from|to)\b`)
	leadingInt       = regexp.MustCompile(`^\s*(\d+)`)

	flightWord = regexp.MustCompile(`\bflights?\b`)
	trainWord  = regexp.MustCompile(`\btrains?\b`)
	busWord    = regexp.MustCompile(`\b(bus|buses)\b`)
)

// Merger folds one turn's input into the context.
type Merger struct {
	dates DateParser
	now   func() time.Time
}

func NewMerger(dates DateParser, now func() time.Time) *Merger {
	if now == nil {
		now = time.Now
	}
	return &Merger{dates: dates, now: now}
}

// Merge applies message and its parse to tc. When the turn cannot continue
// (a past date), it returns the reply to send and the context is left as it came in.
func (m *Merger) Merge(tc models.TripContext, message string, parsed models.ParsedIntent) (models.TripContext, *models.TurnResult) {
	if tc.Ask != "" {
		if looksLikeFreshTrip(message, parsed) {
			return m.adoptFreshTrip(tc, parsed)
		}
		return m.answer(tc, strings.TrimSpace(message))
	}
	return m.mergeVolunteered(tc, parsed)
}

func looksLikeFreshTrip(message string, parsed models.ParsedIntent) bool {
	return freshTripPattern.MatchString(strings.ToLower(message)) && (parsed.From != "" || parsed.To != "")
}

func (m *Merger) adoptFreshTrip(tc models.TripContext, parsed models.ParsedIntent) (models.TripContext, *models.TurnResult) {
	if parsed.Date != "" && m.isPast(parsed.Date) {
		return tc, askDateAgain(tc)
	}
	next := tc
	next.Ask = ""
	if parsed.From != "" {
		next = withFrom(next, parsed.From)
	}
	if parsed.To != "" {
		next = withTo(next, parsed.To)
	}
	if parsed.Date != "" {
		next = withDate(next, parsed.Date)
	}
	if parsed.Mode != "" {
		next = withMode(next, parsed.Mode)
	}
	if parsed.GroupSize != nil && *parsed.GroupSize > 0 {
		next = withGroupSize(next, *parsed.GroupSize)
	}
	return next, nil
}

func (m *Merger) answer(tc models.TripContext, text string) (models.TripContext, *models.TurnResult) {
	next := tc
	switch tc.Ask {
	case models.SlotFrom:
		next = withFrom(next, text)
	case models.SlotTo:
		next = withTo(next, text)
	case models.SlotDate:
		if m.isPast(text) {
			return tc, askDateAgain(tc)
		}
		next = withDate(next, text)
	case models.SlotBudget:
		next = withBudget(next, matchBudget(text))
	case models.SlotMode:
		next = withMode(next, matchMode(text))
	case models.SlotGroupSize:
		next = withGroupSize(next, parseGroupSize(text))
	case models.SlotReturnTrip:
		next = withReturnTrip(next, isAffirmative(text))
	case models.SlotReturnDate:
		if m.isPast(text) {
			return tc, askAgain(tc, models.SlotReturnDate)
		}
		next = withReturnDate(next, text)
	}
	next.Ask = ""
	return next, nil
}

func (m *Merger) mergeVolunteered(tc models.TripContext, parsed models.ParsedIntent) (models.TripContext, *models.TurnResult) {
	if parsed.Date != "" && m.isPast(parsed.Date) {
		return tc, askDateAgain(tc)
	}

	next := tc
	if parsed.From != "" && !next.IsHotelOnly {
		next = withFrom(next, parsed.From)
		if parsed.To != "" {
			next = withTo(next, parsed.To)
		}
	}
	if parsed.To != "" && next.To == "" {
		next = withTo(next, parsed.To)
	}
	if parsed.Date != "" {
		next = withDate(next, parsed.Date)
	}
	if parsed.Budget != "" {
		next = withBudget(next, parsed.Budget)
	}
	if parsed.GroupSize != nil && *parsed.GroupSize > 0 {
		next = withGroupSize(next, *parsed.GroupSize)
	}
	if parsed.Mode != "" && !next.IsHotelOnly {
		next = withMode(next, parsed.Mode)
	}
	if parsed.ReturnTrip != nil {
		next = withReturnTrip(next, *parsed.ReturnTrip)
	}
	if parsed.ReturnDate != "" {
		if m.isPast(parsed.ReturnDate) {
			return tc, askAgain(tc, models.SlotReturnDate)
		}
		next = withReturnDate(next, parsed.ReturnDate)
	}
	return next, nil
}

// isPast reports whether text is a recognisable date before today. Text the
// date parser does not understand is not rejected.
func (m *Merger) isPast(text string) bool {
	now := m.now()
	t, ok := m.dates.Parse(text, now)
	return ok && dateparse.IsPast(t, now)
}

func askDateAgain(tc models.TripContext) *models.TurnResult {
	return askAgain(tc, models.SlotDate)
}

func askAgain(tc models.TripContext, slot models.Slot) *models.TurnResult {
	return &models.TurnResult{
		AssistantFollowUp: true,
		Ask:               slot,
		Message:           pastDateMessage,
		Context:           tc.WithAsk(slot),
	}
}

func matchBudget(text string) models.Budget {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "luxury"):
		return models.BudgetLuxury
	case strings.Contains(lower, "medium"):
		return models.BudgetMedium
	case strings.Contains(lower, "budget"):
		return models.BudgetFriendly
	}
	return models.Budget(strings.TrimSpace(text))
}

func matchMode(text string) models.Mode {
	lower := strings.ToLower(text)
	switch {
	case flightWord.MatchString(lower):
		return models.ModeFlight
	case trainWord.MatchString(lower):
		return models.ModeTrain
	case busWord.MatchString(lower):
		return models.ModeBus
	}
	return models.Mode(strings.TrimSpace(text))
}

// parseGroupSize reads the leading integer of text, defaulting to one traveler.
func parseGroupSize(text string) int {
	m := leadingInt.FindStringSubmatch(text)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func isAffirmative(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range []string{"yes", "yeah", "yep", "sure", "round", "return"} {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
