// File: services/intelligence/patternParser.go
package intelligence

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"travix/models"
)

// cityAliases maps common abbreviations and airport codes to city names.
var cityAliases = map[string]string{
	"delh":      "Delhi",
	"del":       "Delhi",
	"delhi":     "Delhi",
	"mm":        "Mumbai",
	"mum":       "Mumbai",
	"mumbai":    "Mumbai",
	"bom":       "Mumbai",
	"blr":       "Bangalore",
	"bangalore": "Bangalore",
	"bengaluru": "Bangalore",
	"hyd":       "Hyderabad",
	"hyderabad": "Hyderabad",
	"chennai":   "Chennai",
	"maa":       "Chennai",
	"kolkata":   "Kolkata",
	"ccu":       "Kolkata",
	"goa":       "Goa",
	"pune":      "Pune",
	"jaipur":    "Jaipur",
}

var (
	greetPattern     = regexp.MustCompile(`^\s*(hi|hello|hey)\b[\s!.]*$`)
	cancelPattern    = regexp.MustCompile(`\b(cancel|start over|restart)\b`)
	fromPattern      = regexp.MustCompile(`\bfrom\s+([a-z]+)`)
	toPattern        = regexp.MustCompile(`\bto\s+([a-z]+)`)
	inPattern        = regexp.MustCompile(`\bin\s+([a-z]+)`)
	roundTripPattern = regexp.MustCompile(`\b(round[\s-]?trip|return journey|coming back|and back)\b`)
	groupPattern     = regexp.MustCompile(`\b(\d+)\s*(people|persons?|passengers?|travell?ers?|pax|adults?|of us)\b`)
	nonLetters       = regexp.MustCompile(`[^a-z]`)

	// A booking request needs an explicit verb and no hesitation.
	bookPattern = regexp.MustCompile(`\b(book|reserve|confirm|proceed|go ahead|yes|yep|sure)\b`)
	holdPattern = regexp.MustCompile(`\b(no|not|don'?t|do not|wait|later|hold on)\b|\?\s*$`)

	flightPattern = regexp.MustCompile(`\b(flights?|fly|flying|plane)\b`)
	trainPattern  = regexp.MustCompile(`\b(trains?|railway)\b`)
	busPattern    = regexp.MustCompile(`\b(bus|buses|coach)\b`)
	carPattern    = regexp.MustCompile(`\b(car|cab|taxi)\b`)

	luxuryPattern = regexp.MustCompile(`\b(luxury|premium)\b`)
	mediumPattern = regexp.MustCompile(`\b(medium|mid)\b`)
	budgetPattern = regexp.MustCompile(`\b(budget|cheap|cheapest|economy)\b`)

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{4}-\d{1,2}-\d{1,2}\b`),
		regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
		regexp.MustCompile(`\b\d{1,2}(st|nd|rd|th)?\s*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*(\s+\d{4})?`),
		regexp.MustCompile(`\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s*\d{1,2}(st|nd|rd|th)?(,?\s*\d{4})?`),
		regexp.MustCompile(`\bin\s+\d+\s+days?\b`),
		regexp.MustCompile(`\b\d{1,3}\s+days?\s+ago\b`),
		regexp.MustCompile(`\b(day after tomorrow|day before yesterday|tomorrow|yesterday|today|next week|next month|last week|last month)\b`),
		regexp.MustCompile(`\blast\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`),
		regexp.MustCompile(`\b(next\s+|this\s+)?(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`),
	}
)

// PatternParser is the keyword and regex parser used when no language model
// is configured or the model fails.
type PatternParser struct{}

func NewPatternParser() *PatternParser {
	return &PatternParser{}
}

func (p *PatternParser) Parse(_ context.Context, message string) (models.ParsedIntent, error) {
	msg := strings.ToLower(strings.TrimSpace(message))
	result := models.ParsedIntent{Intent: models.IntentUnknown}

	if greetPattern.MatchString(msg) {
		result.Intent = models.IntentGreet
		return result, nil
	}
	if cancelPattern.MatchString(msg) {
		result.Intent = models.IntentCancelTrip
		return result, nil
	}
	switch {
	case strings.Contains(msg, "book") && strings.Contains(msg, "hotel"):
		result.Intent = models.IntentBookHotel
	case bookPattern.MatchString(msg) && !holdPattern.MatchString(msg):
		result.Intent = models.IntentBookTrip
	}

	// A bare city name answers "where from".
	if city, ok := cityAliases[nonLetters.ReplaceAllString(msg, "")]; ok {
		result.From = city
	}
	if city := firstCity(fromPattern, msg); city != "" {
		result.From = city
	}
	if city := firstCity(toPattern, msg); city != "" {
		result.To = city
	}
	if result.Intent == models.IntentBookHotel && result.To == "" {
		result.To = firstCity(inPattern, msg)
	}

	result.Mode = matchMode(msg)
	result.Budget = matchBudget(msg)

	for _, pattern := range datePatterns {
		if d := pattern.FindString(msg); d != "" {
			result.Date = strings.TrimSpace(d)
			break
		}
	}

	if m := groupPattern.FindStringSubmatch(msg); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			result.GroupSize = &n
		}
	}
	if roundTripPattern.MatchString(msg) {
		yes := true
		result.ReturnTrip = &yes
	}
	return result, nil
}

// firstCity returns the first known city captured by pattern, so "to fly
// to goa" resolves to Goa.
func firstCity(pattern *regexp.Regexp, msg string) string {
	for _, m := range pattern.FindAllStringSubmatch(msg, -1) {
		if city, ok := cityAliases[m[1]]; ok {
			return city
		}
	}
	return ""
}

func matchMode(msg string) models.Mode {
	switch {
	case flightPattern.MatchString(msg):
		return models.ModeFlight
	case trainPattern.MatchString(msg):
		return models.ModeTrain
	case busPattern.MatchString(msg):
		return models.ModeBus
	case carPattern.MatchString(msg):
		return models.Mode("Car")
	}
	return ""
}

func matchBudget(msg string) models.Budget {
	switch {
	case luxuryPattern.MatchString(msg):
		return models.BudgetLuxury
	case mediumPattern.MatchString(msg):
		return models.BudgetMedium
	case budgetPattern.MatchString(msg):
		return models.BudgetFriendly
	}
	return ""
}
