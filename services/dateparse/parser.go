// Package dateparse turns the travel dates people type in chat ("tomorrow",
// "25th December", "18aug", "2026-08-18") into calendar days.
package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// APILayout is the date format vendor search APIs expect.
const APILayout = "2006-01-02"

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
}

const monthAlt = `(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`

var (
	reOrdinal  = regexp.MustCompile(`\b(\d{1,2})(st|nd|rd|th)\b`)
	reISO      = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	reNumeric  = regexp.MustCompile(`\b(\d{1,2})[/.-](\d{1,2})[/.-](\d{2,4})\b`)
	reDayMonth = regexp.MustCompile(`\b(\d{1,2})\s*(?:of\s+)?` + monthAlt + `(?:\s+(\d{4}))?\b`)
	reMonthDay = regexp.MustCompile(`\b` + monthAlt + `\s+(\d{1,2})(?:\s+(\d{4}))?\b`)
	reInDays   = regexp.MustCompile(`\bin\s+(\d{1,3})\s+days?\b`)
	reWeekday  = regexp.MustCompile(`\b(next\s+|this\s+|on\s+)?(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)

	reDaysAgo     = regexp.MustCompile(`\b(\d{1,3})\s+days?\s+ago\b`)
	reLastWeekday = regexp.MustCompile(`\blast\s+(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)

	reExactISO = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	reExactDMY = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4}|\d{2})$`)
)

// Parser implements the date collaborator used by the trip planner.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

// Parse resolves text relative to now. The result is midnight in now's location.
func (p *Parser) Parse(text string, now time.Time) (time.Time, bool) {
	return Parse(text, now)
}

// FormatForAPI renders t in APILayout.
func (p *Parser) FormatForAPI(t time.Time) string {
	return t.Format(APILayout)
}

// Parse resolves text relative to now. Dates written without a year roll
// forward to their next occurrence, so "5 january" typed in October means
// next January. Explicit years are kept even when they are in the past.
func Parse(text string, now time.Time) (time.Time, bool) {
	s := normalize(text)
	if s == "" {
		return time.Time{}, false
	}
	today := midnight(now)

	switch {
	case strings.Contains(s, "day before yesterday"):
		return today.AddDate(0, 0, -2), true
	case strings.Contains(s, "yesterday"):
		return today.AddDate(0, 0, -1), true
	case strings.Contains(s, "last week"):
		return today.AddDate(0, 0, -7), true
	case strings.Contains(s, "last month"):
		return today.AddDate(0, -1, 0), true
	case strings.Contains(s, "day after tomorrow"):
		return today.AddDate(0, 0, 2), true
	case strings.Contains(s, "tomorrow"):
		return today.AddDate(0, 0, 1), true
	case strings.Contains(s, "today") || strings.Contains(s, "tonight"):
		return today, true
	case strings.Contains(s, "next week"):
		return today.AddDate(0, 0, 7), true
	case strings.Contains(s, "next month"):
		return today.AddDate(0, 1, 0), true
	}

	if m := reDaysAgo.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return today.AddDate(0, 0, -n), true
	}
	if m := reLastWeekday.FindStringSubmatch(s); m != nil {
		back := (int(today.Weekday()) - int(weekdays[m[1]]) + 7) % 7
		if back == 0 {
			back = 7
		}
		return today.AddDate(0, 0, -back), true
	}

	if m := reInDays.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return today.AddDate(0, 0, n), true
	}

	if m := reISO.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		return build(y, time.Month(mo), d, now.Location())
	}

	if m := reNumeric.FindStringSubmatch(s); m != nil {
		d, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		if y < 100 {
			y += 2000
		}
		return build(y, time.Month(mo), d, now.Location())
	}

	if m := reDayMonth.FindStringSubmatch(s); m != nil {
		d, _ := strconv.Atoi(m[1])
		return withYear(d, months[m[2]], m[3], today)
	}

	if m := reMonthDay.FindStringSubmatch(s); m != nil {
		d, _ := strconv.Atoi(m[2])
		return withYear(d, months[m[1]], m[3], today)
	}

	if m := reWeekday.FindStringSubmatch(s); m != nil {
		target := weekdays[m[2]]
		ahead := (int(target) - int(today.Weekday()) + 7) % 7
		if ahead == 0 && strings.HasPrefix(m[1], "next") {
			ahead = 7
		}
		return today.AddDate(0, 0, ahead), true
	}

	return time.Time{}, false
}

// ParseExact accepts only a calendar date written as YYYY-MM-DD or
// DD/MM/YYYY, with slashes or dashes. Two-digit years are taken as 20YY.
func ParseExact(text string, loc *time.Location) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if m := reExactISO.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		return build(y, time.Month(mo), d, loc)
	}
	if m := reExactDMY.FindStringSubmatch(s); m != nil {
		d, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		if y < 100 {
			y += 2000
		}
		return build(y, time.Month(mo), d, loc)
	}
	return time.Time{}, false
}

// IsPast reports whether t falls on a calendar day before now. Time of day is ignored.
func IsPast(t, now time.Time) bool {
	return midnight(t).Before(midnight(now))
}

func normalize(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = reOrdinal.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, ",", " ")
	return strings.Join(strings.Fields(s), " ")
}

func withYear(day int, month time.Month, rawYear string, today time.Time) (time.Time, bool) {
	if rawYear != "" {
		y, _ := strconv.Atoi(rawYear)
		return build(y, month, day, today.Location())
	}
	t, ok := build(today.Year(), month, day, today.Location())
	if !ok {
		return t, false
	}
	if t.Before(today) {
		return build(today.Year()+1, month, day, today.Location())
	}
	return t, true
}

func build(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	// time.Date normalises overflow (Feb 30 -> Mar 2); reject instead.
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
