package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts absolute or relative date strings to time.Time values.
// Filter conditions produced by an LLM carry operands like "2024-05-01",
// "3 months ago" or "today"; all of them resolve against a single timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Seoul"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var agoRe = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months|year|years) ago$`)
var inRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// ParseDate resolves a date string against baseTime (usually time.Now()).
// Absolute layouts are tried first; relative forms fall back to baseTime
// arithmetic. Unparsable input returns an error rather than a zero value
// so callers can fail closed.
func (p *Parser) ParseDate(value string, baseTime time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, p.location); err == nil {
			return t, nil
		}
	}

	lower := strings.ToLower(trimmed)
	base := baseTime.In(p.location)

	switch lower {
	case "today", "now":
		return p.startOfDay(base), nil
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(base.AddDate(0, 0, -1)), nil
	}

	if m := agoRe.FindStringSubmatch(lower); m != nil {
		return p.shift(base, m[1], m[2], -1)
	}
	if m := inRe.FindStringSubmatch(lower); m != nil {
		return p.shift(base, m[1], m[2], 1)
	}

	return time.Time{}, fmt.Errorf("unparsable date: %q", value)
}

func (p *Parser) shift(base time.Time, amountStr, unit string, sign int) (time.Time, error) {
	amount, err := strconv.Atoi(amountStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}
	amount *= sign

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(base.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(base.AddDate(0, amount, 0)), nil
	case strings.HasPrefix(unit, "year"):
		return p.startOfDay(base.AddDate(amount, 0, 0)), nil
	}

	return time.Time{}, fmt.Errorf("unknown time unit: %q", unit)
}

func (p *Parser) startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
