package schedule

import (
	"fmt"
	"strings"
)

// Canonical single-letter practice day codes.
const (
	Monday    = "M"
	Tuesday   = "T"
	Wednesday = "W"
	Thursday  = "R"
	Friday    = "F"
)

// ValidDayCodes lists every recognized day code in week order.
const ValidDayCodes = "MTWRF"

// DayNames maps full weekday names to their canonical codes, matching the
// registration form vocabulary.
var DayNames = map[string]string{
	"Monday":    Monday,
	"Tuesday":   Tuesday,
	"Wednesday": Wednesday,
	"Thursday":  Thursday,
	"Friday":    Friday,
}

// Days is a set of day codes stored as a compact code string (e.g. "MWR").
type Days string

// ParseDays validates a raw code string and returns it as a Days set.
// Whitespace is ignored; an empty string is the empty set.
func ParseDays(raw string) (Days, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	for _, r := range cleaned {
		if !strings.ContainsRune(ValidDayCodes, r) {
			return "", fmt.Errorf("invalid day code %q (valid codes: %s)", string(r), ValidDayCodes)
		}
	}
	return Days(cleaned), nil
}

// Contains reports whether the set includes the given day code.
func (d Days) Contains(day string) bool {
	return day != "" && strings.Contains(string(d), day)
}

// Intersects reports whether the two sets share any day.
func (d Days) Intersects(other Days) bool {
	for _, r := range other {
		if d.Contains(string(r)) {
			return true
		}
	}
	return false
}

// IsValidDay reports whether a single code is a recognized practice day.
func IsValidDay(day string) bool {
	return len(day) == 1 && strings.Contains(ValidDayCodes, day)
}
