package schedule

import (
	"fmt"
	"strings"
)

// Regions groups practice fields by neighborhood, matching the registration
// form's region picklist.
var Regions = map[string][]string{
	"East":          {"Ahern", "Donnelly"},
	"Central":       {"Common"},
	"Cambridgeport": {"Pacific", "Magazine"},
	"West":          {"Danehy", "Raymond", "Maher"},
	"North":         {"Danehy", "Raymond", "Russell"},
}

var validLocations = buildLocationSet()

func buildLocationSet() map[string]bool {
	set := make(map[string]bool)
	for _, fields := range Regions {
		for _, f := range fields {
			set[f] = true
		}
	}
	return set
}

// IsValidLocation reports whether the site code names a known practice field.
func IsValidLocation(loc string) bool {
	return validLocations[loc]
}

// ParseLocations splits a comma-separated site list and validates each entry.
// Empty input yields an empty list.
func ParseLocations(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parts := strings.Split(trimmed, ",")
	locs := make([]string, 0, len(parts))
	for _, part := range parts {
		loc := strings.TrimSpace(part)
		if loc == "" {
			continue
		}
		if !IsValidLocation(loc) {
			return nil, fmt.Errorf("invalid location %q", loc)
		}
		locs = append(locs, loc)
	}
	return locs, nil
}
