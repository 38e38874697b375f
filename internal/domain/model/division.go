// Package model contains domain entities for the attachee tracker.
package model

import (
	"fmt"
	"strings"
)

// Division is one of the fixed organizational divisions an attachee
// belongs to. The set is closed: it doubles as the key set of the
// performance report, so adding or removing a division is a single
// edit to this enumeration.
type Division string

// The four recognized divisions.
const (
	Engineering  Division = "Engineering"
	TechPrograms Division = "Tech Programs"
	RadioSupport Division = "Radio Support"
	HubSupport   Division = "Hub Support"
)

// Divisions returns all recognized divisions in canonical order.
func Divisions() []Division {
	return []Division{Engineering, TechPrograms, RadioSupport, HubSupport}
}

// ParseDivision validates s against the recognized set.
// Unknown values fail with ErrInvalidDivision listing the valid set.
func ParseDivision(s string) (Division, error) {
	for _, d := range Divisions() {
		if s == string(d) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid divisions: %s)", ErrInvalidDivision, s, validDivisionList())
}

// String implements fmt.Stringer.
func (d Division) String() string {
	return string(d)
}

func validDivisionList() string {
	names := make([]string, 0, len(Divisions()))
	for _, d := range Divisions() {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}
