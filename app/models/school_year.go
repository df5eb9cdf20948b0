package models

import "regexp"

// School years are stored as free-text "YYYY-YYYY" labels, not foreign keys.
// Existing data depends on the string form, so the format is validated on
// input but never restructured.
var schoolYearPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// ValidSchoolYear reports whether s looks like a "2024-2025" style label.
// An unmatched label is not an error downstream; queries simply match no
// rows and aggregates come back zero.
func ValidSchoolYear(s string) bool {
	return schoolYearPattern.MatchString(s)
}
