package domain

import (
	"strings"
)

// NormalizeEmail trims and lower-cases an email address so that lookups and
// the unique constraint are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CollapseSpaces trims s and folds every run of whitespace into one space.
// Case is preserved.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeLabel returns the comparison key of a category label.
func NormalizeLabel(label string) string {
	return strings.ToLower(CollapseSpaces(label))
}
