// Package sanitize strips markup from user-submitted free text.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every tag and attribute. A bluemonday policy is safe for
// concurrent use once built.
var strict = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims surrounding whitespace. Entities
// escaped by the policy are decoded again so that plain punctuation
// (apostrophes, ampersands) survives storage unchanged.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// TextPtr applies Text to an optional value.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	out := Text(*s)
	return &out
}
