package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is used for name ordering when a query carries no locale.
var DefaultLocale = language.English

// textMatcher does case-insensitive substring matching. An empty needle
// matches everything. Not safe for concurrent use.
type textMatcher struct {
	fold   cases.Caser
	needle string
}

func newTextMatcher(search string) *textMatcher {
	fold := cases.Fold()
	return &textMatcher{fold: fold, needle: fold.String(search)}
}

func (m *textMatcher) matchAny(fields ...string) bool {
	if m.needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(m.fold.String(f), m.needle) {
			return true
		}
	}
	return false
}

// newCollator returns a collator for tag, DefaultLocale when tag is unset.
// Collators are not safe for concurrent use, so every view builds its own.
func newCollator(tag language.Tag) *collate.Collator {
	if tag == language.Und {
		tag = DefaultLocale
	}
	return collate.New(tag)
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
