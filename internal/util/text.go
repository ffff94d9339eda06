package util

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	slugReplacer      = strings.NewReplacer(",", "", "'", "", " ", "-")
	separatorReplacer = strings.NewReplacer("/", "", "\\", "")
)

// NormalizeName is the comparison form of a card name: trimmed and
// lower-cased with Unicode rules.
func NormalizeName(input string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(input))
}

// Slug derives the folder and URL key for a commander name: commas and
// apostrophes removed, spaces turned into hyphens, lower-cased.
func Slug(name string) string {
	s := slugReplacer.Replace(strings.TrimSpace(name))
	return cases.Lower(language.Und).String(s)
}

// FolderName makes a slug usable as one path element by dropping path
// separators, so "a-/-b" becomes "a--b".
func FolderName(slug string) string {
	return separatorReplacer.Replace(slug)
}

// EscapeSlug percent-encodes a slug for use as a single URL path segment.
func EscapeSlug(slug string) string {
	return url.PathEscape(slug)
}

// SplitLines breaks text on any line ending and drops lines that are blank
// after trimming. Returned lines are trimmed.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	parts := strings.Split(text, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// StripEdges drops the first rune of s and, when both is set, the last one
// too. Strings of one rune or less are returned unchanged.
func StripEdges(s string, both bool) string {
	r := []rune(s)
	if len(r) <= 1 {
		return s
	}
	if both {
		return string(r[1 : len(r)-1])
	}
	return string(r[1:])
}
