// Package textutils holds the text normalization shared by the reference
// index and the description matcher.
package textutils

import "strings"

// Normalize case-folds s and trims surrounding whitespace. Categories and
// descriptions are compared only in this canonical form.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(strings.ToLower(s))
}

// Words splits an already normalized string on runs of whitespace,
// preserving order. An empty or blank string yields no words.
func Words(s string) []string {
	return strings.Fields(s)
}

// Runes splits s into one-character strings, the element unit used by the
// similarity ratio.
func Runes(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}
