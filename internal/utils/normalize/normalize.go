// Package normalize canonicalizes free-text labels into grouping identifiers.
package normalize

import "strings"

// Label trims surrounding whitespace, lowercases the label and collapses
// every run of whitespace into a single hyphen. Empty or whitespace-only
// input yields the empty string. Idempotent: Label(Label(s)) == Label(s).
func Label(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
