package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ContainsAnyFold reports whether text contains any of the markers, ignoring case.
// Both sides are NFC-normalized and case-folded before comparison.
func ContainsAnyFold(text string, markers ...string) bool {
	folder := cases.Fold()
	haystack := folder.String(norm.NFC.String(text))
	for _, marker := range markers {
		if marker == "" {
			continue
		}
		if strings.Contains(haystack, folder.String(norm.NFC.String(marker))) {
			return true
		}
	}
	return false
}

// NormalizeKey returns the NFC form of a display name so that cache keys built
// from differently composed strings (e.g. decomposed dakuten) compare equal.
func NormalizeKey(name string) string {
	return norm.NFC.String(name)
}
