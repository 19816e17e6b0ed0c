package minigrep

import (
	"strings"
)

// MatchPolicy selects how a line is tested against the query.
type MatchPolicy int

const (
	// MatchExact requires the query to occur as a contiguous byte substring.
	MatchExact MatchPolicy = iota

	// MatchCaseInsensitive lowers both the query and the line
	// with unicode.ToLower before testing the containment.
	// This is a simple lower-casing, not a full Unicode case folding:
	// "ß" and "SS" are not considered equal.
	// Bytes that are not valid UTF-8 are compared as is.
	// Every line that matches under MatchExact matches under this policy too.
	MatchCaseInsensitive
)

func (p MatchPolicy) String() string {
	switch p {
	case MatchExact:
		return "exact"
	case MatchCaseInsensitive:
		return "case-insensitive"
	default:
		return "MatchPolicy(?)"
	}
}

// MatchData describes a single matched line.
type MatchData struct {
	// Line is the matched line without its line terminator.
	// It's a substring of the searched text.
	Line string
}

// Search returns all lines of text that contain query.
//
// The lines are returned in the text order, every matching line is
// reported exactly once. An empty query matches every line.
//
// Returned strings share the memory with text. Since Go strings are
// immutable, they stay valid after the caller is done with text.
func Search(query, text string) []string {
	return SearchWithPolicy(MatchExact, query, text)
}

// SearchCaseInsensitive is like Search, but ignores the letter case.
// See MatchCaseInsensitive.
func SearchCaseInsensitive(query, text string) []string {
	return SearchWithPolicy(MatchCaseInsensitive, query, text)
}

// SearchWithPolicy returns all lines of text that match query under the given policy.
func SearchWithPolicy(policy MatchPolicy, query, text string) []string {
	var result []string
	MatchLines(policy, query, text, func(m MatchData) bool {
		result = append(result, m.Line)
		return true
	})
	return result
}

// MatchLines calls the callback for every line of text that matches query.
// The scan stops as soon as callback returns false.
//
// Unknown policy values are treated as MatchExact.
func MatchLines(policy MatchPolicy, query, text string, callback func(MatchData) bool) {
	var matchLine func(line string) bool
	switch policy {
	case MatchCaseInsensitive:
		foldedQuery := foldCase(query)
		matchLine = func(line string) bool {
			// A query that splits a multi-byte rune may not survive
			// the folding of the line, so exact matches are checked first.
			return strings.Contains(line, query) ||
				strings.Contains(foldCase(line), foldedQuery)
		}
	default:
		matchLine = func(line string) bool {
			return strings.Contains(line, query)
		}
	}

	walkLines(text, func(line string) bool {
		if !matchLine(line) {
			return true
		}
		return callback(MatchData{Line: line})
	})
}
