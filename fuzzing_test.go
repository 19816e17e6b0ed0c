package minigrep

import (
	"strings"
	"testing"
)

func FuzzSearch(f *testing.F) {
	seeds := []struct {
		query string
		text  string
	}{
		{"duct", testPoem},
		{"RuSt", "Rust:\nTrust me."},
		{"", ""},
		{"", "\n\n"},
		{"a", "a\r\nb\r"},
		{"İ", "i̇\nİ\nı"},
		{"\xff", "\xff\xfe\n\x00"},
		{"\xc3", "é"},
		{"\xff", "\uFFFD"},
		{"\x89", "É\né"},
	}
	for _, seed := range seeds {
		f.Add(seed.query, seed.text)
	}
	f.Fuzz(func(t *testing.T, query, text string) {
		defer func() {
			rv := recover()
			if rv != nil {
				t.Fatalf("panic during searching %q in %q", query, text)
			}
		}()

		var lines []string
		walkLines(text, func(line string) bool {
			lines = append(lines, line)
			return true
		})

		// Exact results must be exactly the containing lines, in order.
		exact := Search(query, text)
		j := 0
		for _, line := range lines {
			if !strings.Contains(line, query) {
				continue
			}
			if j >= len(exact) || exact[j] != line {
				t.Fatalf("search %q in %q: line %q is missing", query, text, line)
			}
			j++
		}
		if j != len(exact) {
			t.Fatalf("search %q in %q: %d extra results", query, text, len(exact)-j)
		}

		// Every exact match is a case-insensitive match too.
		folded := SearchCaseInsensitive(query, text)
		j = 0
		for _, line := range folded {
			if j < len(exact) && exact[j] == line {
				j++
			}
		}
		if j != len(exact) {
			t.Fatalf("search %q in %q: %q is not a subsequence of %q", query, text, exact, folded)
		}

		foldedQuery := foldCase(query)
		for _, line := range folded {
			if !strings.Contains(line, query) && !strings.Contains(foldCase(line), foldedQuery) {
				t.Fatalf("search %q in %q: line %q doesn't match", query, text, line)
			}
		}
	})
}
