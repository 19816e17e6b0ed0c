package minigrep

import (
	"strings"
)

// walkLines calls visit for every line of text until it returns false.
//
// Lines are terminated by "\n" or "\r\n". The last line may have no
// terminator, a bare '\r' at its end is kept. An empty text has no lines.
func walkLines(text string, visit func(line string) bool) {
	for text != "" {
		line := text
		if i := strings.IndexByte(text, '\n'); i != -1 {
			line = strings.TrimSuffix(text[:i], "\r")
			text = text[i+1:]
		} else {
			text = ""
		}
		if !visit(line) {
			return
		}
	}
}
