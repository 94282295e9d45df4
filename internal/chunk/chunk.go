// Package chunk splits text into stream-like fragments for replaying a
// finished output through a streaming parser.
package chunk

import (
	"strings"
	"unicode/utf8"
)

// Split cuts text into fragments of at most size runes. Any atom found in the
// text is kept whole in its own fragment, the way a tokenizer emits a special
// token. A size below 1 returns text as a single fragment.
func Split(text string, size int, atoms ...string) []string {
	if text == "" {
		return nil
	}
	if size < 1 {
		return []string{text}
	}

	var out []string
	for len(text) > 0 {
		if atom := atomAt(text, atoms); atom != "" {
			out = append(out, atom)
			text = text[len(atom):]
			continue
		}

		i, n := 0, 0
		for i < len(text) && n < size {
			if i > 0 && atomAt(text[i:], atoms) != "" {
				break
			}
			_, w := utf8.DecodeRuneInString(text[i:])
			i += w
			n++
		}
		out = append(out, text[:i])
		text = text[i:]
	}
	return out
}

// atomAt returns the longest atom text starts with.
func atomAt(text string, atoms []string) string {
	best := ""
	for _, a := range atoms {
		if a != "" && len(a) > len(best) && strings.HasPrefix(text, a) {
			best = a
		}
	}
	return best
}
