// Package chunker splits transcripts into paragraph-aligned chunks bounded by
// a character budget.
package chunker

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLimit is the character budget used when none is configured.
const DefaultLimit = 7000

// Split merges consecutive non-blank lines into chunks of at most limit
// characters (runes). Lines are trimmed; merged lines are joined with "\n".
// A single line longer than limit is cut into consecutive pieces that
// concatenate back to the line. A non-positive limit selects DefaultLimit.
func Split(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var (
		chunks []string
		buf    strings.Builder
		bufLen int
	)

	flush := func() {
		if bufLen > 0 {
			chunks = append(chunks, buf.String())
			buf.Reset()
			bufLen = 0
		}
	}

	for _, line := range strings.Split(text, "\n") {
		paragraph := strings.TrimSpace(line)
		if paragraph == "" {
			continue
		}
		n := utf8.RuneCountInString(paragraph)

		if n > limit {
			flush()
			chunks = append(chunks, splitParagraph(paragraph, limit)...)
			continue
		}

		if bufLen > 0 && bufLen+1+n > limit {
			flush()
		}
		if bufLen > 0 {
			buf.WriteByte('\n')
			bufLen++
		}
		buf.WriteString(paragraph)
		bufLen += n
	}
	flush()

	return chunks
}

// Paragraphs returns the trimmed, non-blank lines of text in order.
func Paragraphs(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitParagraph cuts an oversized paragraph after the last whitespace that
// fits the limit, or hard at the limit when a single word is too long.
func splitParagraph(paragraph string, limit int) []string {
	runes := []rune(paragraph)
	var pieces []string

	for len(runes) > limit {
		cut := limit
		for i := limit; i > 0; i-- {
			if unicode.IsSpace(runes[i-1]) {
				cut = i
				break
			}
		}
		pieces = append(pieces, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		pieces = append(pieces, string(runes))
	}
	return pieces
}
