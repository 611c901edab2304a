// Package segmenter splits a chat message into translatable units. The
// translation endpoint silently stops translating past certain punctuation
// inside one request, so each clause is sent as an independent request;
// splitting also bounds request size.
package segmenter

import (
	"iter"
	"regexp"
	"slices"
	"unicode"
	"unicode/utf8"
)

// Unit is one clause-sized translatable fragment of a message. Text is the
// exact span of the original input, including the punctuation and any
// whitespace that terminated the unit; concatenating the Text of every unit
// of a message reproduces the message byte-for-byte. TrailingSpace is set
// when the span ends in whitespace, so that spacing can be restored after
// the endpoint trims it from the translated text.
type Unit struct {
	Text          string
	TrailingSpace bool
}

// A unit ends after the first run of sentence-terminal punctuation
// followed by whitespace.
var boundary = regexp.MustCompile(`[.?!;|]+\s+`)

// Units returns a lazy, restartable sequence of the translatable units of
// text, in order. Empty input yields an empty sequence. A final fragment
// with no terminal punctuation is still emitted.
func Units(text string) iter.Seq[Unit] {
	return func(yield func(Unit) bool) {
		for pos := 0; pos < len(text); {
			end := len(text)
			if loc := boundary.FindStringIndex(text[pos:]); loc != nil {
				end = pos + loc[1]
			}
			span := text[pos:end]
			if !yield(Unit{Text: span, TrailingSpace: endsInSpace(span)}) {
				return
			}
			pos = end
		}
	}
}

// Split collects Units into a slice.
func Split(text string) []Unit {
	return slices.Collect(Units(text))
}

func endsInSpace(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}
