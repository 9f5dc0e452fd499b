package tokens

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// DefaultPieceLength is the chunk size StringPieces falls back to when the
// caller passes a length of zero. It fits comfortably inside the input
// buffers of the external analyzers this package feeds.
const DefaultPieceLength = 1024

// boundaryTable holds the categories a chunk may end on: control and format
// characters, most punctuation, and all separators.
var boundaryTable = rangetable.Merge(
	unicode.Cc, unicode.Cf,
	unicode.Pc, unicode.Pd, unicode.Pe, unicode.Pf, unicode.Pi, unicode.Po,
	unicode.Zl, unicode.Zp, unicode.Zs,
)

func isBoundary(r rune) bool {
	if unicode.In(r, boundaryTable) {
		return true
	}
	// Unassigned code points count as boundaries too.
	return !unicode.In(r, unicode.C, unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Z)
}

// StringPieces splits s into pieces of at most maxlen runes each, trying to
// break at punctuation or whitespace. This is an important step before
// handing text to a tokenizer with a maximum buffer size. A maxlen of zero
// or less means DefaultPieceLength.
func StringPieces(s string, maxlen int) []string {
	if s == "" {
		return nil
	}
	if maxlen <= 0 {
		maxlen = DefaultPieceLength
	}
	text := []rune(s)
	var pieces []string
	i := 0
	for {
		j := i + maxlen
		if j >= len(text) {
			return append(pieces, string(text[i:]))
		}
		// Checking j-1 keeps boundary characters with the left chunk.
		for !isBoundary(text[j-1]) {
			j--
			if j == i {
				// No boundary available; oh well.
				j = i + maxlen
				break
			}
		}
		pieces = append(pieces, string(text[i:j]))
		i = j
	}
}
