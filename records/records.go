// Package records holds the language-independent half of morphological
// analysis: given the per-token records an analyzer produced, it derives
// normalized word lists, (stem, tag, token) triples, and short phrases.
// The language packages decide what counts as a root, a tag, or a
// stopword; everything here is a pure function over their records.
package records

import (
	"strings"

	"codeberg.org/snonux/wordroot/tokens"
)

// Record is one analyzed token.
type Record struct {
	// Token is the exact word or token that was processed.
	Token string
	// Root is the token's root word (its lemma).
	Root string
	// POS is the part of speech, as general or specific as the analyzer
	// can be.
	POS string
	// Stop marks words that should be discarded in NLP results. Very few
	// words should be stopwords: meaningful but common words are better
	// recognized by their high frequency. Often only determiners belong
	// here.
	Stop bool
}

// Triple is the (stem, tag, token) form of an analyzed word: the
// uninflected stem, the part-of-speech tag, and the original token so the
// text can be reconstructed later.
type Triple struct {
	Stem  string
	Tag   string
	Token string
}

// Phrase pairs the normalized form of up to two content words with the
// exact text that produced them.
type Phrase struct {
	Term   string
	Phrase string
}

// Tokens returns just the token of each record.
func Tokens(recs []Record) []string {
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = rec.Token
	}
	return out
}

// NormalizeList returns the roots of the content words in the analysis.
// If every word is a stopword, all tokens are returned instead: better to
// keep stopwords than to return nothing.
func NormalizeList(recs []Record) []string {
	var words []string
	for _, rec := range recs {
		if !rec.Stop {
			words = append(words, rec.Root)
		}
	}
	if len(words) == 0 {
		return Tokens(recs)
	}
	return words
}

// Normalize is NormalizeList joined with spaces.
func Normalize(recs []Record) string {
	return strings.Join(NormalizeList(recs), " ")
}

// IsStopword reports whether the analysis contains no content words at
// all, which is how a single word or a short phrase out of context is
// judged to be a stopword.
func IsStopword(recs []Record) bool {
	for _, rec := range recs {
		if !rec.Stop {
			return false
		}
	}
	return true
}

// TagAndStem converts an analysis into (stem, tag, token) triples.
// Punctuation tokens get the tag ".". A "#" token merges with the token
// after it into a single hashtag with the tag "TAG".
func TagAndStem(recs []Record) []Triple {
	var triples []Triple
	tagIsNext := false
	for _, rec := range recs {
		if rec.Token == "" {
			continue
		}
		switch {
		case tagIsNext:
			triples = append(triples, Triple{Stem: "#" + rec.Token, Tag: "TAG", Token: "#" + rec.Token})
			tagIsNext = false
		case rec.Token == "#":
			tagIsNext = true
		case tokens.IsPunctuation(rec.Token):
			triples = append(triples, Triple{Stem: rec.Token, Tag: ".", Token: rec.Token})
		default:
			triples = append(triples, Triple{Stem: rec.Root, Tag: rec.POS, Token: rec.Token})
		}
	}
	return triples
}

// ExtractPhrases extracts phrases of up to two content words, mapping the
// normalized term to the exact text that contained it. Each content word
// yields itself, then pairs with the next content word along with all the
// tokens between them.
func ExtractPhrases(recs []Record) []Phrase {
	var phrases []Phrase
	for i, first := range recs {
		if first.Stop {
			continue
		}
		phrases = append(phrases, Phrase{Term: first.Root, Phrase: first.Token})
		for j := i + 1; j < len(recs); j++ {
			if recs[j].Stop {
				continue
			}
			var span strings.Builder
			for k := i; k <= j; k++ {
				span.WriteString(recs[k].Token)
			}
			phrases = append(phrases, Phrase{
				Term:   first.Root + " " + recs[j].Root,
				Phrase: span.String(),
			})
			break
		}
	}
	return phrases
}
