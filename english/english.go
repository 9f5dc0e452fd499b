// Package english stems, tags, and normalizes English text. Stems come
// from a dictionary lookup with hand-maintained exception tables, and
// tags from a Penn Treebank part-of-speech tagger.
package english

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jdkato/prose/v2"

	"codeberg.org/snonux/wordroot/records"
	"codeberg.org/snonux/wordroot/tokens"
	"codeberg.org/snonux/wordroot/wordfreq"
)

// articles are stripped during normalization unless they're all there
// is.
var articles = map[string]bool{
	"the": true,
	"a":   true,
	"an":  true,
}

// topicDisambig matches Wikipedia-style titles of the form "Foo (bar)".
var topicDisambig = regexp.MustCompile(`^([^(]+) \(([^)]+)\)`)

// GoodLemma reports whether a stem is worth keeping: nonempty, not an
// article, and starting with a letter or digit.
func GoodLemma(lemma string) bool {
	if lemma == "" || articles[lemma] {
		return false
	}
	first, _ := utf8.DecodeRuneInString(lemma)
	return unicode.IsLetter(first) || unicode.IsNumber(first)
}

// TagAndStem splits text into (stem, tag, token) triples:
//
//   - stem: the word's uninflected form
//   - tag: the word's part of speech
//   - token: the original word, so the text can be reconstructed
//
// Tokens starting with "#" are kept whole and tagged "TAG", and
// punctuation is tagged ".".
func (l *Lemmatizer) TagAndStem(text string) ([]records.Triple, error) {
	doc, err := prose.NewDocument(tokens.Preprocess(text),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("failed to tag text: %w", err)
	}

	toks := doc.Tokens()
	out := make([]records.Triple, 0, len(toks))
	for _, tok := range toks {
		switch {
		case strings.HasPrefix(tok.Text, "#"):
			out = append(out, records.Triple{Stem: tok.Text, Tag: "TAG", Token: tok.Text})
		case tokens.IsPunctuation(tok.Text):
			out = append(out, records.Triple{Stem: tok.Text, Tag: ".", Token: tok.Text})
		default:
			out = append(out, records.Triple{
				Stem:  l.Stem(tok.Text, tok.Tag),
				Tag:   tok.Tag,
				Token: tok.Text,
			})
		}
	}
	return out, nil
}

// NormalizeList returns the word stems that appear in the text, with
// articles and an initial "to" stripped. When nothing survives, the
// text itself is returned so the result is never empty.
func (l *Lemmatizer) NormalizeList(text string) []string {
	var pieces []string
	for _, word := range tokens.TokenizeList(text) {
		if stem := l.Stem(word, ""); GoodLemma(stem) {
			pieces = append(pieces, stem)
		}
	}
	if len(pieces) == 0 {
		if text == "" {
			return nil
		}
		return []string{text}
	}
	if pieces[0] == "to" {
		pieces = pieces[1:]
	}
	return pieces
}

// Normalize returns a string made from the non-stopword stems of the
// text. See NormalizeList.
func (l *Lemmatizer) Normalize(text string) string {
	return tokens.UntokenizeList(l.NormalizeList(text))
}

// NormalizeTopic splits a Wikipedia-style topic into its normalized
// name and a disambiguation label. "Scouting (Boy Scouts)" comes back
// as ("scout", "n/Boy Scouts"); the label is empty when the topic has
// no parenthesized part.
func (l *Lemmatizer) NormalizeTopic(topic string) (string, string) {
	topic = strings.ReplaceAll(topic, "_", " ")
	m := topicDisambig.FindStringSubmatch(topic)
	if m == nil {
		return l.Normalize(topic), ""
	}
	return l.Normalize(m[1]), "n/" + strings.Trim(m[2], " _")
}

// WordFrequency looks up how often a word appears in the default
// wordlist, a filtered version of the Google Books unigram counts. The
// word may be in any case. Edge apostrophes are stripped the way the
// list was built, and the token "n't" counts as "not". Words missing
// from the list get defaultFreq.
func WordFrequency(word string, defaultFreq int64) (int64, error) {
	if strings.Contains(word, " ") {
		return 0, fmt.Errorf("can only look up single words, but %q contains a space", word)
	}
	list, err := wordfreq.LoadDefault()
	if err != nil {
		return 0, err
	}
	key := strings.ToUpper(tokens.Preprocess(strings.Trim(word, "'")))
	if key == "N'T" {
		key = "NOT"
	}
	if list.Contains(key) {
		return list.Get(key), nil
	}
	return defaultFreq, nil
}
