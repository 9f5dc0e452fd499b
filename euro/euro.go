// Package euro normalizes text in European languages with the Snowball
// stemmer. Stemming is aggressive: normalized text is mangled to the
// point where it can be hard to recognize, and unrelated stems may
// conflate, but equal stems reliably mean related words.
package euro

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball"

	"codeberg.org/snonux/wordroot/tokens"
	"codeberg.org/snonux/wordroot/wordfreq"
)

// snowballNames maps ISO language codes to the stemmer's language
// names.
var snowballNames = map[string]string{
	"es": "spanish",
	"fr": "french",
	"ru": "russian",
	"sv": "swedish",
}

// articleStopwords lists the words to drop during normalization, mostly
// articles and their contractions. Languages without an entry keep
// every word.
var articleStopwords = map[string]map[string]bool{
	"es": set("el", "la", "los", "las", "un", "una", "unos", "unas", "a", "al"),
	"fr": set("la", "le", "l", "les", "un", "une", "à", "au", "aux"),

	// The polysemy of words such as "degli" (plural indefinite article,
	// or contraction of "di" and a definite article) requires a slightly
	// larger stopword list in Italian.
	"it": set(
		// definite articles
		"il", "lo", "la", "le", "i", "gli", "l",
		// singular indefinite articles
		"un", "uno", "una",
		// preposition "to" and its contractions
		"a", "al", "allo", "all", "àlla", "ai", "agli", "alle",
		// preposition "of" and its contractions
		"d", "di", "del", "dello", "dell", "della", "dei", "degli", "delle",
	),
	"pt": set(
		// definite articles
		"a", "o", "as", "os",
		// indefinite articles
		"um", "uma",
		// contractions of "to", which is already included as "a"
		"à", "ao", "às", "aos",
	),
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// GoodLemma reports whether a word is worth keeping in the given
// language: nonempty, not a stopword, and starting with a letter or
// digit.
func GoodLemma(word, lang string) bool {
	word = strings.ToLower(strings.Trim(word, "'"))
	if word == "" || articleStopwords[lang][word] {
		return false
	}
	first, _ := utf8.DecodeRuneInString(word)
	return unicode.IsLetter(first) || unicode.IsNumber(first)
}

// IsStopword reports whether a word would be dropped during
// normalization in the given language.
func IsStopword(word, lang string) bool {
	return !GoodLemma(word, lang)
}

// Stemmer normalizes one language's words to their Snowball stems.
type Stemmer struct {
	lang string
	name string
}

// New returns a stemmer for an ISO language code. The supported
// languages are es, fr, ru, and sv.
func New(lang string) (*Stemmer, error) {
	name, ok := snowballNames[lang]
	if !ok {
		return nil, fmt.Errorf("no stemmer for language: %s", lang)
	}
	return &Stemmer{lang: lang, name: name}, nil
}

// Lang returns the stemmer's ISO language code.
func (s *Stemmer) Lang() string {
	return s.lang
}

// Stem returns the Snowball stem of a word, after stripping edge
// apostrophes and lowercasing.
func (s *Stemmer) Stem(word string) string {
	word = strings.ToLower(strings.Trim(word, "'"))
	stemmed, err := snowball.Stem(word, s.name, true)
	if err != nil {
		return word
	}
	return stemmed
}

// NormalizeList returns the stems of the non-stopword words in the
// text. When nothing survives, the text itself is returned so the
// result is never empty.
func (s *Stemmer) NormalizeList(text string) []string {
	var pieces []string
	for _, word := range tokens.TokenizeList(text) {
		if GoodLemma(word, s.lang) {
			pieces = append(pieces, s.Stem(word))
		}
	}
	if len(pieces) == 0 {
		if text == "" {
			return nil
		}
		return []string{text}
	}
	return pieces
}

// Normalize returns a string made from the stems of the non-stopword
// words in the text. See NormalizeList.
func (s *Stemmer) Normalize(text string) string {
	return tokens.UntokenizeList(s.NormalizeList(text))
}

// WordFrequency looks up the stemmed word's frequency in the Leeds
// Internet corpus for the stemmer's language. Words missing from the
// list get defaultFreq.
func (s *Stemmer) WordFrequency(word string, defaultFreq int64) (int64, error) {
	path, err := wordfreq.DataPath("leeds-internet-" + s.lang + ".txt")
	if err != nil {
		return 0, err
	}
	list, err := wordfreq.Load(path)
	if err != nil {
		return 0, err
	}
	stemmed := s.Stem(word)
	if strings.Contains(stemmed, " ") {
		return 0, fmt.Errorf("can only look up single words, but %q contains a space", stemmed)
	}
	key := strings.ToLower(tokens.Preprocess(strings.Trim(stemmed, "'")))
	if list.Contains(key) {
		return list.Get(key), nil
	}
	return defaultFreq, nil
}
