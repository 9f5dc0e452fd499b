// Package stopwords strips high-frequency function words from text in
// languages that have no dedicated analyzer, using the bbalet stopword
// list collection. Languages without a list pass through unchanged.
package stopwords

import (
	"strings"

	bbalet "github.com/bbalet/stopwords"
)

// Clean removes the stopwords of a language, given by its BCP 47 or
// ISO 639-1 code, from text. The result is lowercased and respaced.
// When stripping would leave nothing, text is returned unchanged:
// better to keep stopwords than to return nothing.
func Clean(text, lang string) string {
	cleaned := strings.TrimSpace(bbalet.CleanString(text, lang, false))
	if cleaned == "" {
		return text
	}
	return cleaned
}

// IsStopword reports whether word carries no content in the given
// language.
func IsStopword(word, lang string) bool {
	return strings.TrimSpace(bbalet.CleanString(word, lang, false)) == ""
}
