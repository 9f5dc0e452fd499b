package tokens

import (
	"regexp"
	"strings"
)

// tokenizerPasses run in order over the text; each replacement may feed the
// later ones. They are derived from the Treebank tokenization process, with
// extra rules that keep together symbols such as smileys and complex
// punctuation.
var tokenizerPasses = []struct {
	re  *regexp.Regexp
	rep string
}{
	// transform quotation marks
	{regexp.MustCompile(`"([^"]*)"`), " `` ${1} '' "},
	// sequences of punctuation
	{regexp.MustCompile(`([.,:;^_*?!%()\[\]{}][-.,:;^_*?!%()\[\]{}]*) `), " ${1} "},
	// final sequences of punctuation
	{regexp.MustCompile(`([.,:;^_*?!%()\[\]{}][-.,:;^_*?!%()\[\]{}]*)$`), " ${1}"},
	// word-preceding punctuation
	{regexp.MustCompile(`([*$({\[]+)(\w)`), "${1} ${2}"},
	// ellipses
	{regexp.MustCompile(`(\.\.+)(\w)`), " ${1} ${2}"},
	// long dashes
	{regexp.MustCompile(`(--+)(\w)`), " ${1} ${2}"},
	// ending punctuation + parentheses
	{regexp.MustCompile(` ([.?!])([()\[\]{}])`), " ${1} ${2}"},
	// squish extra spaces
	{regexp.MustCompile(`  +`), " "},
}

// Tokenize inserts spaces into text in such a way that it separates
// punctuation from words, splits up contractions, and generally does what a
// lot of natural language tools (especially parsers) expect their input to
// look like. Line breaks become spaces and the input is run through
// Preprocess first.
func Tokenize(text string) string {
	cur := strings.ReplaceAll(Preprocess(text), "\r", "")
	cur = strings.ReplaceAll(cur, "\n", " ")
	cur = strings.ReplaceAll(cur, " '", " ` ")
	cur = strings.ReplaceAll(cur, "'", " '")
	cur = strings.ReplaceAll(cur, "n 't", " n't")
	cur = strings.ReplaceAll(cur, "cannot", "can not")
	for _, pass := range tokenizerPasses {
		cur = pass.re.ReplaceAllString(cur, pass.rep)
	}
	return strings.TrimSpace(cur)
}

// TokenizeList splits text into a list of tokens, as defined by Tokenize.
// Prefer this over Tokenize itself: lists are more sensible things to work
// with than space-separated string pieces.
func TokenizeList(text string) []string {
	return strings.Fields(Tokenize(text))
}

var (
	midsentencePunct = regexp.MustCompile(" ([.,:;?!%]+)([ '\"`])")
	finalPunct       = regexp.MustCompile(` ([.,:;?!%]+)$`)
)

// Untokenize undoes the tokenizing operation, restoring punctuation and
// spaces to the places that people expect them to be.
//
// Ideally, Untokenize(Tokenize(text)) should be identical to text, except
// for line breaks.
func Untokenize(text string) string {
	cur := strings.ReplaceAll(text, "`` ", `"`)
	cur = strings.ReplaceAll(cur, " ''", `"`)
	cur = strings.ReplaceAll(cur, ". . .", "...")
	cur = strings.ReplaceAll(cur, " ( ", " (")
	cur = strings.ReplaceAll(cur, " ) ", ") ")
	cur = midsentencePunct.ReplaceAllString(cur, "${1}${2}")
	cur = finalPunct.ReplaceAllString(cur, "${1}")
	cur = strings.ReplaceAll(cur, " '", "'")
	cur = strings.ReplaceAll(cur, " n't", "n't")
	cur = strings.ReplaceAll(cur, "can not", "cannot")
	cur = strings.ReplaceAll(cur, " ` ", " '")
	return strings.TrimSpace(cur)
}

// UntokenizeList joins a list of tokens back into natural-looking text.
func UntokenizeList(words []string) string {
	return Untokenize(strings.Join(words, " "))
}
