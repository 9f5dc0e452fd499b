package english

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// exceptions overrides the dictionary for words it stems badly.
var exceptions = map[string]string{
	// Avoid obsolete and obscure roots, the way lexicographers don't.
	"wrought":    "wrought", // not "work"
	"media":      "media",   // not "medium"
	"installed":  "install", // not "instal"
	"installing": "install", // not "instal"
	"synapses":   "synapse", // not "synapsis"
	"soles":      "sole",    // not "sol"
	"pubes":      "pube",    // not "pubis"
	"dui":        "dui",     // not "duo"
	"taxis":      "taxi",    // not "taxis"

	// Work around errors the dictionary makes.
	"alas":     "alas",
	"corps":    "corps",
	"cos":      "cos",
	"enured":   "enure",
	"fiver":    "fiver",
	"hinder":   "hinder",
	"lobed":    "lobe",
	"offerer":  "offerer",
	"outer":    "outer",
	"sang":     "sing",
	"singing":  "sing",
	"solderer": "solderer",
	"tined":    "tine",
	"twiner":   "twiner",
	"us":       "us",

	// Stem common nouns whose plurals are apparently ambiguous.
	"teeth":  "tooth",
	"things": "thing",
	"people": "person",

	// Tokenization artifacts.
	"wo":  "will",
	"ca":  "can",
	"n't": "not",
}

// ambiguousExceptions picks the verb reading of words that shadow more
// common verbs. They only apply when no part of speech is known.
var ambiguousExceptions = map[string]string{
	"am":      "be",
	"as":      "as",
	"are":     "be",
	"ate":     "eat",
	"bent":    "bend",
	"drove":   "drive",
	"fell":    "fall",
	"felt":    "feel",
	"found":   "find",
	"has":     "have",
	"lit":     "light",
	"lost":    "lose",
	"sat":     "sit",
	"saw":     "see",
	"sent":    "send",
	"shook":   "shake",
	"shot":    "shoot",
	"slain":   "slay",
	"spoke":   "speak",
	"stole":   "steal",
	"sung":    "sing",
	"thought": "think",
	"tore":    "tear",
	"was":     "be",
	"won":     "win",
}

// nounSuffixRules are the regular English noun inflections. They decide
// which dictionary lemmas can explain a noun-tagged word.
var nounSuffixRules = []struct {
	suffix, repl string
}{
	{"s", ""},
	{"ses", "s"},
	{"ves", "f"},
	{"xes", "x"},
	{"zes", "z"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"men", "man"},
	{"ies", "y"},
}

// Lemmatizer stems English words with a dictionary lookup plus the
// exception tables above.
type Lemmatizer struct {
	lem *golem.Lemmatizer
}

// NewLemmatizer loads the English dictionary.
func NewLemmatizer() (*Lemmatizer, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load the english dictionary: %w", err)
	}
	return &Lemmatizer{lem: lem}, nil
}

// Stem returns the most likely root for a word. Supplying the word's
// part of speech makes the stem more accurate; tags are Penn Treebank
// style ("NN", "VBD", ...) or the bare letters n, v, a, and r. Anything
// else is treated as unknown.
func (l *Lemmatizer) Stem(word, pos string) string {
	word = strings.ToLower(word)
	switch {
	case strings.HasPrefix(pos, "NN"):
		pos = "n"
	case strings.HasPrefix(pos, "VB"):
		pos = "v"
	case strings.HasPrefix(pos, "JJ"):
		pos = "a"
	case strings.HasPrefix(pos, "RB"):
		pos = "r"
	}
	// Untagged words ending in -ing are treated as verbs, and words
	// ending in -ed always are, whatever the tagger said.
	if (pos == "" && strings.HasSuffix(word, "ing")) || strings.HasSuffix(word, "ed") {
		pos = "v"
	}
	if pos != "" && !strings.Contains("nvar", pos) {
		pos = ""
	}
	if root, ok := exceptions[word]; ok {
		return root
	}
	if pos == "" {
		if root, ok := ambiguousExceptions[word]; ok {
			return root
		}
	}
	if best := l.bestLemma(word, pos); best != "" {
		return best
	}
	return word
}

// bestLemma picks the least bad dictionary lemma for a word. For
// noun-tagged words, lemmas that can't be reached by undoing a regular
// noun inflection are set aside first, so that "saw" tagged as a noun
// doesn't stem to "see".
func (l *Lemmatizer) bestLemma(word, pos string) string {
	candidates := append([]string(nil), l.lem.Lemmas(word)...)
	if pos == "n" {
		var nouns []string
		for _, c := range candidates {
			if c == word || nounDerivable(word, c) {
				nouns = append(nouns, c)
			}
		}
		if len(nouns) > 0 {
			candidates = nouns
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return wordBadness(candidates[i]) < wordBadness(candidates[j])
	})
	return candidates[0]
}

// nounDerivable reports whether word is a regular noun inflection of
// lemma.
func nounDerivable(word, lemma string) bool {
	for _, rule := range nounSuffixRules {
		if strings.HasSuffix(word, rule.suffix) &&
			strings.TrimSuffix(word, rule.suffix)+rule.repl == lemma {
			return true
		}
	}
	return false
}

// wordBadness scores possible stems; minimizing it avoids incorrect
// ones. Shorter stems are better, except that stems ending in "e" beat
// the truncated forms that lose it, and "-ess" words stay intact.
func wordBadness(word string) int {
	length := utf8.RuneCountInString(word)
	switch {
	case strings.HasSuffix(word, "e"):
		return length - 2
	case strings.HasSuffix(word, "ess"):
		return length - 10
	case strings.HasSuffix(word, "ss"):
		return length - 4
	default:
		return length
	}
}
