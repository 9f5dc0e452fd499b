package japanese

import "strings"

// recordFields is the number of analysis fields in the ipadic output
// format, counting the surface form.
const recordFields = 10

// Record is the morphological analysis of a single token, in the field
// order of the ipadic dictionary.
type Record struct {
	Surface       string
	POS           string
	Subclass1     string
	Subclass2     string
	Subclass3     string
	Conjugation   string
	Form          string
	Root          string
	Reading       string
	Pronunciation string
}

// stopwordCategories are the parts of speech, coarse or fine, whose
// words carry grammatical rather than semantic weight.
var stopwordCategories = map[string]bool{
	"助詞":   true, // particle
	"助動詞":  true, // auxiliary verb
	"接続詞":  true, // conjunction
	"フィラー": true, // filler
	"記号":   true, // symbol
	"非自立":  true, // "not independent"
}

// stopwordRoots are common words whose forms should be treated as
// stopwords as well, such as the verb する ("to do") and the pronoun
// これ ("this").
var stopwordRoots = map[string]bool{
	"する": true, // suru: "to do"
	"為る": true, // suru in kanji (very rare)
	"くる": true, // kuru: "to come"
	"来る": true, // kuru in kanji
	"いく": true, // iku: "to go"
	"行く": true, // iku in kanji
	"いる": true, // iru: "to be" (animate)
	"居る": true, // iru in kanji
	"ある": true, // aru: "to exist" or "to have"
	"有る": true, // aru in kanji
	"もの": true, // mono: "thing"
	"物":  true, // mono in kanji
	"よう": true, // yō: "way"
	"様":  true, // yō in kanji
	"れる": true, // passive suffix
	"これ": true, // kore: "this"
	"それ": true, // sore: "that"
	"あれ": true, // are: "that over there"
	"この": true, // kono: "this"
	"その": true, // sono: "that"
	"あの": true, // ano: "that over there"
}

// newRecord builds a Record from a surface form and its analysis
// features in ipadic order. Features missing from the end of short
// records, as for unknown words, are left empty.
func newRecord(surface string, features []string) Record {
	f := make([]string, recordFields-1)
	copy(f, features)
	rec := Record{
		Surface:       surface,
		POS:           f[0],
		Subclass1:     f[1],
		Subclass2:     f[2],
		Subclass3:     f[3],
		Conjugation:   f[4],
		Form:          f[5],
		Root:          f[6],
		Reading:       f[7],
		Pronunciation: f[8],
	}
	// The negative suffix ん comes back as an unconjugated word that is
	// its own root. Rewrite the root to ない so negation survives
	// normalization.
	if rec.Surface == "ん" && rec.Conjugation == "不変化型" {
		rec.Root = "ない"
	}
	return rec
}

// parseRecord parses one line of MeCab output: the surface form, a tab,
// and the comma-joined feature list.
func parseRecord(line string) Record {
	surface, info, _ := strings.Cut(line, "\t")
	var features []string
	if info != "" {
		features = strings.Split(info, ",")
	}
	return newRecord(surface, features)
}

// Lemma returns the root form of the analyzed word. The dictionary
// writes "*" when it doesn't know the root, in which case the surface
// form stands in.
func (r Record) Lemma() string {
	if r.Root == "" || r.Root == "*" {
		return r.Surface
	}
	return r.Root
}

// Stopword reports whether the record represents a function word,
// based on its part of speech and its root. Negations are always kept:
// dropping ない would invert the meaning of the text.
func (r Record) Stopword() bool {
	if r.Root == "ない" {
		return false
	}
	return stopwordCategories[r.POS] ||
		stopwordCategories[r.Subclass1] ||
		stopwordRoots[r.Root]
}

// Kana returns the phonetic spelling of the word in katakana,
// preferring the pronunciation field over the dictionary reading.
func (r Record) Kana() string {
	if r.Pronunciation != "" {
		return r.Pronunciation
	}
	if r.Reading != "" {
		return r.Reading
	}
	return r.Surface
}
