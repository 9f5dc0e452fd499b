package japanese

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/wordroot/records"
)

// Analyzer turns Japanese text into morphological records.
type Analyzer interface {
	// Analyze returns one record per token of text.
	Analyze(text string) ([]Record, error)

	// Close releases whatever the analyzer holds onto.
	Close() error
}

// NewAnalyzer creates the analyzer named by backend: "mecab" for the
// external command, "embedded" for the in-process tokenizer. An empty
// backend picks mecab when it's installed and falls back to the
// embedded dictionary otherwise.
func NewAnalyzer(backend string) (Analyzer, error) {
	switch backend {
	case "mecab":
		if err := MeCabAvailable(); err != nil {
			return nil, err
		}
		return NewMeCab(), nil
	case "embedded":
		return NewEmbedded()
	case "":
		if MeCabAvailable() == nil {
			return NewMeCab(), nil
		}
		return NewEmbedded()
	default:
		return nil, fmt.Errorf("unknown japanese analyzer: %s", backend)
	}
}

// Tagger provides tokenizing, tagging, and normalizing on top of an
// Analyzer.
type Tagger struct {
	analyzer Analyzer

	// keepAll disables stopword labeling. Some consumers lose too much
	// information when words are discarded by dictionary category.
	keepAll bool
}

// NewTagger wraps an analyzer with the text operations.
func NewTagger(a Analyzer) *Tagger {
	return &Tagger{analyzer: a}
}

// NewTaggerNoStopwords wraps an analyzer but labels nothing as a
// stopword.
func NewTaggerNoStopwords(a Analyzer) *Tagger {
	return &Tagger{analyzer: a, keepAll: true}
}

// analyze flattens the morphological records into the shared pipeline
// form. The output tag is the dictionary part of speech, prefixed with
// "~" when the word is a stopword.
func (tg *Tagger) analyze(text string) ([]records.Record, error) {
	recs, err := tg.analyzer.Analyze(text)
	if err != nil {
		return nil, err
	}
	out := make([]records.Record, 0, len(recs))
	for _, r := range recs {
		stop := !tg.keepAll && r.Stopword()
		pos := r.POS
		if stop {
			pos = "~" + pos
		}
		out = append(out, records.Record{
			Token: r.Surface,
			Root:  r.Lemma(),
			POS:   pos,
			Stop:  stop,
		})
	}
	return out, nil
}

// TokenizeList splits text into the words of the analyzer's dictionary.
func (tg *Tagger) TokenizeList(text string) ([]string, error) {
	recs, err := tg.analyze(text)
	if err != nil {
		return nil, err
	}
	return records.Tokens(recs), nil
}

// Tokenize returns the dictionary words joined with spaces.
func (tg *Tagger) Tokenize(text string) (string, error) {
	toks, err := tg.TokenizeList(text)
	if err != nil {
		return "", err
	}
	return strings.Join(toks, " "), nil
}

// NormalizeList returns the root forms of the content words in text.
// When everything is a stopword the tokens themselves are kept, so the
// result is never empty for nonempty input.
func (tg *Tagger) NormalizeList(text string) ([]string, error) {
	recs, err := tg.analyze(text)
	if err != nil {
		return nil, err
	}
	return records.NormalizeList(recs), nil
}

// Normalize returns the content-word roots of text joined with spaces.
func (tg *Tagger) Normalize(text string) (string, error) {
	recs, err := tg.analyze(text)
	if err != nil {
		return "", err
	}
	return records.Normalize(recs), nil
}

// TagAndStem returns a (root, tag, token) triple for each word of text,
// with punctuation tagged "." and stopword tags prefixed with "~".
func (tg *Tagger) TagAndStem(text string) ([]records.Triple, error) {
	recs, err := tg.analyze(text)
	if err != nil {
		return nil, err
	}
	return records.TagAndStem(recs), nil
}

// IsStopword reports whether text analyzes to nothing but stopwords.
func (tg *Tagger) IsStopword(text string) (bool, error) {
	recs, err := tg.analyze(text)
	if err != nil {
		return false, err
	}
	return records.IsStopword(recs), nil
}

// ExtractPhrases returns each content word of text along with each
// adjacent pair of content words.
func (tg *Tagger) ExtractPhrases(text string) ([]records.Phrase, error) {
	recs, err := tg.analyze(text)
	if err != nil {
		return nil, err
	}
	return records.ExtractPhrases(recs), nil
}

// ToKana respells text phonetically, as katakana separated by spaces.
func (tg *Tagger) ToKana(text string) (string, error) {
	recs, err := tg.analyzer.Analyze(text)
	if err != nil {
		return "", err
	}
	kana := make([]string, 0, len(recs))
	for _, r := range recs {
		if k := r.Kana(); k != "" {
			kana = append(kana, k)
		}
	}
	return strings.Join(kana, " "), nil
}

// Romanize converts text to Hepburn romaji.
func (tg *Tagger) Romanize(text string) (string, error) {
	kana, err := tg.ToKana(text)
	if err != nil {
		return "", err
	}
	return RomanizeKana(kana), nil
}

// Close shuts down the underlying analyzer.
func (tg *Tagger) Close() error {
	return tg.analyzer.Close()
}
