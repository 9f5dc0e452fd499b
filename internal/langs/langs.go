// Package langs picks the analysis backend for a language and exposes
// the operations all backends share, so the command-line tool and the
// daemon dispatch the same way.
package langs

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/wordroot/english"
	"codeberg.org/snonux/wordroot/euro"
	"codeberg.org/snonux/wordroot/freeling"
	"codeberg.org/snonux/wordroot/japanese"
	"codeberg.org/snonux/wordroot/records"
	"codeberg.org/snonux/wordroot/tokens"
)

// Backend is the set of text operations every language provides.
type Backend interface {
	TokenizeList(text string) ([]string, error)
	NormalizeList(text string) ([]string, error)
	Normalize(text string) (string, error)
	// JoinNormalized turns a NormalizeList result into the string
	// Normalize would produce, without analyzing the text again.
	JoinNormalized(pieces []string) string
	TagAndStem(text string) ([]records.Triple, error)
	Close() error
}

// Config carries the machine-local settings backends may need.
type Config struct {
	// MeCab switches Japanese from the bundled dictionary to the mecab
	// command.
	MeCab bool
	// MeCabCommand is the mecab command line to run. Empty means plain
	// "mecab" from PATH.
	MeCabCommand []string
	// FreeLingPath is the FreeLing analyze executable. Empty means
	// "analyze" from PATH.
	FreeLingPath string
	// FreeLingConfig is the directory FreeLing .cfg files live in.
	FreeLingConfig string
}

// Known maps the languages with a built-in backend to a short
// description of it. FreeLing languages are listed separately by the
// freeling package.
func Known() map[string]string {
	return map[string]string{
		"en": "dictionary lemmatizer and part-of-speech tagger",
		"ja": "morphological analyzer (bundled dictionary or mecab)",
		"es": "snowball stemmer",
		"fr": "snowball stemmer",
		"ru": "snowball stemmer",
		"sv": "snowball stemmer",
	}
}

// New picks the backend for a language. A nonempty engine overrides
// the language dispatch; "freeling" is the only engine.
func New(lang, engine string, cfg Config) (Backend, error) {
	switch engine {
	case "freeling":
		w, err := freeling.New(lang, freeling.Config{
			Path:      cfg.FreeLingPath,
			ConfigDir: cfg.FreeLingConfig,
		})
		if err != nil {
			return nil, err
		}
		return &freelingBackend{Wrapper: w}, nil
	case "":
	default:
		return nil, fmt.Errorf("unknown engine: %s", engine)
	}

	switch lang {
	case "en":
		lem, err := english.NewLemmatizer()
		if err != nil {
			return nil, err
		}
		return &englishBackend{lem: lem}, nil
	case "ja":
		analyzer, err := NewJapaneseAnalyzer(cfg)
		if err != nil {
			return nil, err
		}
		return &japaneseBackend{Tagger: japanese.NewTagger(analyzer)}, nil
	case "es", "fr", "ru", "sv":
		stemmer, err := euro.New(lang)
		if err != nil {
			return nil, err
		}
		return &euroBackend{stemmer: stemmer}, nil
	default:
		return nil, fmt.Errorf("no backend for language: %s (an installed FreeLing may handle it with the freeling engine)", lang)
	}
}

// NewJapaneseAnalyzer picks between the bundled dictionary and the
// mecab command, honoring a configured command line.
func NewJapaneseAnalyzer(cfg Config) (japanese.Analyzer, error) {
	if !cfg.MeCab {
		return japanese.NewAnalyzer("embedded")
	}
	if len(cfg.MeCabCommand) > 0 {
		return japanese.NewMeCab(cfg.MeCabCommand...), nil
	}
	return japanese.NewAnalyzer("mecab")
}

// LookupFrequency reports how often a word appears in the language's
// frequency wordlist, or defaultFreq when the list doesn't have it.
func LookupFrequency(lang, word string, defaultFreq int64) (int64, error) {
	switch lang {
	case "en":
		return english.WordFrequency(word, defaultFreq)
	case "es", "fr", "ru", "sv":
		stemmer, err := euro.New(lang)
		if err != nil {
			return 0, err
		}
		return stemmer.WordFrequency(word, defaultFreq)
	default:
		return 0, fmt.Errorf("no frequency list for language: %s", lang)
	}
}

// Stemmer returns the stemming function frequency wordlist entries for
// a language are merged under.
func Stemmer(lang string) (func(string) string, error) {
	if lang == "en" {
		lem, err := english.NewLemmatizer()
		if err != nil {
			return nil, err
		}
		return func(word string) string { return lem.Stem(word, "") }, nil
	}
	stemmer, err := euro.New(lang)
	if err != nil {
		return nil, err
	}
	return stemmer.Stem, nil
}

// englishBackend adapts the dictionary lemmatizer, which needs no
// external process, to the backend interface.
type englishBackend struct {
	lem *english.Lemmatizer
}

func (b *englishBackend) TokenizeList(text string) ([]string, error) {
	return tokens.TokenizeList(text), nil
}

func (b *englishBackend) NormalizeList(text string) ([]string, error) {
	return b.lem.NormalizeList(text), nil
}

func (b *englishBackend) Normalize(text string) (string, error) {
	return b.lem.Normalize(text), nil
}

func (b *englishBackend) JoinNormalized(pieces []string) string {
	return tokens.UntokenizeList(pieces)
}

func (b *englishBackend) TagAndStem(text string) ([]records.Triple, error) {
	return b.lem.TagAndStem(text)
}

func (b *englishBackend) Close() error { return nil }

// euroBackend stems with a snowball stemmer. There is no tagger for
// these languages.
type euroBackend struct {
	stemmer *euro.Stemmer
}

func (b *euroBackend) TokenizeList(text string) ([]string, error) {
	return tokens.TokenizeList(text), nil
}

func (b *euroBackend) NormalizeList(text string) ([]string, error) {
	return b.stemmer.NormalizeList(text), nil
}

func (b *euroBackend) Normalize(text string) (string, error) {
	return b.stemmer.Normalize(text), nil
}

func (b *euroBackend) JoinNormalized(pieces []string) string {
	return tokens.UntokenizeList(pieces)
}

func (b *euroBackend) TagAndStem(text string) ([]records.Triple, error) {
	return nil, fmt.Errorf("no tagger for language: %s (an installed FreeLing can tag it with the freeling engine)", b.stemmer.Lang())
}

func (b *euroBackend) Close() error { return nil }

// japaneseBackend adds the join rule the analyzers share: normalized
// roots are separated by plain spaces.
type japaneseBackend struct {
	*japanese.Tagger
}

func (b *japaneseBackend) JoinNormalized(pieces []string) string {
	return strings.Join(pieces, " ")
}

// freelingBackend wraps the FreeLing pipeline the same way.
type freelingBackend struct {
	*freeling.Wrapper
}

func (b *freelingBackend) JoinNormalized(pieces []string) string {
	return strings.Join(pieces, " ")
}
