package japanese

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"codeberg.org/snonux/wordroot/tokens"
)

// Embedded analyzes text in-process with the kagome tokenizer and its
// bundled copy of the ipa dictionary, so nothing needs to be installed.
// Its records have the same shape as MeCab output.
type Embedded struct {
	tok *tokenizer.Tokenizer
}

// NewEmbedded loads the bundled dictionary and returns an in-process
// analyzer.
func NewEmbedded() (*Embedded, error) {
	tok, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to load the bundled dictionary: %w", err)
	}
	return &Embedded{tok: tok}, nil
}

// Analyze tokenizes text and returns one record per token. The text is
// cleaned up and lowercased the same way the subprocess backend does it.
func (e *Embedded) Analyze(text string) ([]Record, error) {
	text = strings.ToLower(tokens.Preprocess(text))
	toks := e.tok.Tokenize(text)
	results := make([]Record, 0, len(toks))
	for _, t := range toks {
		results = append(results, newRecord(t.Surface, t.Features()))
	}
	return results, nil
}

// Close is a no-op; the dictionary lives in memory for the life of the
// process.
func (e *Embedded) Close() error {
	return nil
}
