package japanese

import (
	"strings"

	"codeberg.org/snonux/wordroot/extproc"
	"codeberg.org/snonux/wordroot/tokens"
)

// endOfSentence terminates each block of MeCab output.
const endOfSentence = "EOS"

// MeCab analyzes text by piping it through the command-line version of
// mecab. The process starts on first use and stays alive between calls.
type MeCab struct {
	proc *extproc.Wrapper
}

// NewMeCab returns an analyzer backed by the mecab command, or by the
// given command line when one is passed. The process isn't started
// until the first analysis.
func NewMeCab(command ...string) *MeCab {
	if len(command) == 0 {
		command = []string{"mecab"}
	}
	return &MeCab{proc: extproc.New(command...)}
}

// MeCabAvailable reports whether the mecab command can be found,
// returning a descriptive error when it can't.
func MeCabAvailable() error {
	return extproc.Available("mecab")
}

// Analyze runs text through MeCab and returns one record per token.
// The text is cleaned up and lowercased first, and long texts are sent
// in pieces so no single line overruns the process's input buffer.
func (m *MeCab) Analyze(text string) ([]Record, error) {
	text = strings.ToLower(tokens.Preprocess(text))
	var results []Record
	for _, chunk := range tokens.StringPieces(text, tokens.DefaultPieceLength) {
		lines, err := m.proc.Exchange(chunk, func(line string) bool {
			return line == endOfSentence
		})
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			results = append(results, parseRecord(line))
		}
	}
	return results, nil
}

// Close shuts down the mecab process. The analyzer restarts it if it's
// used again.
func (m *MeCab) Close() error {
	return m.proc.Close()
}
