// Package freeling tags and normalizes text in several European
// languages by calling an installed copy of FreeLing's analyze
// command.
package freeling

import (
	"fmt"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/wordroot/extproc"
	"codeberg.org/snonux/wordroot/records"
	"codeberg.org/snonux/wordroot/tokens"
)

// Languages are the ISO codes this wrapper has configurations for.
var Languages = []string{"en", "es", "it", "pt", "ru", "cy"}

// Record is one line of FreeLing output: the token, its lemma, its
// part-of-speech tag, and whatever else the analyzer appended, usually
// a probability.
type Record struct {
	Token string
	Lemma string
	Tag   string
	Extra []string
}

// Root returns the lemma, lowercased.
func (r Record) Root() string {
	return strings.ToLower(r.Lemma)
}

// Stopword reports whether the record is a determiner, which is the
// only category FreeLing output gets filtered on.
func (r Record) Stopword() bool {
	return strings.HasPrefix(r.Tag, "D")
}

// parseRecord splits one space-delimited output line. Short lines leave
// the remaining fields empty.
func parseRecord(line string) Record {
	fields := strings.Split(line, " ")
	rec := Record{Token: fields[0]}
	if len(fields) > 1 {
		rec.Lemma = fields[1]
	}
	if len(fields) > 2 {
		rec.Tag = fields[2]
	}
	if len(fields) > 3 {
		rec.Extra = fields[3:]
	}
	return rec
}

// Wrapper analyzes one language's text through a long-lived FreeLing
// process.
type Wrapper struct {
	lang string
	proc *extproc.Wrapper
}

// Config adjusts how the analyzer process is run.
type Config struct {
	// Path is the analyze executable. Empty means "analyze" from PATH.
	Path string
	// ConfigDir is where <lang>.cfg and the splitter file live. When
	// empty the bare filenames are passed through for FreeLing to
	// resolve against its own configuration directory.
	ConfigDir string
}

// New returns a wrapper for an ISO language code. The analyzer loads
// <lang>.cfg and a splitter file that doesn't do any special handling
// of sentence ends.
func New(lang string, cfg Config) (*Wrapper, error) {
	supported := false
	for _, l := range Languages {
		if l == lang {
			supported = true
			break
		}
	}
	if !supported {
		return nil, fmt.Errorf("unsupported freeling language: %s", lang)
	}
	path := cfg.Path
	if path == "" {
		path = "analyze"
	}
	return &Wrapper{
		lang: lang,
		proc: extproc.New(path,
			"-f", filepath.Join(cfg.ConfigDir, lang+".cfg"),
			"--fsplit", filepath.Join(cfg.ConfigDir, "generic_splitter.dat")),
	}, nil
}

// Available reports whether the analyze command can be found, returning
// a descriptive error when it can't.
func Available() error {
	return extproc.Available("analyze")
}

// Lang returns the wrapper's ISO language code.
func (w *Wrapper) Lang() string {
	return w.lang
}

// stripUnsafe removes the control characters FreeLing chokes on,
// keeping newlines since they delimit the chunks sent to the process.
func stripUnsafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r < 0x20, r >= 0x7f && r <= 0x9f:
			return -1
		}
		return r
	}, s)
}

// Analyze runs text through FreeLing and returns one record per token.
// Each input line is sent as its own chunk, and each chunk's records
// are read until the blank line that terminates them.
func (w *Wrapper) Analyze(text string) ([]Record, error) {
	text = strings.TrimSpace(stripUnsafe(tokens.FixEncoding(text)))
	if text == "" {
		return nil, nil
	}
	var results []Record
	for _, chunk := range strings.Split(text, "\n") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		lines, err := w.proc.Exchange(chunk, func(line string) bool {
			return line == ""
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

// Close shuts down the FreeLing process. The wrapper restarts it if
// it's used again.
func (w *Wrapper) Close() error {
	return w.proc.Close()
}

// pos returns the tag to report for a record. English tags are Penn
// Treebank style and kept whole; other languages use EAGLES tags whose
// densely encoded features aren't usable here, so only the leading
// part-of-speech letter survives.
func (w *Wrapper) pos(r Record) string {
	if w.lang == "en" || r.Tag == "" {
		return r.Tag
	}
	return r.Tag[:1]
}

// analyze flattens FreeLing records into the shared pipeline form.
func (w *Wrapper) analyze(text string) ([]records.Record, error) {
	recs, err := w.Analyze(text)
	if err != nil {
		return nil, err
	}
	out := make([]records.Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, records.Record{
			Token: r.Token,
			Root:  r.Root(),
			POS:   w.pos(r),
			Stop:  r.Stopword(),
		})
	}
	return out, nil
}

// TokenizeList splits text the way the analyzer does.
func (w *Wrapper) TokenizeList(text string) ([]string, error) {
	recs, err := w.analyze(text)
	if err != nil {
		return nil, err
	}
	return records.Tokens(recs), nil
}

// NormalizeList returns the lemmas of the non-determiner words in
// text. When everything is a determiner the tokens themselves are
// kept, so the result is never empty for nonempty input.
func (w *Wrapper) NormalizeList(text string) ([]string, error) {
	recs, err := w.analyze(text)
	if err != nil {
		return nil, err
	}
	return records.NormalizeList(recs), nil
}

// Normalize returns the non-determiner lemmas of text joined with
// spaces.
func (w *Wrapper) Normalize(text string) (string, error) {
	recs, err := w.analyze(text)
	if err != nil {
		return "", err
	}
	return records.Normalize(recs), nil
}

// TagAndStem returns a (root, tag, token) triple for each word of
// text, with punctuation tagged ".".
func (w *Wrapper) TagAndStem(text string) ([]records.Triple, error) {
	recs, err := w.analyze(text)
	if err != nil {
		return nil, err
	}
	return records.TagAndStem(recs), nil
}

// IsStopword reports whether text analyzes to nothing but determiners.
func (w *Wrapper) IsStopword(text string) (bool, error) {
	recs, err := w.analyze(text)
	if err != nil {
		return false, err
	}
	return records.IsStopword(recs), nil
}

// ExtractPhrases returns each content word of text along with each
// adjacent pair of content words.
func (w *Wrapper) ExtractPhrases(text string) ([]records.Phrase, error) {
	recs, err := w.analyze(text)
	if err != nil {
		return nil, err
	}
	return records.ExtractPhrases(recs), nil
}
