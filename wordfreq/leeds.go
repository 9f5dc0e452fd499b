package wordfreq

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"codeberg.org/snonux/wordroot/tokens"
)

var leedsRankRE = regexp.MustCompile(`^[0-9]+`)

// ReadLeedsCorpus parses a frequency list in the format published by the
// University of Leeds internet corpora: one "rank frequency token" triple
// per line, with the frequency given per million words. Lines that do not
// have that shape are skipped, as the published files mix in headers and
// HTML.
//
// Each token is run through stem (pass nil to keep tokens as they are) and
// the scaled frequencies of all tokens sharing a stem are added together.
// When the summed stem frequency ends up below the raw frequency of the
// lowercased token itself, the raw frequency wins, so irregular forms do
// not vanish under an overzealous stemmer. Words containing commas are
// dropped because they cannot be written back out.
func ReadLeedsCorpus(r io.Reader, stem func(string) string) (*List, error) {
	if stem == nil {
		stem = func(token string) string { return token }
	}

	stemmed := NewList()
	raw := NewList()
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := tokens.FixEncoding(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}
		fields := strings.Split(line, " ")
		if len(fields) != 3 || !leedsRankRE.MatchString(fields[0]) {
			continue
		}
		freq, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad frequency in %q: %w", lineno, line, err)
		}
		token := fields[2]
		freqInt := int64(freq * 100)
		for _, word := range strings.Split(stem(token), " ") {
			if !strings.Contains(word, ",") {
				stemmed.Add(word, freqInt)
			}
		}
		if !strings.Contains(token, ",") {
			raw.Add(strings.ToLower(token), freqInt)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for word, freq := range raw.freqs {
		if freq > stemmed.Get(word) {
			stemmed.Set(word, freq)
		}
	}
	return stemmed, nil
}

// TranslateLeedsCorpus reads a Leeds-format corpus from r and writes it to
// w as a word,frequency list ordered by descending frequency.
func TranslateLeedsCorpus(r io.Reader, w io.Writer, stem func(string) string) error {
	list, err := ReadLeedsCorpus(r, stem)
	if err != nil {
		return err
	}
	return list.Write(w)
}
