// Package wordfreq loads and stores word frequency lists: flat
// comma-separated text files, compiled SQLite databases, and the Leeds
// internet-corpus format they are built from.
package wordfreq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// maxCachedLists bounds how many parsed wordlists stay in memory at once.
// Frequency files run to a few million entries, so a handful is plenty.
const maxCachedLists = 16

// Entry is one word with its corpus frequency.
type Entry struct {
	Word string
	Freq int64
}

// List maps words to frequencies, loaded from a text file on disk and
// cached so that each file is parsed at most once.
type List struct {
	freqs map[string]int64
}

// NewList returns an empty frequency list.
func NewList() *List {
	return &List{freqs: make(map[string]int64)}
}

// Get returns the frequency of word, or 0 if the list does not contain it.
func (l *List) Get(word string) int64 {
	return l.freqs[word]
}

// Contains reports whether word appears in the list.
func (l *List) Contains(word string) bool {
	_, ok := l.freqs[word]
	return ok
}

// Add increases the frequency recorded for word by freq.
func (l *List) Add(word string, freq int64) {
	l.freqs[word] += freq
}

// Set records an exact frequency for word.
func (l *List) Set(word string, freq int64) {
	l.freqs[word] = freq
}

// Len returns the number of words in the list.
func (l *List) Len() int {
	return len(l.freqs)
}

// Words returns all words in the list in alphabetical order.
func (l *List) Words() []string {
	words := make([]string, 0, len(l.freqs))
	for word := range l.freqs {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Entries returns the list contents ordered by descending frequency,
// breaking ties alphabetically so output is deterministic.
func (l *List) Entries() []Entry {
	entries := make([]Entry, 0, len(l.freqs))
	for word, freq := range l.freqs {
		entries = append(entries, Entry{Word: word, Freq: freq})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Freq != entries[j].Freq {
			return entries[i].Freq > entries[j].Freq
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}

var listCache = newListCache()

func newListCache() *lru.Cache[string, *List] {
	cache, err := lru.New[string, *List](maxCachedLists)
	if err != nil {
		panic(err)
	}
	return cache
}

// Load reads a word,frequency file from path. Results are cached per
// absolute path, so repeated loads of the same file are free.
func Load(path string) (*List, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if list, ok := listCache.Get(abs); ok {
		return list, nil
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	listCache.Add(abs, list)
	return list, nil
}

// Parse reads a frequency list: one "word,frequency" pair per line.
// Blank lines are ignored.
func Parse(r io.Reader) (*List, error) {
	list := NewList()
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		word, freqText, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("line %d: no comma in %q", lineno, line)
		}
		freq, err := strconv.ParseInt(freqText, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad frequency in %q: %w", lineno, line, err)
		}
		list.Set(word, freq)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Write serializes the list in the same word,frequency format Parse reads,
// most frequent words first.
func (l *List) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, entry := range l.Entries() {
		if _, err := fmt.Fprintf(bw, "%s,%d\n", entry.Word, entry.Freq); err != nil {
			return err
		}
	}
	return bw.Flush()
}
