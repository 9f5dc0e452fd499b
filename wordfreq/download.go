package wordfreq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DefaultWordlistURL is where the compiled Google Books unigram frequency
// list is published.
const DefaultWordlistURL = "http://lumino.so/downloads/google-books-frequencies.txt"

const downloadTimeout = 15 * time.Minute

// Fetcher downloads frequency list files over HTTP.
type Fetcher struct {
	client *http.Client

	// Progress, when set, receives carriage-return percentage updates
	// while a download is running.
	Progress io.Writer
}

// NewFetcher creates a fetcher with a timeout generous enough for
// multi-megabyte corpus files.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: downloadTimeout,
		},
	}
}

// Fetch downloads url to destPath, creating parent directories as needed.
// The file is written next to its destination and renamed into place, so a
// failed download never leaves a truncated wordlist behind.
func (f *Fetcher) Fetch(ctx context.Context, url, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", destPath, err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	var src io.Reader = resp.Body
	if f.Progress != nil && resp.ContentLength > 0 {
		src = io.TeeReader(resp.Body, &progressWriter{
			w:     f.Progress,
			label: url,
			total: resp.ContentLength,
		})
	}

	tmpPath := destPath + ".part"
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmpPath, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("download failed: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if f.Progress != nil {
		fmt.Fprintln(f.Progress)
	}
	return os.Rename(tmpPath, destPath)
}

// DataDir, when set, overrides the directory wordlists are stored in.
var DataDir string

// DataPath returns where a named wordlist lives on this machine,
// honoring DataDir and then XDG_DATA_HOME.
func DataPath(name string) (string, error) {
	if DataDir != "" {
		return filepath.Join(DataDir, name), nil
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "wordroot", name), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "wordroot", name), nil
}

// DefaultPath returns the machine-local path of the default wordlist,
// the filtered Google Books unigram counts.
func DefaultPath() (string, error) {
	return DataPath("google-unigrams.txt")
}

// EnsureDefault downloads the default wordlist if it is not already on
// disk, and returns its path either way.
func (f *Fetcher) EnsureDefault(ctx context.Context) (string, error) {
	path, err := DefaultPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	if err := f.Fetch(ctx, DefaultWordlistURL, path); err != nil {
		return "", err
	}
	return path, nil
}

// LoadDefault loads the wordlist at DefaultPath. It does not download
// anything; use Fetcher.EnsureDefault for that.
func LoadDefault() (*List, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

type progressWriter struct {
	w     io.Writer
	label string
	total int64
	done  int64
	last  int
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.done += int64(len(b))
	pct := int(p.done * 100 / p.total)
	if pct != p.last {
		fmt.Fprintf(p.w, "\r%s... %2d%%", p.label, pct)
		p.last = pct
	}
	return len(b), nil
}
