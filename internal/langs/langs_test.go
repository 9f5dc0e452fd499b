package langs

import (
	"reflect"
	"testing"

	"codeberg.org/snonux/wordroot/japanese"
)

func TestNewEnglish(t *testing.T) {
	backend, err := New("en", "", Config{})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer backend.Close()

	toks, err := backend.TokenizeList("the big dogs")
	if err != nil {
		t.Fatalf("TokenizeList() error: %v", err)
	}
	if want := []string{"the", "big", "dogs"}; !reflect.DeepEqual(toks, want) {
		t.Errorf("TokenizeList() = %v, want %v", toks, want)
	}

	normalized, err := backend.Normalize("the big dogs")
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if normalized != "big dog" {
		t.Errorf("Normalize() = %q, want %q", normalized, "big dog")
	}
}

func TestNewSpanish(t *testing.T) {
	backend, err := New("es", "", Config{})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer backend.Close()

	normalized, err := backend.Normalize("esta es una prueba")
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if normalized != "esta es prueb" {
		t.Errorf("Normalize() = %q, want %q", normalized, "esta es prueb")
	}

	// Snowball languages have no tagger.
	if _, err := backend.TagAndStem("esta es una prueba"); err == nil {
		t.Error("TagAndStem() should fail for a snowball language")
	}
}

func TestJoinNormalizedMatchesNormalize(t *testing.T) {
	tests := []struct {
		lang string
		text string
	}{
		{"en", "the big dogs"},
		{"es", "esta es una prueba"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			backend, err := New(tt.lang, "", Config{})
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			defer backend.Close()

			pieces, err := backend.NormalizeList(tt.text)
			if err != nil {
				t.Fatalf("NormalizeList() error: %v", err)
			}
			normalized, err := backend.Normalize(tt.text)
			if err != nil {
				t.Fatalf("Normalize() error: %v", err)
			}
			if got := backend.JoinNormalized(pieces); got != normalized {
				t.Errorf("JoinNormalized() = %q, want %q", got, normalized)
			}
		})
	}
}

func TestNewUnknownLanguage(t *testing.T) {
	if _, err := New("xx", "", Config{}); err == nil {
		t.Error("New() should fail for an unknown language")
	}
}

func TestNewUnknownEngine(t *testing.T) {
	if _, err := New("en", "spacy", Config{}); err == nil {
		t.Error("New() should fail for an unknown engine")
	}
}

func TestNewFreelingEngine(t *testing.T) {
	// Construction never starts the process, so this works without an
	// installed FreeLing.
	backend, err := New("es", "freeling", Config{})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	backend.Close()

	if _, err := New("de", "freeling", Config{}); err == nil {
		t.Error("New() should fail for a language FreeLing has no configuration for")
	}
}

func TestNewJapaneseAnalyzerConfiguredCommand(t *testing.T) {
	// A configured command is trusted as-is; nothing starts until the
	// first analysis, so the path doesn't have to exist here.
	analyzer, err := NewJapaneseAnalyzer(Config{
		MeCab:        true,
		MeCabCommand: []string{"/opt/mecab/bin/mecab", "-d", "/opt/mecab/dict"},
	})
	if err != nil {
		t.Fatalf("NewJapaneseAnalyzer() error: %v", err)
	}
	if _, ok := analyzer.(*japanese.MeCab); !ok {
		t.Errorf("NewJapaneseAnalyzer() = %T, want *japanese.MeCab", analyzer)
	}
}

func TestLookupFrequencyUnknownLanguage(t *testing.T) {
	if _, err := LookupFrequency("ja", "dog", 0); err == nil {
		t.Error("LookupFrequency() should fail for a language without a wordlist")
	}
}

func TestStemmer(t *testing.T) {
	stem, err := Stemmer("es")
	if err != nil {
		t.Fatalf("Stemmer() error: %v", err)
	}
	if got := stem("pruebas"); got != "prueb" {
		t.Errorf("stem(%q) = %q, want %q", "pruebas", got, "prueb")
	}

	if _, err := Stemmer("xx"); err == nil {
		t.Error("Stemmer() should fail for an unknown language")
	}
}

func TestKnown(t *testing.T) {
	known := Known()
	for _, lang := range []string{"en", "ja", "es", "fr", "ru", "sv"} {
		if known[lang] == "" {
			t.Errorf("Known() is missing %s", lang)
		}
	}
}
