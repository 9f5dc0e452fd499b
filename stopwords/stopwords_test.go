package stopwords

import "testing"

func TestClean(t *testing.T) {
	cases := []struct {
		text string
		lang string
		want string
	}{
		{"the wolf howled", "en", "wolf howled"},
		{"el lobo", "es", "lobo"},
		// All stopwords: keep the text rather than return nothing.
		{"the of and", "en", "the of and"},
		{"", "en", ""},
		// No list for the language: pass through.
		{"das haus", "xx", "das haus"},
	}
	for _, c := range cases {
		t.Run(c.text+"/"+c.lang, func(t *testing.T) {
			if got := Clean(c.text, c.lang); got != c.want {
				t.Errorf("Clean(%q, %q) = %q, want %q", c.text, c.lang, got, c.want)
			}
		})
	}
}

func TestIsStopword(t *testing.T) {
	cases := []struct {
		word string
		lang string
		want bool
	}{
		{"the", "en", true},
		{"wolf", "en", false},
		{"el", "es", true},
		{"lobo", "es", false},
	}
	for _, c := range cases {
		t.Run(c.word+"/"+c.lang, func(t *testing.T) {
			if got := IsStopword(c.word, c.lang); got != c.want {
				t.Errorf("IsStopword(%q, %q) = %v, want %v", c.word, c.lang, got, c.want)
			}
		})
	}
}
