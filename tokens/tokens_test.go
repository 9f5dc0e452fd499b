package tokens

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "separates punctuation",
			input: "Time is an illusion. Lunchtime, doubly so.",
			want:  "Time is an illusion . Lunchtime , doubly so .",
		},
		{
			name:  "quotes and contractions",
			input: `"Very deep," said Arthur, "you should send that in to the Reader's Digest. They've got a page for people like you."`,
			want:  "`` Very deep , '' said Arthur , `` you should send that in to the Reader 's Digest . They 've got a page for people like you . ''",
		},
		{
			name:  "splits cannot",
			input: "I cannot believe it's not butter.",
			want:  "I can not believe it 's not butter .",
		},
		{
			name:  "line breaks become spaces",
			input: "one\ntwo\r\nthree",
			want:  "one two three",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokenize(tt.input); got != tt.want {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeUntokenizeRoundTrip(t *testing.T) {
	texts := []string{
		"Time is an illusion. Lunchtime, doubly so.",
		`"Very deep," said Arthur, "you should send that in to the Reader's Digest. They've got a page for people like you."`,
		"I cannot believe it's not butter.",
		"Do you know the way? I don't.",
	}
	for _, text := range texts {
		if got := Untokenize(Tokenize(text)); got != text {
			t.Errorf("round trip of %q = %q", text, got)
		}
		if got := UntokenizeList(TokenizeList(text)); got != text {
			t.Errorf("list round trip of %q = %q", text, got)
		}
	}
}

func TestTokenizeList(t *testing.T) {
	got := TokenizeList("Time is an illusion. Lunchtime, doubly so.")
	want := []string{"Time", "is", "an", "illusion", ".", "Lunchtime", ",", "doubly", "so", "."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizeList = %v, want %v", got, want)
	}
}

func TestUntokenizeEllipsis(t *testing.T) {
	got := UntokenizeList([]string{"Wait", "for", "it", ".", ".", "."})
	want := "Wait for it..."
	if got != want {
		t.Errorf("UntokenizeList = %q, want %q", got, want)
	}
}

func TestUnCamelCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1984ZXSpectrumGames", "1984 ZX Spectrum Games"},
		{"aaAa aaAaA 0aA  AAAa!AAA", "aa Aa aa Aa A 0a A AA Aa! AAA"},
		{"MotörHead", "Motör Head"},
		{"MSWindows3.11ForWorkgroups", "MS Windows 3.11 For Workgroups"},
		{"ACM_Computing_Classification_System", "ACM Computing Classification System"},
		{"Anne_Blunt,_15th_Baroness_Wentworth", "Anne Blunt, 15th Baroness Wentworth"},
		{"Hindi-Urdu", "Hindi-Urdu"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := UnCamelCase(tt.input); got != tt.want {
				t.Errorf("UnCamelCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringPieces(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxlen int
		want   []string
	}{
		{
			name:   "breaks at spaces and dashes",
			input:  "12 12 12345 123456 1234567-12345678",
			maxlen: 6,
			want:   []string{"12 12 ", "12345 ", "123456", " ", "123456", "7-", "123456", "78"},
		},
		{
			name:   "no boundary available",
			input:  "abcdefgh",
			maxlen: 3,
			want:   []string{"abc", "def", "gh"},
		},
		{
			name:   "short input stays whole",
			input:  "hello",
			maxlen: 100,
			want:   []string{"hello"},
		},
		{
			name:   "empty input",
			input:  "",
			maxlen: 10,
			want:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringPieces(tt.input, tt.maxlen)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StringPieces(%q, %d) = %v, want %v", tt.input, tt.maxlen, got, tt.want)
			}
		})
	}
}

func TestStringPiecesRecombine(t *testing.T) {
	input := "The quick brown fox, they say, jumps over the lazy dog."
	var joined string
	for _, piece := range StringPieces(input, 10) {
		if lengthInRunes(piece) > 10 {
			t.Errorf("piece %q longer than 10 runes", piece)
		}
		joined += piece
	}
	if joined != input {
		t.Errorf("pieces recombine to %q, want %q", joined, input)
	}
}

func lengthInRunes(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "tabs become spaces and control chars vanish",
			input: "one\ttwo\x01three",
			want:  "one twothree",
		},
		{
			name:  "fullwidth roman to ascii",
			input: "Ｆｕｌｌ",
			want:  "Full",
		},
		{
			name:  "halfwidth katakana with dakuten combine",
			input: "ｶﾞ",
			want:  "ガ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preprocess(tt.input); got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFixEncoding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "latin-1 mangled utf-8",
			input: "Ãºnico",
			want:  "único",
		},
		{
			name:  "clean text unchanged",
			input: "This text is fine already :þ",
			want:  "This text is fine already :þ",
		},
		{
			name:  "codepage 1252 em dash",
			input: "This â€” should be an em dash",
			want:  "This — should be an em dash",
		},
		{
			name:  "multiple levels of mangling",
			input: "what the fÃÂÃÂ±ck",
			want:  "what the fűck",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixEncoding(tt.input); got != tt.want {
				t.Errorf("FixEncoding(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAsciify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ædœomycodermis", "aedoeomycodermis"},
		{"Zürich", "Zurich"},
		{"-نہیں", "-"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Asciify(tt.input); got != tt.want {
				t.Errorf("Asciify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsPunctuation(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"word", false},
		{"。", true},
		{"-", true},
		{"-3", false},
		{"あ", false},
		{"…!?", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsPunctuation(tt.input); got != tt.want {
				t.Errorf("IsPunctuation(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
