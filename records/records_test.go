package records

import (
	"reflect"
	"testing"
)

func analysis() []Record {
	return []Record{
		{Token: "the", Root: "the", POS: "DT", Stop: true},
		{Token: "dogs", Root: "dog", POS: "NNS"},
		{Token: "ran", Root: "run", POS: "VBD"},
		{Token: ".", Root: ".", POS: "."},
	}
}

func TestNormalizeList(t *testing.T) {
	got := NormalizeList(analysis())
	want := []string{"dog", "run", "."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeList = %v, want %v", got, want)
	}
}

func TestNormalizeListKeepsStopwordsWhenNothingElse(t *testing.T) {
	recs := []Record{
		{Token: "the", Root: "the", POS: "DT", Stop: true},
		{Token: "a", Root: "a", POS: "DT", Stop: true},
	}
	got := NormalizeList(recs)
	want := []string{"the", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeList = %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(analysis()); got != "dog run ." {
		t.Errorf("Normalize = %q, want %q", got, "dog run .")
	}
}

func TestIsStopword(t *testing.T) {
	tests := []struct {
		name string
		recs []Record
		want bool
	}{
		{
			name: "content word present",
			recs: analysis(),
			want: false,
		},
		{
			name: "all stopwords",
			recs: []Record{{Token: "the", Stop: true}, {Token: "a", Stop: true}},
			want: true,
		},
		{
			name: "empty analysis",
			recs: nil,
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStopword(tt.recs); got != tt.want {
				t.Errorf("IsStopword = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTagAndStem(t *testing.T) {
	got := TagAndStem(analysis())
	want := []Triple{
		{Stem: "the", Tag: "DT", Token: "the"},
		{Stem: "dog", Tag: "NNS", Token: "dogs"},
		{Stem: "run", Tag: "VBD", Token: "ran"},
		{Stem: ".", Tag: ".", Token: "."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagAndStem = %v, want %v", got, want)
	}
}

func TestTagAndStemMergesHashtags(t *testing.T) {
	recs := []Record{
		{Token: "#", Root: "#", POS: "."},
		{Token: "winning", Root: "win", POS: "VBG"},
	}
	got := TagAndStem(recs)
	want := []Triple{{Stem: "#winning", Tag: "TAG", Token: "#winning"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagAndStem = %v, want %v", got, want)
	}
}

func TestTagAndStemSkipsEmptyTokens(t *testing.T) {
	recs := []Record{
		{Token: ""},
		{Token: "word", Root: "word", POS: "NN"},
	}
	got := TagAndStem(recs)
	want := []Triple{{Stem: "word", Tag: "NN", Token: "word"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TagAndStem = %v, want %v", got, want)
	}
}

func TestExtractPhrases(t *testing.T) {
	recs := []Record{
		{Token: "東京", Root: "東京"},
		{Token: "タワー", Root: "タワー"},
		{Token: "です", Root: "です", Stop: true},
	}
	got := ExtractPhrases(recs)
	want := []Phrase{
		{Term: "東京", Phrase: "東京"},
		{Term: "東京 タワー", Phrase: "東京タワー"},
		{Term: "タワー", Phrase: "タワー"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractPhrases = %v, want %v", got, want)
	}
}

func TestExtractPhrasesSpansStopwords(t *testing.T) {
	recs := []Record{
		{Token: "空", Root: "空"},
		{Token: "の", Root: "の", Stop: true},
		{Token: "下", Root: "下"},
	}
	got := ExtractPhrases(recs)
	want := []Phrase{
		{Term: "空", Phrase: "空"},
		{Term: "空 下", Phrase: "空の下"},
		{Term: "下", Phrase: "下"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractPhrases = %v, want %v", got, want)
	}
}
