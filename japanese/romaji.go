package japanese

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"
)

// kanaGroup classifies how a character combines with its neighbors
// during romanization.
type kanaGroup int

const (
	notKana  kanaGroup = iota
	plainKana          // an ordinary syllable
	kanaN              // ん, which may need an apostrophe or become 'm'
	smallKana          // small vowels such as ィ
	smallY             // small ゃ/ゅ/ょ, which fuse with the previous syllable
	smallTsu           // っ, which doubles the following consonant
	prolong            // ー, which doubles the previous vowel
)

// hepburnTable respells romanized syllables the way English speakers
// expect to read them, so "huzi" becomes "fuji" and "sinbun" becomes
// "shimbun". A trailing underscore stands for the prolongation mark.
var hepburnTable = map[string]string{
	"si": "shi",
	"sy": "sh",
	"ti": "chi",
	"ty": "ch",
	"tu": "tsu",
	"hu": "fu",
	"zi": "ji",
	"di": "ji",
	"zy": "j",
	"dy": "j",
	"nm": "mm",
	"nb": "mb",
	"np": "mp",
	"a_": "aa",
	"e_": "ee",
	"i_": "ii",
	"o_": "ou",
	"u_": "uu",
}

// romanPunctuation maps Japanese punctuation to roman equivalents.
var romanPunctuation = map[rune]string{
	'・': ".",
	'。': ".",
	'、': ",",
	'！': "!",
	'「': "``",
	'」': "''",
	'？': "?",
	'〜': "~",
}

// smallVowelElision drops the 'x' marking an unmerged small vowel, so
// "texi" ends up as "ti". Nobody expects to see "tea" spelled "texi".
var smallVowelElision = regexp.MustCompile(`[aeiou]x([aeiou])`)

// kanaInfo returns a character's transliterated value and the class
// describing how it affects romanization. Unicode names for kana look
// like "KATAKANA LETTER ZI"; the last word of the name is the syllable.
func kanaInfo(r rune) (string, kanaGroup) {
	name := runenames.Name(r)
	if !strings.HasPrefix(name, "HIRAGANA LETTER") &&
		!strings.HasPrefix(name, "KATAKANA LETTER") &&
		!strings.HasPrefix(name, "KATAKANA-HIRAGANA") {
		if roman, ok := romanPunctuation[r]; ok {
			return roman, notKana
		}
		return string(r), notKana
	}

	names := strings.Fields(name)
	syllable := strings.ToLower(names[len(names)-1])
	switch {
	case strings.HasSuffix(name, "SMALL TU"):
		// The small tsu doubles the following consonant. On its own it
		// shows up as 't'.
		return "t", smallTsu
	case names[len(names)-1] == "N":
		return "n", kanaN
	case names[1] == "PROLONGED":
		// The prolongation mark doubles the previous vowel. On its own
		// it shows up as '_'.
		return "_", prolong
	case names[len(names)-2] == "SMALL":
		// Small kana modify the sound of the previous syllable. When
		// they have nothing to modify they're spelled with a leading
		// 'x' instead.
		if strings.HasPrefix(syllable, "y") {
			return "x" + syllable, smallY
		}
		return "x" + syllable, smallKana
	}
	return syllable, plainKana
}

// respellHepburn rewrites the first letters of a syllable until no
// Hepburn rule applies.
func respellHepburn(syllable string) string {
	for len(syllable) >= 2 {
		head, ok := hepburnTable[syllable[:2]]
		if !ok {
			break
		}
		syllable = head + syllable[2:]
	}
	return syllable
}

// RomanizeKana transliterates phonetic kana, as produced by ToKana,
// into Hepburn romaji. Characters that aren't kana pass through
// unchanged, except for Japanese punctuation.
func RomanizeKana(text string) string {
	var pieces []string
	prev := notKana

	last := func() string { return pieces[len(pieces)-1] }
	setLast := func(s string) { pieces[len(pieces)-1] = s }

	for _, ch := range text {
		roman, group := kanaInfo(ch)
		first, _ := utf8.DecodeRuneInString(roman)

		if prev == kanaN {
			// An 'n' is ambiguous before a vowel or y, and at the end
			// of a kana run. Mark it with an apostrophe, but not when
			// the next character is punctuation.
			if group != plainKana || strings.ContainsRune("aeinouy", first) {
				if unicode.IsLetter(first) {
					setLast(last() + "'")
				}
			}
		}

		switch group {
		case notKana, smallTsu, kanaN:
			pieces = append(pieces, roman)
		case smallY:
			if prev == plainKana && strings.HasSuffix(last(), "i") {
				// Fuse with the previous syllable: 'ni' + small 'ya'
				// becomes 'nya'.
				setLast(strings.TrimSuffix(last(), "i") + roman[1:])
			} else {
				pieces = append(pieces, roman)
			}
		case smallKana:
			// Small vowels are resolved at the very end, once all the
			// respelling is done.
			pieces = append(pieces, roman)
		case prolong:
			if prev == plainKana || prev == smallY || prev == smallKana {
				base := last()
				setLast(base[:len(base)-1] + respellHepburn(base[len(base)-1:]+"_"))
			} else {
				pieces = append(pieces, roman)
			}
		default: // an ordinary kana
			if prev == smallTsu {
				if strings.ContainsRune("aeiouy", first) {
					// There's no consonant to double; respell the
					// marker as 't-'.
					setLast("t-")
				} else {
					// Replace the marker with a copy of the consonant.
					setLast(roman[:1])
				}
			} else if prev == kanaN {
				// Hepburn turns 'n' into 'm' in words like 'shimbun'.
				respelled := respellHepburn(last() + roman[:1])
				if head := respelled[:len(respelled)-1]; head != last() {
					setLast(head)
				}
			}
			pieces = append(pieces, roman)
		}
		prev = group
	}

	var sb strings.Builder
	for _, piece := range pieces {
		sb.WriteString(respellHepburn(piece))
	}
	return smallVowelElision.ReplaceAllString(sb.String(), "${1}")
}
