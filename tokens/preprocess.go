package tokens

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Preprocess makes the representation of any text consistent:
//
//   - Detect whether the text was incorrectly encoded into UTF-8 and fix it,
//     as defined in FixEncoding.
//   - Normalize it with Unicode normalization form KC, which combines
//     separately-coded characters and diacritics (such as "ka" (か) plus a
//     dakuten into the single character "ga" (が)) and replaces characters
//     that are functionally equivalent with their most common form, so
//     half-width katakana become full-width and full-width Roman characters
//     become ASCII.
//   - Replace newlines and tabs with spaces.
//   - Remove all other control characters.
func Preprocess(text string) string {
	normalized := norm.NFKC.String(FixEncoding(text))
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, normalized)
}

// Character ranges that appear when UTF-8 is misread as latin-1, written as
// regexp class fragments. A mangled two-byte character starts with a rune in
// pairStart followed by one in contByte; three-byte characters start with a
// rune in tripleStart followed by two continuation runes.
const (
	pairStart   = `\x{C2}-\x{DF}`
	pairSafe    = `\x{C3}-\x{C9}`
	contByte    = `\x{80}-\x{BF}`
	tripleStart = `\x{E1}-\x{EF}`
	highSecond  = `\x{A0}-\x{BF}`

	// The characters Windows codepage 1252 places at 0x80-0x9F, which
	// latin-1 reads as control characters instead.
	gremlins = `\x{20AC}\x{201A}\x{0192}\x{201E}\x{2020}\x{2021}\x{02C6}` +
		`\x{2030}\x{0160}\x{2039}\x{0152}\x{017D}\x{2022}\x{02DC}\x{0161}` +
		`\x{0153}\x{017E}\x{0178}`
	moreGremlins = `\x{2026}\x{2018}\x{2019}\x{201C}\x{201D}\x{2013}` +
		`\x{2014}\x{2122}\x{203A}`
)

// badSequenceRE matches character sequences that are incorrect latin-1 (or
// codepage 1252) representations of UTF-8 characters in the Basic
// Multilingual Plane. Pairs of codepage 1252 characters can be legitimate
// text, so they are only corrected in sets of three or more.
var badSequenceRE = regexp.MustCompile(`(` + strings.Join([]string{
	`[` + pairStart + `][` + contByte + `]`,
	`[` + pairSafe + `][` + contByte + gremlins + `]`,
	`\x{C3}[` + contByte + gremlins + moreGremlins + `]`,
	`[` + tripleStart + `][` + contByte + `][` + contByte + `]`,
	`\x{E0}[` + highSecond + `][` + contByte + `]`,
	`\x{E2}[` + contByte + gremlins + `][` + contByte + gremlins + moreGremlins + `]`,
}, `|`) + `)`)

// cp1252Bytes maps the characters Windows codepage 1252 places at 0x80-0x9F
// back to their byte values. Latin-1 cannot express these, so a rune below
// 0x100 is its own byte and anything else goes through this table.
var cp1252Bytes = map[rune]byte{
	'€': 0x80, '‚': 0x82, 'ƒ': 0x83, '„': 0x84,
	'…': 0x85, '†': 0x86, '‡': 0x87, 'ˆ': 0x88,
	'‰': 0x89, 'Š': 0x8A, '‹': 0x8B, 'Œ': 0x8C,
	'Ž': 0x8E, '‘': 0x91, '’': 0x92, '“': 0x93,
	'”': 0x94, '•': 0x95, '–': 0x96, '—': 0x97,
	'˜': 0x98, '™': 0x99, 'š': 0x9A, '›': 0x9B,
	'œ': 0x9C, 'ž': 0x9E, 'Ÿ': 0x9F,
}

// FixEncoding repairs text that was mistakenly encoded as UTF-8, decoded in
// some ugly format like latin-1 or even Windows codepage 1252, and encoded
// as UTF-8 again. It searches for the nonsense character sequences that
// result and replaces them with the character they were clearly meant to
// represent, repeating until the text is clean so that multiple levels of
// badness come out right.
//
// Do not ever run binary data through this function.
func FixEncoding(text string) string {
	for {
		changed := false
		fixed := badSequenceRE.ReplaceAllStringFunc(text, func(seq string) string {
			out := recodeSequence(seq)
			if out != seq {
				changed = true
			}
			return out
		})
		if !changed {
			return fixed
		}
		text = fixed
	}
}

// recodeSequence reinterprets a matched nonsense sequence as the bytes it
// was decoded from and decodes those bytes as UTF-8. Sequences that do not
// survive the round trip are left alone.
func recodeSequence(seq string) string {
	buf := make([]byte, 0, len(seq))
	for _, r := range seq {
		switch {
		case r < 0x100:
			buf = append(buf, byte(r))
		default:
			b, ok := cp1252Bytes[r]
			if !ok {
				return seq
			}
			buf = append(buf, b)
		}
	}
	if !utf8.Valid(buf) {
		return seq
	}
	return string(buf)
}

// asciiExpansions spells out the vowel ligatures whose NFKD decompositions
// do not reach ASCII on their own.
var asciiExpansions = strings.NewReplacer("Æ", "AE", "Œ", "OE", "æ", "ae", "œ", "oe")

var asciiOnly = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// Asciify removes accents from characters and discards other non-ASCII
// characters, returning a plain ASCII string. Use responsibly.
func Asciify(text string) string {
	expanded := asciiExpansions.Replace(FixEncoding(text))
	out, _, err := transform.String(asciiOnly, expanded)
	if err != nil {
		return text
	}
	return out
}

// IsPunctuation reports whether a token contains no letters or digits, which
// means it is made entirely of punctuation, symbols, separators, combining
// marks, or control characters.
func IsPunctuation(token string) bool {
	for _, r := range token {
		if unicode.In(r, unicode.L, unicode.N) {
			return false
		}
	}
	return true
}
