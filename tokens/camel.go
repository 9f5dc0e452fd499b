package tokens

import (
	"regexp"
	"strings"
)

// camelRE scans through a reversed string for one segment of camel-cased
// text. Read forwards, the alternatives match, in preference order: a string
// of all caps such as an acronym; a capital letter followed by lowercase
// letters, or lowercase letters on their own after a word break; a number,
// possibly followed by lowercase letters; extra word breaks (spaces or
// underscores); miscellaneous symbols, possibly with lowercase letters after
// them.
var camelRE = regexp.MustCompile(
	`^([A-Z]+|[^A-Z0-9 _]+[A-Z _]|[^A-Z0-9 _]*[0-9.]+|[ _]+|[^A-Z0-9]*[^A-Z0-9_ ]+)`)

// UnCamelCase splits apart words that are written in CamelCase, without
// significantly affecting text that is not camel-cased. Underscores become
// word breaks as well.
//
// Non-ASCII characters are treated as lowercase letters, even if they are
// actually capital letters.
func UnCamelCase(text string) string {
	revtext := reverseRunes(text)
	var pieces []string
	for revtext != "" {
		m := camelRE.FindString(revtext)
		if m == "" {
			m = revtext
		}
		if trimmed := strings.Trim(m, " _"); trimmed != "" {
			pieces = append(pieces, trimmed)
		}
		revtext = revtext[len(m):]
	}
	return strings.ReplaceAll(reverseRunes(strings.Join(pieces, " ")), "- ", "-")
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
