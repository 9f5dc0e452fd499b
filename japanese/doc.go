// Package japanese tokenizes and normalizes Japanese text using
// morphological analysis in the MeCab/ipadic format. It can stem words,
// detect and remove stopwords, and respell words in kana or romaji.
//
// Two interchangeable backends produce the analysis: NewMeCab pipes
// text through the mecab command, which must be installed separately
// (on Ubuntu: apt-get install mecab mecab-ipadic-utf8), and NewEmbedded
// runs the kagome tokenizer in-process with a bundled copy of the same
// dictionary.
package japanese
