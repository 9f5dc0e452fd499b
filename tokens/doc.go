// Package tokens provides language-independent operations for separating
// and joining word tokens: a Treebank-derived tokenizer, the inverse
// re-spacing heuristics, CamelCase splitting, text cleanup (encoding
// repair, NFKC normalization, control-character stripping), and chunking
// helpers for feeding text to analyzers with bounded input buffers.
//
// The tools apply most directly to English, but do their job in any
// Western language that separates words with spaces.
package tokens
