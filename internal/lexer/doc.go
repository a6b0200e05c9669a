// Package lexer is the C3/C4 tokenizer: it turns a source.Stream of raw
// bytes into a stream of token.Token values one at a time, and wraps that
// in a one-token-lookahead TokenIterator so a parser can peek the current
// token before deciding whether to consume it.
//
// The character-class dispatch, indentation-by-four-spaces rule, comment
// skipping, and string-escape table are ported from the original
// tokenizer's tokenizeImpl/getWord/getString/skipComment.
package lexer
