package lexer

import (
	"aoc/internal/source"
	"aoc/internal/token"
)

// TokenIterator wraps a Lexer with one-token lookahead: Current always
// holds the token a caller hasn't consumed yet, so a parser can inspect it
// before deciding whether to advance past it.
type TokenIterator struct {
	lex *Lexer
	cur token.Token
	err error
}

// NewTokenIterator creates an iterator positioned on the first token.
func NewTokenIterator(s *source.Stream) *TokenIterator {
	it := &TokenIterator{lex: New(s)}
	it.advance()
	return it
}

// Current returns the token at the iterator's current position without
// consuming it.
func (it *TokenIterator) Current() token.Token {
	return it.cur
}

// Err returns the error produced while scanning the current token, if any.
func (it *TokenIterator) Err() error {
	return it.err
}

// AtEOF reports whether Current is the end-of-input token.
func (it *TokenIterator) AtEOF() bool {
	return it.cur.Kind == token.Eof
}

// Advance consumes Current and scans the next token into its place,
// returning the token that was just consumed.
func (it *TokenIterator) Advance() token.Token {
	prev := it.cur
	it.advance()
	return prev
}

func (it *TokenIterator) advance() {
	it.cur, it.err = it.lex.Next()
}
