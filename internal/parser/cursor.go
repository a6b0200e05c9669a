package parser

import (
	"aoc/internal/lexer"
	"aoc/internal/token"
)

// cursor buffers every token pulled from a lexer.TokenIterator so the
// parser can take a mark and rewind to it cheaply. The original parser
// gets this for free because its token iterator is a copyable value type
// wrapping a by-value stream; ours wraps pointers for efficiency, so
// rewinding is modeled explicitly as a replayable tape instead.
type cursor struct {
	it  *lexer.TokenIterator
	buf []token.Token
	pos int
	err error
}

func newCursor(it *lexer.TokenIterator) *cursor {
	return &cursor{it: it}
}

func (c *cursor) fill() error {
	if c.err != nil {
		return c.err
	}
	for len(c.buf) <= c.pos {
		tok := c.it.Advance()
		if err := c.it.Err(); err != nil {
			c.err = err
			return err
		}
		c.buf = append(c.buf, tok)
	}
	return nil
}

// current returns the token at the cursor's position without consuming it.
func (c *cursor) current() (token.Token, error) {
	if err := c.fill(); err != nil {
		return token.Token{}, err
	}
	return c.buf[c.pos], nil
}

// advance returns the current token and moves the cursor past it.
func (c *cursor) advance() (token.Token, error) {
	tok, err := c.current()
	if err != nil {
		return token.Token{}, err
	}
	c.pos++
	return tok, nil
}

// mark returns a position that reset can later rewind to.
func (c *cursor) mark() int {
	return c.pos
}

func (c *cursor) reset(mark int) {
	c.pos = mark
}
