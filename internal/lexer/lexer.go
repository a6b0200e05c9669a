package lexer

import (
	"aoc/internal/diag"
	"aoc/internal/source"
	"aoc/internal/token"
)

// indentWidth is how many consecutive plain-space bytes make one
// indentation level, matching whitespacesIndentationCount in tokenizeImpl.
const indentWidth = 4

// Lexer produces one token.Token at a time from a source.Stream.
type Lexer struct {
	stream *source.Stream
}

// New wraps a stream for tokenization.
func New(s *source.Stream) *Lexer {
	return &Lexer{stream: s}
}

// Next scans and returns the next token, or an error if the input can't be
// tokenized at the current position (unknown operator byte, unterminated
// string, identifier starting with a digit). A fully-consumed stream
// yields an Eof token rather than an error.
func (l *Lexer) Next() (token.Token, error) {
	consecutiveWhitespace := 0

	for {
		start := l.stream.Position()
		b, ok := l.stream.Pop()
		if !ok {
			return token.Token{Kind: token.Eof, Span: start}, nil
		}

		switch classify(b) {
		case classAlnum:
			consecutiveWhitespace = 0
			l.stream.Push(b)
			return scanWord(l.stream, start)

		case classComment:
			consecutiveWhitespace = 0
			skipComment(l.stream)
			continue

		case classNewline:
			consecutiveWhitespace = 0
			return token.Token{Kind: token.Newline, Span: closeSpan(start, l.stream)}, nil

		case classTab:
			consecutiveWhitespace = 0
			return token.Token{Kind: token.Indentation, Span: closeSpan(start, l.stream)}, nil

		case classQuote:
			consecutiveWhitespace = 0
			return scanString(l.stream, start)

		case classWhitespace:
			consecutiveWhitespace++
			if consecutiveWhitespace == indentWidth {
				return token.Token{Kind: token.Indentation, Span: closeSpan(start, l.stream)}, nil
			}
			continue

		case classOperator:
			consecutiveWhitespace = 0
			l.stream.Push(b)
			opStart := l.stream.Position()
			op := token.MatchOperator(l.stream)
			span := closeSpan(opStart, l.stream)
			if op == token.Unknown {
				return token.Token{}, diag.Lexical(span, "unknown token")
			}
			return token.Token{Kind: op, Span: span}, nil
		}
	}
}

// skipComment discards bytes up to but not including the next newline (or
// end of input), so the newline itself still produces its own token.
func skipComment(s *source.Stream) {
	for {
		b, ok := s.Pop()
		if !ok {
			return
		}
		if b == '\n' {
			s.Push(b)
			return
		}
	}
}
