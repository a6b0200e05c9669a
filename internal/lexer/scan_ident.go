package lexer

import (
	"strconv"

	"aoc/internal/diag"
	"aoc/internal/source"
	"aoc/internal/token"
)

// scanWord reads an identifier or number literal. start is the position of
// the first byte, which the caller has already pushed back onto s.
//
// A run of alphanumerics and '_' is accumulated, tracking whether every byte
// seen so far is still a digit (isNumber). A '.' only extends the run when
// isNumber still holds and the byte right after it is a digit too — the one
// case it can mean anything other than member access or a module path
// separator, namely continuing a float literal ("3.14"). Any other '.' ends
// the run right there, without consuming it, so "1.field" tokenizes as the
// number "1" followed by a dot operator and the identifier "field", never
// as one combined word, while "foo.5" still stops at "foo" rather than
// folding a trailing digit run into the identifier.
func scanWord(s *source.Stream, start source.Span) (token.Token, error) {
	var result []byte

	b, ok := s.Pop()
	isNumber := ok && isDigit(b)

	for ok && (isAlnum(b) || b == '.' || b == '_') {
		if b == '.' {
			next, nok := s.Pop()
			if !isNumber || !nok || !isDigit(next) {
				if nok {
					s.Push(next)
				}
				s.Push(b)
				break
			}
			s.Push(next)
		} else if !isDigit(b) {
			isNumber = false
		}
		result = append(result, b)
		b, ok = s.Pop()
	}
	if ok {
		s.Push(b)
	}

	span := closeSpan(start, s)

	word := string(result)

	if kw := token.LookupKeyword(word); kw != token.Unknown {
		return token.Token{Kind: kw, Span: span, Text: word}, nil
	}

	if len(word) > 0 && isDigit(word[0]) {
		if _, err := strconv.ParseFloat(word, 64); err != nil {
			return token.Token{}, diag.Lexical(span, "invalid number literal %q", word)
		}
		return token.Token{Kind: token.Number, Span: span, Text: word}, nil
	}

	return token.Token{Kind: token.Identifier, Span: span, Text: word}, nil
}
