package lexer

import (
	"aoc/internal/diag"
	"aoc/internal/source"
	"aoc/internal/token"
)

// scanString reads a string literal body after the opening quote byte has
// already been consumed and discarded. It always terminates on a closing
// '"', even when a '\'' opened it — the same asymmetry getString has,
// since the tokenizer never remembers which quote byte started the token.
func scanString(s *source.Stream, start source.Span) (token.Token, error) {
	var result []byte
	escaped := false

	for {
		b, ok := s.Pop()
		if !ok {
			span := closeSpan(start, s)
			return token.Token{}, diag.Lexical(span, "missing closing quote")
		}

		if escaped {
			switch b {
			case 't':
				result = append(result, '\t')
			case 'n':
				result = append(result, '\n')
			case 'r':
				result = append(result, '\r')
			case '0':
				result = append(result, 0)
			default:
				result = append(result, b)
			}
			escaped = false
			continue
		}

		if b == '\\' {
			escaped = true
			continue
		}

		if b == '"' {
			span := closeSpan(start, s)
			return token.Token{Kind: token.String, Span: span, Text: string(result)}, nil
		}

		result = append(result, b)
	}
}

func closeSpan(start source.Span, s *source.Stream) source.Span {
	end := s.Position()
	return source.Span{File: start.File, Start: start.Start, End: end.Start}
}
