package lexer

import (
	"testing"

	"aoc/internal/source"
	"aoc/internal/token"
)

func lexAll(t *testing.T, content string) ([]token.Token, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.a1", []byte(content))
	l := New(source.NewStream(fs.Get(id)))

	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.Eof {
			return toks, nil
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexIdentifierAndKeyword(t *testing.T) {
	toks, err := lexAll(t, "def foo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 3 { // def, foo, eof (one space doesn't reach the 4-space indent threshold)
		t.Fatalf("got %d tokens: %v", len(toks), kinds(toks))
	}
	if toks[0].Kind != token.KwDef {
		t.Errorf("toks[0] = %v, want KwDef", toks[0].Kind)
	}
	if toks[1].Kind != token.Identifier || toks[1].Text != "foo" {
		t.Errorf("toks[1] = %+v, want Identifier foo", toks[1])
	}
	if toks[2].Kind != token.Eof {
		t.Errorf("toks[2] = %v, want Eof", toks[2].Kind)
	}
}

func TestLexNumber(t *testing.T) {
	toks, err := lexAll(t, "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.Number || toks[0].Text != "42" {
		t.Errorf("toks[0] = %+v, want Number 42", toks[0])
	}
}

func TestLexFloat(t *testing.T) {
	toks, err := lexAll(t, "3.14")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.Number || toks[0].Text != "3.14" {
		t.Errorf("toks[0] = %+v, want Number 3.14", toks[0])
	}
}

func TestLexIdentifierCannotStartWithDigit(t *testing.T) {
	_, err := lexAll(t, "3abc")
	if err == nil {
		t.Fatal("expected error for digit-leading identifier")
	}
}

func TestLexDotAfterIntBreaksNumber(t *testing.T) {
	// "1.field" is the number "1" followed by a dot operator and an identifier,
	// not one combined word, because the byte after the '.' is the letter
	// 'f', not a digit, so the '.' cannot continue a numeric literal.
	toks, err := lexAll(t, "1.field")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{token.Number, token.OpDot, token.Identifier, token.Eof}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("toks[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexOperators(t *testing.T) {
	toks, err := lexAll(t, "+ += <<=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{token.OpAdd, token.OpAssignAdd, token.OpAssignBitwiseLeftShift, token.Eof}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("toks[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexUnknownOperatorByte(t *testing.T) {
	_, err := lexAll(t, "@")
	if err == nil {
		t.Fatal("expected error for unknown operator byte")
	}
}

func TestLexNewline(t *testing.T) {
	toks, err := lexAll(t, "a\nb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{token.Identifier, token.Newline, token.Identifier, token.Eof}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLexTabIsIndentation(t *testing.T) {
	toks, err := lexAll(t, "\ta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.Indentation {
		t.Errorf("toks[0] = %v, want Indentation", toks[0].Kind)
	}
}

func TestLexFourSpacesIsIndentation(t *testing.T) {
	toks, err := lexAll(t, "    a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.Indentation {
		t.Errorf("toks[0] = %v, want Indentation", toks[0].Kind)
	}
	if toks[1].Kind != token.Identifier {
		t.Errorf("toks[1] = %v, want Identifier", toks[1].Kind)
	}
}

func TestLexThreeSpacesIsNotIndentation(t *testing.T) {
	toks, err := lexAll(t, "   a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.Identifier {
		t.Errorf("toks[0] = %v, want Identifier (no indentation token for 3 spaces)", toks[0].Kind)
	}
}

func TestLexCommentSkippedUpToNewline(t *testing.T) {
	toks, err := lexAll(t, "a # a comment\nb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []token.Kind{token.Identifier, token.Newline, token.Identifier, token.Eof}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("toks[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexCommentAtEOFWithNoTrailingNewline(t *testing.T) {
	toks, err := lexAll(t, "# only a comment")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != token.Eof {
		t.Fatalf("got %v, want just Eof", kinds(toks))
	}
}

func TestLexString(t *testing.T) {
	toks, err := lexAll(t, `"hello"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Kind != token.String || toks[0].Text != "hello" {
		t.Errorf("toks[0] = %+v, want String hello", toks[0])
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks, err := lexAll(t, `"a\tb\nc\rd\0e\\f"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a\tb\nc\rd\x00e\\f"
	if toks[0].Kind != token.String || toks[0].Text != want {
		t.Errorf("toks[0].Text = %q, want %q", toks[0].Text, want)
	}
}

func TestLexStringUnterminated(t *testing.T) {
	_, err := lexAll(t, `"unterminated`)
	if err == nil {
		t.Fatal("expected error for unterminated string")
	}
}

func TestLexEmptyInput(t *testing.T) {
	toks, err := lexAll(t, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != token.Eof {
		t.Fatalf("got %v, want just Eof", kinds(toks))
	}
}
