// Package diag defines the single error type the compiler pipeline reports
// through: every stage — lexing, parsing, lowering — returns *CompileError
// instead of ad hoc error values, so a driver can format them uniformly.
package diag

import (
	"fmt"

	"aoc/internal/source"
)

// Kind classifies where in the pipeline a CompileError originated.
type Kind uint8

const (
	KindLexical Kind = iota + 1
	KindSyntax
	KindCompile
	KindBackend
)

func (k Kind) String() string {
	switch k {
	case KindLexical:
		return "lexical"
	case KindSyntax:
		return "syntax"
	case KindCompile:
		return "compile"
	case KindBackend:
		return "backend"
	default:
		return "unknown"
	}
}

// CompileError is the one error shape the whole pipeline produces. It
// replaces the mixed bag of panics/exceptions the original compiler threw
// with a single value every caller can inspect the same way.
type CompileError struct {
	Kind    Kind
	Message string
	Span    source.Span
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func New(kind Kind, span source.Span, format string, args ...any) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(format, args...), Span: span}
}

func Lexical(span source.Span, format string, args ...any) *CompileError {
	return New(KindLexical, span, format, args...)
}

func Syntax(span source.Span, format string, args ...any) *CompileError {
	return New(KindSyntax, span, format, args...)
}

func Compile(span source.Span, format string, args ...any) *CompileError {
	return New(KindCompile, span, format, args...)
}

func Backend(span source.Span, format string, args ...any) *CompileError {
	return New(KindBackend, span, format, args...)
}

// Format renders e the way a terminal-facing driver prints diagnostics:
// "<line>:<col>: error: <msg>". fs resolves e.Span to a line/column; a nil
// fs falls back to the raw byte span.
func (e *CompileError) Format(fs *source.FileSet) string {
	if fs == nil {
		return fmt.Sprintf("%s: error: %s", e.Span, e.Message)
	}
	start, _ := fs.Resolve(e.Span)
	return fmt.Sprintf("%d:%d: error: %s", start.Line, start.Col, e.Message)
}
