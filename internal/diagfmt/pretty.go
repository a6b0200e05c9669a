// Package diagfmt renders a *diag.CompileError the way a terminal-facing
// driver reports it: a colorized header line, the offending source line
// with a caret/tilde underline aligned to the span, and a few lines of
// surrounding context. It is the single-error counterpart of the teacher's
// internal/diagfmt.Pretty, which instead walks a whole diag.Bag — this
// pipeline's diag package has exactly one error shape and no notes/fixes
// to render (internal/diag's doc comment), so the bag-walking and
// note/fix sections of the teacher's renderer have no counterpart.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"aoc/internal/diag"
	"aoc/internal/source"
)

const tabWidth = 8

// Pretty writes a rendered diagnostic for err to w, resolving its span via
// fs. A nil fs falls back to err's own raw Format().
func Pretty(w io.Writer, err *diag.CompileError, fs *source.FileSet, opts Options) {
	if fs == nil {
		fmt.Fprintln(w, err.Format(nil))
		return
	}

	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	kindColor := color.New(color.FgRed, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)

	f := fs.Get(err.Span.File)
	start, end := fs.Resolve(err.Span)
	displayPath := formatPath(f.Path, opts.PathMode)

	fmt.Fprintf(w, "%s:%d:%d: %s error: %s\n",
		pathColor.Sprint(displayPath),
		start.Line, start.Col,
		kindColor.Sprint(err.Kind.String()),
		err.Message,
	)

	context := opts.Context
	if context <= 0 {
		context = 1
	}
	firstLine := uint32(1)
	if start.Line > uint32(context) {
		firstLine = start.Line - uint32(context)
	}
	lastLine := start.Line + uint32(context)

	lineNumWidth := len(fmt.Sprintf("%d", lastLine))
	if lineNumWidth < 3 {
		lineNumWidth = 3
	}

	for line := firstLine; line <= lastLine; line++ {
		text := f.GetLine(line)
		if text == "" && line != start.Line {
			continue
		}
		gutter := fmt.Sprintf("%*d | ", lineNumWidth, line)
		fmt.Fprintf(w, "%s%s\n", lineNumColor.Sprint(gutter), text)

		if line != start.Line {
			continue
		}
		endCol := end.Col
		if end.Line > start.Line {
			endCol = uint32(len(text)) + 1
		}
		visualStart := visualWidthUpTo(text, start.Col)
		visualEnd := visualWidthUpTo(text, endCol)

		var underline strings.Builder
		underline.WriteString(strings.Repeat(" ", lineNumWidth+3))
		underline.WriteString(strings.Repeat(" ", visualStart))
		span := visualEnd - visualStart
		if span <= 0 {
			underline.WriteByte('^')
		} else {
			underline.WriteString(strings.Repeat("~", span-1))
			underline.WriteByte('^')
		}
		fmt.Fprintln(w, underlineColor.Sprint(underline.String()))
	}
}

// visualWidthUpTo computes the on-screen column width of text up to the
// 1-based byte column byteCol, expanding tabs and widening East-Asian
// runes via go-runewidth the way the teacher's pretty.go does.
func visualWidthUpTo(text string, byteCol uint32) int {
	if byteCol <= 1 {
		return 0
	}
	bytePos, visual := 0, 0
	for _, r := range text {
		if uint32(bytePos) >= byteCol-1 {
			break
		}
		if r == '\t' {
			visual = (visual + tabWidth) / tabWidth * tabWidth
		} else {
			visual += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}
	return visual
}

func formatPath(path string, mode PathMode) string {
	if mode == PathModeBasename {
		return filepath.Base(path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
