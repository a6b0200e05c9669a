package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"aoc/internal/diag"
	"aoc/internal/diagfmt"
	"aoc/internal/lexer"
	"aoc/internal/source"
	"aoc/internal/token"
	"aoc/internal/trace"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file.a1>",
	Short: "Tokenize a contract source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	tr := trace.FromContext(cmd.Context())
	span := trace.Begin(tr, trace.ScopePass, "tokenize", 0).WithExtra("file", filePath)

	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		span.End("read failed")
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	it := lexer.NewTokenIterator(source.NewStream(fs.Get(fileID)))
	var tokens []token.Token
	for {
		tok := it.Current()
		tokens = append(tokens, tok)
		if tok.Kind == token.Eof {
			break
		}
		it.Advance()
	}
	span.WithExtra("tokens", strconv.Itoa(len(tokens)))
	if cerr, ok := it.Err().(*diag.CompileError); ok {
		span.End("lexical error")
		diagfmt.Pretty(os.Stderr, cerr, fs, diagfmt.Options{Color: useColor(cmd, os.Stderr), Context: 2})
		return fmt.Errorf("tokenization failed")
	}
	span.End("ok")

	for _, tok := range tokens {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %q\n", tok.Kind.String(), tok.Text)
	}
	return nil
}
