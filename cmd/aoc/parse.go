package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"aoc/internal/astprint"
	"aoc/internal/diag"
	"aoc/internal/diagfmt"
	"aoc/internal/lexer"
	"aoc/internal/parser"
	"aoc/internal/source"
	"aoc/internal/trace"
)

var parseShowAST bool

func init() {
	parseCmd.Flags().BoolVar(&parseShowAST, "ast", false, "print the parsed AST as an indented tree")
}

var parseCmd = &cobra.Command{
	Use:   "parse <file.a1>",
	Short: "Parse a contract source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	tr := trace.FromContext(cmd.Context())
	span := trace.Begin(tr, trace.ScopePass, "parse", 0).WithExtra("file", filePath)

	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		span.End("read failed")
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	it := lexer.NewTokenIterator(source.NewStream(fs.Get(fileID)))
	root, err := parser.Parse(it)
	if err != nil {
		span.End("syntax error")
		if cerr, ok := err.(*diag.CompileError); ok {
			diagfmt.Pretty(os.Stderr, cerr, fs, diagfmt.Options{Color: useColor(cmd, os.Stderr), Context: 2})
		}
		return fmt.Errorf("parsing failed")
	}
	span.WithExtra("top_level_statements", strconv.Itoa(len(root.Children)))
	span.End("ok")

	if parseShowAST {
		astprint.Print(cmd.OutOrStdout(), root)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "parsed %s: %d top-level statements\n", filePath, len(root.Children))
	return nil
}
