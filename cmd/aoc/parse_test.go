package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestRunParsePrintsTopLevelCount(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "main.a1", "let x = 1\nlet y = 2\n")

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	parseShowAST = false
	if err := runParse(cmd, []string{path}); err != nil {
		t.Fatalf("runParse: %v", err)
	}
	if got := out.String(); got == "" {
		t.Fatal("expected non-empty output")
	}
}

func TestRunParseASTModePrintsTree(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, filepath.Base("main.a1"), "let x = 1\n")

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	parseShowAST = true
	defer func() { parseShowAST = false }()
	if err := runParse(cmd, []string{path}); err != nil {
		t.Fatalf("runParse: %v", err)
	}
	if got := out.String(); !bytes.Contains(out.Bytes(), []byte("ModuleDefinition")) {
		t.Fatalf("expected AST tree output containing ModuleDefinition, got:\n%s", got)
	}
}
