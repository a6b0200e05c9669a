package astprint

import (
	"strings"
	"testing"

	"aoc/internal/ast"
	"aoc/internal/source"
)

func TestStringRendersNestedStructure(t *testing.T) {
	lhs := ast.NewIdentifier("x", source.Span{})
	rhs := ast.NewNumber("1", source.Span{})
	add := ast.New(ast.Addition, source.Span{}, lhs, rhs)
	root := ast.New(ast.ModuleDefinition, source.Span{}, add)

	out := String(root)

	if !strings.Contains(out, "ModuleDefinition") {
		t.Fatalf("missing root label, got:\n%s", out)
	}
	if !strings.Contains(out, "Addition") {
		t.Fatalf("missing Addition label, got:\n%s", out)
	}
	if !strings.Contains(out, "Identifier(x)") {
		t.Fatalf("missing identifier leaf label, got:\n%s", out)
	}
	if !strings.Contains(out, "Number(1)") {
		t.Fatalf("missing number leaf label, got:\n%s", out)
	}
	if !strings.Contains(out, "└── ") || !strings.Contains(out, "├── ") {
		t.Fatalf("expected both branch connectors in a two-child render, got:\n%s", out)
	}
}

func TestPrintHandlesNilNode(t *testing.T) {
	out := String(nil)
	if !strings.Contains(out, "<nil>") {
		t.Fatalf("expected <nil> placeholder, got:\n%s", out)
	}
}
