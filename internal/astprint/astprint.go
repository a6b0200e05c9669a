// Package astprint renders an *ast.Node tree for `aoc parse --ast` debug
// output. It is a simplified adaptation of the teacher's
// internal/diagfmt/ast_tree.go: that renderer walks a per-kind arena AST
// (ast.Builder/ItemID/FileID) and lays out a centered, connector-math ASCII
// tree; this spec's ast.Node is one flat tagged struct; a node's meaning
// is fully determined by Kind plus its Children/leaf field, so one
// recursive per-Kind label switch replaces the teacher's per-item-kind
// switch, and the layout uses the plainer, depth-first "├──"/"└──" prefix
// style instead of centered connector geometry (the same "render a tree of
// labeled boxes" concept, a smaller algorithm for a smaller node model).
package astprint

import (
	"fmt"
	"io"
	"strings"

	"aoc/internal/ast"
)

// Print writes a depth-first, indented rendering of root to w.
func Print(w io.Writer, root *ast.Node) {
	printNode(w, root, "", true)
}

// String renders root the same way Print does, returned as a string.
func String(root *ast.Node) string {
	var sb strings.Builder
	Print(&sb, root)
	return sb.String()
}

func printNode(w io.Writer, n *ast.Node, prefix string, last bool) {
	if n == nil {
		fmt.Fprintf(w, "%s%s<nil>\n", prefix, branch(last))
		return
	}

	connector := branch(last)
	fmt.Fprintf(w, "%s%s%s\n", prefix, connector, label(n))

	childPrefix := prefix + continuation(last)
	for i, child := range n.Children {
		printNode(w, child, childPrefix, i == len(n.Children)-1)
	}
}

func branch(last bool) string {
	if last {
		return "└── "
	}
	return "├── "
}

func continuation(last bool) string {
	if last {
		return "    "
	}
	return "│   "
}

// label formats one node's own text, without its children: Kind plus
// whichever leaf payload field applies.
func label(n *ast.Node) string {
	switch {
	case n.Kind == ast.KindIdentifier:
		return fmt.Sprintf("%s(%s)", n.Kind, n.Identifier)
	case n.Kind == ast.KindNumber:
		return fmt.Sprintf("%s(%s)", n.Kind, n.Number)
	case n.Kind == ast.KindString:
		return fmt.Sprintf("%s(%q)", n.Kind, n.Str)
	case n.Kind == ast.KindBoolean:
		return fmt.Sprintf("%s(%v)", n.Kind, n.Bool)
	case n.Kind == ast.KindTypeID:
		return fmt.Sprintf("%s(%s)", n.Kind, n.Type)
	default:
		return n.Kind.String()
	}
}
