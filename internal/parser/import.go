package parser

import (
	"aoc/internal/ast"
	"aoc/internal/token"
)

// parseImportStmt recognizes `import dotted.module.path`. scanWord
// (scan_ident.go) breaks an identifier run at the first '.' once it's no
// longer a numeric candidate, so a dotted path arrives as a sequence of
// Identifier tokens separated by OpDot ones; this loop re-joins them.
func (p *parser) parseImportStmt() (*ast.Node, error) {
	head, err := p.expect(token.KwImport)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	name := nameTok.Text
	span := nameTok.Span
	for {
		tok, err := p.c.current()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.OpDot {
			break
		}
		p.advance()
		segTok, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		name += "." + segTok.Text
		span = span.Cover(segTok.Span)
	}
	node := ast.New(ast.StatementImport, head.Span, ast.NewIdentifier(name, span))
	return node, p.expectLineEnd()
}
