package parser

import (
	"aoc/internal/ast"
	"aoc/internal/token"
)

// parseLet recognizes `let name [: type] [= expr]`, per spec.md §4.6. Only
// the name child is guaranteed (OperandsCount(VariableDefinition) == 1);
// the optional type and initializer are appended dynamically.
func (p *parser) parseLet() (*ast.Node, error) {
	head, err := p.expect(token.KwLet)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	node := ast.New(ast.VariableDefinition, head.Span, ast.NewIdentifier(nameTok.Text, nameTok.Span))

	tok, err := p.c.current()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.OpColon {
		p.advance()
		typeTok, err := p.expectTypeSpecifier()
		if err != nil {
			return nil, err
		}
		node.WithChildren(ast.NewTypeID(typeTok.Kind, typeTok.Span))
	}

	tok, err = p.c.current()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.OpAssign {
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.WithChildren(expr)
	}

	return node, p.expectLineEnd()
}
