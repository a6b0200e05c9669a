package parser

import (
	"aoc/internal/ast"
	"aoc/internal/diag"
	"aoc/internal/token"
)

// parsePostfix chains every Call/Index/MemberCall suffix directly
// following node: `f(x)`, `a[0]`, `v.sum`, `v.add(1, 2)`, and any mix of
// these in sequence.
func (p *parser) parsePostfix(node *ast.Node) (*ast.Node, error) {
	for {
		tok, err := p.c.current()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case token.OpParenthesisOpen:
			p.advance()
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			node = ast.New(ast.Call, tok.Span, append([]*ast.Node{node}, args...)...)

		case token.OpSubscriptOpen:
			p.advance()
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.OpSubscriptClose); err != nil {
				return nil, err
			}
			node = ast.New(ast.Index, tok.Span, node, idx)

		case token.OpDot:
			p.advance()
			nameTok, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			if nt, err := p.c.current(); err == nil && nt.Kind == token.OpParenthesisOpen {
				p.advance()
				args, err := p.parseArgList()
				if err != nil {
					return nil, err
				}
				call := ast.New(ast.Call, nameTok.Span, append([]*ast.Node{ast.NewIdentifier(nameTok.Text, nameTok.Span)}, args...)...)
				node = ast.New(ast.MemberCall, tok.Span, node, call)
			} else {
				node = ast.New(ast.MemberCall, tok.Span, node, ast.NewIdentifier(nameTok.Text, nameTok.Span))
			}

		default:
			return node, nil
		}
	}
}

// parseArgList parses a comma-separated argument list, assuming the
// opening '(' has already been consumed.
func (p *parser) parseArgList() ([]*ast.Node, error) {
	tok, err := p.c.current()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.OpParenthesisClose {
		p.advance()
		return nil, nil
	}

	var args []*ast.Node
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok, err := p.c.current()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case token.OpComma:
			p.advance()
			continue
		case token.OpParenthesisClose:
			p.advance()
			return args, nil
		default:
			return nil, diag.Syntax(tok.Span, "expected ',' or ')', got %q", tok.Kind)
		}
	}
}
