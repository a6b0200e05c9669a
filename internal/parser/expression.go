package parser

import (
	"aoc/internal/ast"
	"aoc/internal/diag"
	"aoc/internal/source"
	"aoc/internal/token"
)

// opEntry is one pending operator on the Shunting-Yard operator stack: the
// node kind it will reduce to, and the span of the token that introduced
// it (for error reporting on the assembled node).
type opEntry struct {
	kind ast.Kind
	span source.Span
}

// isExprEnd reports whether k is one of spec.md §4.6's end-of-expression
// tokens. Every expression parse (top-level, call argument, index
// subscript, parenthesized group) stops here; the caller then decides
// which terminator it actually expected and reports a syntax error if it
// sees the wrong one.
func isExprEnd(k token.Kind) bool {
	switch k {
	case token.Indentation, token.Newline, token.Eof,
		token.OpParenthesisClose, token.OpSubscriptClose, token.OpColon, token.OpComma:
		return true
	default:
		return false
	}
}

// parseExpr is the Shunting-Yard core: two stacks (operands, pending
// operators) reduced by precedence per internal/ast's table, pushed until
// an end-of-expression token per isExprEnd is reached.
func (p *parser) parseExpr() (*ast.Node, error) {
	var operands []*ast.Node
	var ops []opEntry
	expectOperand := true

	reduce := func() error {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		n := ast.OperandsCount(top.kind)
		if len(operands) < n {
			return diag.Syntax(top.span, "syntax error: not enough operands for %v", top.kind)
		}
		children := append([]*ast.Node(nil), operands[len(operands)-n:]...)
		operands = operands[:len(operands)-n]
		operands = append(operands, ast.New(top.kind, top.span, children...))
		return nil
	}

	pushOp := func(kind ast.Kind, span source.Span) error {
		for len(ops) > 0 && ast.HasHigherPrecedence(ops[len(ops)-1].kind, kind) {
			if err := reduce(); err != nil {
				return err
			}
		}
		ops = append(ops, opEntry{kind: kind, span: span})
		return nil
	}

loop:
	for {
		tok, err := p.c.current()
		if err != nil {
			return nil, err
		}
		if isExprEnd(tok.Kind) {
			break
		}

		switch {
		case tok.Kind == token.Identifier:
			if !expectOperand {
				return nil, diag.Syntax(tok.Span, "unexpected identifier %q", tok.Text)
			}
			p.advance()
			node, err := p.parsePostfix(ast.NewIdentifier(tok.Text, tok.Span))
			if err != nil {
				return nil, err
			}
			operands = append(operands, node)
			expectOperand = false

		case tok.Kind == token.Number:
			if !expectOperand {
				return nil, diag.Syntax(tok.Span, "unexpected number literal")
			}
			p.advance()
			operands = append(operands, ast.NewNumber(tok.Text, tok.Span))
			expectOperand = false

		case tok.Kind == token.String:
			if !expectOperand {
				return nil, diag.Syntax(tok.Span, "unexpected string literal")
			}
			p.advance()
			operands = append(operands, ast.NewString(tok.Text, tok.Span))
			expectOperand = false

		case tok.Kind == token.KwTrue || tok.Kind == token.KwFalse || tok.Kind == token.KwNone:
			if !expectOperand {
				return nil, diag.Syntax(tok.Span, "unexpected literal")
			}
			p.advance()
			operands = append(operands, ast.NewBoolean(tok.Kind == token.KwTrue, tok.Span))
			expectOperand = false

		case tok.Kind.IsTypeSpecifier():
			if !expectOperand {
				return nil, diag.Syntax(tok.Span, "unexpected type name %q", tok.Kind)
			}
			p.advance()
			operands = append(operands, ast.NewTypeID(tok.Kind, tok.Span))
			expectOperand = false
			// A type-keyword operand always terminates the sub-expression.
			break loop

		case tok.Kind == token.OpParenthesisOpen && expectOperand:
			p.advance()
			inner, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.OpParenthesisClose); err != nil {
				return nil, err
			}
			group, err := p.parsePostfix(ast.New(ast.Parentheses, tok.Span, inner))
			if err != nil {
				return nil, err
			}
			operands = append(operands, group)
			expectOperand = false

		case tok.Kind == token.KwIs:
			if expectOperand {
				return nil, diag.Syntax(tok.Span, "unexpected 'is'")
			}
			p.advance()
			kind := ast.IsIdentical
			if nt, err := p.c.current(); err == nil && nt.Kind == token.KwNot {
				p.advance()
				kind = ast.IsNotIdentical
			}
			if err := pushOp(kind, tok.Span); err != nil {
				return nil, err
			}
			expectOperand = true

		case tok.Kind == token.KwIn:
			if expectOperand {
				return nil, diag.Syntax(tok.Span, "unexpected 'in'")
			}
			p.advance()
			if err := pushOp(ast.IsMemberOf, tok.Span); err != nil {
				return nil, err
			}
			expectOperand = true

		case tok.Kind == token.KwNot:
			if expectOperand {
				return nil, diag.Syntax(tok.Span, "unexpected 'not'")
			}
			p.advance()
			if _, err := p.expect(token.KwIn); err != nil {
				return nil, err
			}
			if err := pushOp(ast.IsNotMemberOf, tok.Span); err != nil {
				return nil, err
			}
			expectOperand = true

		default:
			kind, ok := mapOperator(tok.Kind, expectOperand)
			if !ok {
				if expectOperand {
					return nil, diag.Syntax(tok.Span, "expected expression, got %q", tok.Kind)
				}
				return nil, diag.Syntax(tok.Span, "unexpected token %q", tok.Kind)
			}
			p.advance()
			if err := pushOp(kind, tok.Span); err != nil {
				return nil, err
			}
			expectOperand = true
		}
	}

	if expectOperand && len(ops) > 0 {
		tok, _ := p.c.current()
		return nil, diag.Syntax(tok.Span, "expected expression")
	}

	for len(ops) > 0 {
		if err := reduce(); err != nil {
			return nil, err
		}
	}

	if len(operands) == 0 {
		tok, _ := p.c.current()
		return nil, diag.Syntax(tok.Span, "expected expression")
	}
	return operands[len(operands)-1], nil
}
