package parser

import (
	"aoc/internal/ast"
	"aoc/internal/diag"
	"aoc/internal/token"
)

// parseFunctionDef recognizes `def name(params) [-> type] : NEWLINE BODY`.
// A self-only parameter is recognized by its literal identifier text
// ("self" is not a reserved word) and is only legal while p.inContract.
func (p *parser) parseFunctionDef() (*ast.Node, error) {
	head, err := p.expect(token.KwDef)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	node := ast.New(ast.FunctionDefinition, head.Span, ast.NewIdentifier(nameTok.Text, nameTok.Span))

	if _, err := p.expect(token.OpParenthesisOpen); err != nil {
		return nil, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	node.WithChildren(params...)

	tok, err := p.c.current()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.OpArrow {
		p.advance()
		retTok, err := p.expectTypeSpecifier()
		if err != nil {
			return nil, err
		}
		node.WithChildren(ast.NewTypeID(retTok.Kind, retTok.Span))
	}

	if _, err := p.expect(token.OpColon); err != nil {
		return nil, err
	}
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	node.WithChildren(body...)
	return node, nil
}

// parseParamList parses the comma-separated parameter list, assuming the
// opening '(' has already been consumed.
func (p *parser) parseParamList() ([]*ast.Node, error) {
	tok, err := p.c.current()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.OpParenthesisClose {
		p.advance()
		return nil, nil
	}

	var params []*ast.Node
	for {
		param, err := p.parseOneParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

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
			return params, nil
		default:
			return nil, diag.Syntax(tok.Span, "expected ',' or ')' in parameter list, got %q", tok.Kind)
		}
	}
}

func (p *parser) parseOneParam() (*ast.Node, error) {
	tok, err := p.c.current()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.Identifier && tok.Text == "self" {
		if !p.inContract {
			return nil, diag.Syntax(tok.Span, "'self' parameter is only allowed inside a contract method")
		}
		p.advance()
		return ast.New(ast.FunctionParameterDefinition, tok.Span, ast.NewIdentifier("self", tok.Span)), nil
	}

	nameTok, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.OpColon); err != nil {
		return nil, err
	}
	typeTok, err := p.expectTypeSpecifier()
	if err != nil {
		return nil, err
	}
	return ast.New(ast.FunctionParameterDefinition, nameTok.Span,
		ast.NewIdentifier(nameTok.Text, nameTok.Span), ast.NewTypeID(typeTok.Kind, typeTok.Span)), nil
}
