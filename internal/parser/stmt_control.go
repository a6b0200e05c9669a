package parser

import (
	"aoc/internal/ast"
	"aoc/internal/token"
)

func (p *parser) parseIf() (*ast.Node, error) {
	return p.parseIfLike(token.KwIf, ast.StatementIf)
}

func (p *parser) parseElif() (*ast.Node, error) {
	return p.parseIfLike(token.KwElif, ast.StatementElif)
}

// parseIfLike parses `if`/`elif COND : NEWLINE BODY`, followed by an
// optional single trailing elif/else child at the same indentation level.
func (p *parser) parseIfLike(kw token.Kind, kind ast.Kind) (*ast.Node, error) {
	head, err := p.expect(kw)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
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

	node := ast.New(kind, head.Span, cond)
	node.WithChildren(body...)

	tail, err := p.parseOptionalElifElse()
	if err != nil {
		return nil, err
	}
	if tail != nil {
		node.WithChildren(tail)
	}
	return node, nil
}

func (p *parser) parseElse() (*ast.Node, error) {
	head, err := p.expect(token.KwElse)
	if err != nil {
		return nil, err
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
	node := ast.New(ast.StatementElse, head.Span)
	node.WithChildren(body...)
	return node, nil
}

// parseOptionalElifElse looks one line ahead, at the if/elif's own
// indentation level, for a trailing `elif` or `else`; if the line isn't
// one of those (or isn't indented enough to belong to this statement at
// all) the cursor is rewound so the caller sees it untouched.
func (p *parser) parseOptionalElifElse() (*ast.Node, error) {
	mark := p.c.mark()
	p.skipBlankLines()
	if !p.consumeIndent(p.level) {
		p.c.reset(mark)
		return nil, nil
	}
	tok, err := p.c.current()
	if err != nil {
		p.c.reset(mark)
		return nil, nil
	}
	switch tok.Kind {
	case token.KwElif:
		return p.parseElif()
	case token.KwElse:
		return p.parseElse()
	default:
		p.c.reset(mark)
		return nil, nil
	}
}

func (p *parser) parseWhile() (*ast.Node, error) {
	head, err := p.expect(token.KwWhile)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
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
	node := ast.New(ast.StatementWhile, head.Span, cond)
	node.WithChildren(body...)
	return node, nil
}

func (p *parser) parseReturn() (*ast.Node, error) {
	head, err := p.expect(token.KwReturn)
	if err != nil {
		return nil, err
	}
	node := ast.New(ast.StatementReturn, head.Span)
	tok, err := p.c.current()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.Newline && tok.Kind != token.Eof {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.WithChildren(expr)
	}
	return node, p.expectLineEnd()
}

func (p *parser) parseAssert() (*ast.Node, error) {
	head, err := p.expect(token.KwAssert)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	node := ast.New(ast.StatementAssert, head.Span, cond)
	return node, p.expectLineEnd()
}
