package parser

import (
	"aoc/internal/ast"
	"aoc/internal/token"
)

// parseContractDef recognizes `contract name: NEWLINE BODY`, where BODY is
// a mix of `let` member declarations, `def` methods (whose first parameter
// may be a bare `self`), and StatementPass per spec.md §4.6. p.inContract
// is set for the duration of the body parse so `self` validates correctly
// in any nested `def`, and restored to its previous value afterward so
// contracts cannot nest self-legality into unrelated top-level functions.
func (p *parser) parseContractDef() (*ast.Node, error) {
	head, err := p.expect(token.KwContract)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.OpColon); err != nil {
		return nil, err
	}
	if err := p.expectLineEnd(); err != nil {
		return nil, err
	}

	wasInContract := p.inContract
	p.inContract = true
	body, err := p.parseBody()
	p.inContract = wasInContract
	if err != nil {
		return nil, err
	}

	node := ast.New(ast.ContractDefinition, head.Span, ast.NewIdentifier(nameTok.Text, nameTok.Span))
	node.WithChildren(body...)
	return node, nil
}
