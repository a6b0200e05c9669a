package lower

import (
	"aoc/internal/ast"
	"aoc/internal/codegen"
)

// lowerStmt dispatches one statement-or-definition-shaped node. Anything
// not recognized here is a plain expression statement, lowered (and its
// value discarded by every caller except an if/elif/else chain, which
// uses the last statement's value as the block's).
func (c *Context) lowerStmt(n *ast.Node) (codegen.Value, error) {
	switch n.Kind {
	case ast.StatementPass:
		return codegen.Value{}, nil
	case ast.StatementIf, ast.StatementElif:
		return c.lowerIfLike(n)
	case ast.StatementElse:
		return c.lowerStmts(n.Children)
	case ast.StatementWhile:
		return c.lowerWhile(n)
	case ast.StatementReturn:
		return c.lowerReturn(n)
	case ast.StatementAssert:
		return c.lowerAssert(n)
	case ast.StatementImport:
		return c.lowerImport(n)
	case ast.VariableDefinition:
		return c.lowerVariableDefinition(n)
	case ast.FunctionDefinition:
		return c.lowerFunctionDefinition(n)
	case ast.ContractDefinition:
		return c.lowerContractDefinition(n)
	default:
		return c.lowerExpr(n)
	}
}

// lowerStmts lowers a sequence of statements in order, returning the last
// one's value (used by a block's surrounding if/elif/else phi join).
func (c *Context) lowerStmts(stmts []*ast.Node) (codegen.Value, error) {
	var last codegen.Value
	for _, s := range stmts {
		v, err := c.lowerStmt(s)
		if err != nil {
			return codegen.Value{}, err
		}
		last = v
	}
	return last, nil
}

// lowerIfLike lowers both StatementIf and StatementElif: children are
// [cond, body..., optional tail], where tail (if present) is the single
// trailing StatementElif/StatementElse child the parser's chain-shape
// (property 9) attaches. Both branches jump to a shared merge block; if
// both produced a value, they're joined with a phi.
func (c *Context) lowerIfLike(n *ast.Node) (codegen.Value, error) {
	cond := n.Children[0]
	rest := n.Children[1:]
	var tail *ast.Node
	if len(rest) > 0 {
		last := rest[len(rest)-1]
		if last.Kind == ast.StatementElif || last.Kind == ast.StatementElse {
			tail = last
			rest = rest[:len(rest)-1]
		}
	}
	body := rest

	condVal, err := c.lowerExprLoaded(cond)
	if err != nil {
		return codegen.Value{}, err
	}
	cmp := c.B.ICmp(codegen.PredNE, condVal, c.B.ConstInt(0, condVal.Type))

	thenBlock := c.B.NewBlock("if.then")
	elseBlock := c.B.NewBlock("if.else")
	mergeBlock := c.B.NewBlock("if.merge")
	c.B.CondBr(cmp, thenBlock, elseBlock)

	c.B.SetInsertPoint(c.CurrentFunc, thenBlock)
	thenVal, err := c.lowerStmts(body)
	if err != nil {
		return codegen.Value{}, err
	}
	thenEnd := c.B.CurrentBlock()
	c.B.Br(mergeBlock)

	c.B.SetInsertPoint(c.CurrentFunc, elseBlock)
	var elseVal codegen.Value
	if tail != nil {
		elseVal, err = c.lowerStmt(tail)
		if err != nil {
			return codegen.Value{}, err
		}
	}
	elseEnd := c.B.CurrentBlock()
	c.B.Br(mergeBlock)

	c.B.SetInsertPoint(c.CurrentFunc, mergeBlock)
	if thenVal.IsValid() && elseVal.IsValid() {
		return c.B.Phi(thenVal.Type, []codegen.PhiIncoming{
			{Value: thenVal, Block: thenEnd},
			{Value: elseVal, Block: elseEnd},
		}), nil
	}
	return thenVal, nil
}

// lowerWhile lowers the three-block cond/body/after loop shape: children
// are [cond, body...].
func (c *Context) lowerWhile(n *ast.Node) (codegen.Value, error) {
	cond := n.Children[0]
	body := n.Children[1:]

	condBlock := c.B.NewBlock("while.cond")
	bodyBlock := c.B.NewBlock("while.body")
	afterBlock := c.B.NewBlock("while.after")
	c.B.Br(condBlock)

	c.B.SetInsertPoint(c.CurrentFunc, condBlock)
	condVal, err := c.lowerExprLoaded(cond)
	if err != nil {
		return codegen.Value{}, err
	}
	cmp := c.B.ICmp(codegen.PredNE, condVal, c.B.ConstInt(0, condVal.Type))
	c.B.CondBr(cmp, bodyBlock, afterBlock)

	c.B.SetInsertPoint(c.CurrentFunc, bodyBlock)
	if _, err := c.lowerStmts(body); err != nil {
		return codegen.Value{}, err
	}
	c.B.Br(condBlock)

	c.B.SetInsertPoint(c.CurrentFunc, afterBlock)
	return codegen.Value{}, nil
}

// lowerReturn emits a void return (no child) or loads and returns the
// single expression child's value.
func (c *Context) lowerReturn(n *ast.Node) (codegen.Value, error) {
	if len(n.Children) == 0 {
		c.B.RetVoid()
		return codegen.Value{}, nil
	}
	v, err := c.lowerExprLoaded(n.Children[0])
	if err != nil {
		return codegen.Value{}, err
	}
	c.B.Ret(v)
	return v, nil
}

// lowerAssert branches to a fail block that calls abort when the
// asserted condition is false (== 0), otherwise falls straight through.
func (c *Context) lowerAssert(n *ast.Node) (codegen.Value, error) {
	condVal, err := c.lowerExprLoaded(n.Children[0])
	if err != nil {
		return codegen.Value{}, err
	}
	cmp := c.B.ICmp(codegen.PredEQ, condVal, c.B.ConstInt(0, condVal.Type))

	failBlock := c.B.NewBlock("assert.fail")
	contBlock := c.B.NewBlock("assert.cont")
	c.B.CondBr(cmp, failBlock, contBlock)

	c.B.SetInsertPoint(c.CurrentFunc, failBlock)
	c.B.Call(c.External.Abort, nil)
	c.B.Br(contBlock)

	c.B.SetInsertPoint(c.CurrentFunc, contBlock)
	return codegen.Value{}, nil
}

// lowerImport records the dotted module path; imports have no codegen
// effect beyond this bookkeeping (spec.md §4.10 property 15).
func (c *Context) lowerImport(n *ast.Node) (codegen.Value, error) {
	c.ImportedModules = append(c.ImportedModules, n.Children[0].Identifier)
	return codegen.Value{}, nil
}
