package lower

import (
	"aoc/internal/ast"
	"aoc/internal/codegen"
)

// LowerModule implements C12 (spec.md §4.11): create `main`, walk the
// ModuleDefinition's children routing contract/function definitions into
// their own functions and every other top-level statement into `main`,
// then emit `main`'s `ret 0`. In a production build `main` is erased
// afterward so the module is a pure library for the target VM's dynamic
// dispatch; a test build keeps it for direct execution.
func LowerModule(c *Context, root *ast.Node, production bool) error {
	mainType := c.B.FuncType(codegen.TypeI32, nil)
	mainID := c.B.CreateFunc("main", mainType, codegen.LinkageDefine)
	mainEntry := c.B.EntryBlock(mainID)
	c.CurrentFunc = mainID
	c.B.SetInsertPoint(mainID, mainEntry)

	inMain := true
	for _, child := range root.Children {
		switch child.Kind {
		case ast.ContractDefinition, ast.FunctionDefinition:
			if _, err := c.lowerStmt(child); err != nil {
				return err
			}
			inMain = false
		default:
			if !inMain {
				c.CurrentFunc = mainID
				c.B.SetInsertPoint(mainID, mainEntry)
				inMain = true
			}
			if _, err := c.lowerStmt(child); err != nil {
				return err
			}
		}
	}

	if !inMain {
		c.CurrentFunc = mainID
		c.B.SetInsertPoint(mainID, mainEntry)
	}
	c.B.Ret(c.B.ConstInt(0, codegen.TypeI32))

	if production {
		c.B.EraseFunc(mainID)
	}
	return nil
}
