// Package lower implements C11 (the IR Lowering Visitor) and C12 (Module
// Assembly) from spec.md §4.10-§4.11: walking a parsed ast.Node tree and
// emitting instructions through the abstract internal/codegen.Builder,
// using internal/types for type bookkeeping, internal/symbols for name
// resolution/mangling, and internal/builtins for the external/internal
// builtin surface.
package lower

import (
	"aoc/internal/builtins"
	"aoc/internal/codegen"
	"aoc/internal/symbols"
	"aoc/internal/types"
)

// Context threads every piece of state the lowering visitor needs across
// a single module: the backend builder, the type interner, the symbol
// table, the registered builtin surface, and the function currently being
// emitted into (so nested alloca/self-binding calls know which FuncID to
// address without passing it through every lowering call).
type Context struct {
	B         codegen.Builder
	Interner  *types.Interner
	Symbols   *symbols.Table
	External  *builtins.External
	Intrinsics *builtins.Intrinsics

	// CurrentFunc is the FuncID new local variables are allocated into.
	// Module assembly sets it to main's FuncID before lowering any
	// top-level statement, and lowerFunctionDefinition/synthesizeDefaultCtor
	// swap it in and out around a function body's own emission.
	CurrentFunc codegen.FuncID

	// ImportedModules accumulates each `import` statement's dotted path in
	// source order, per spec.md §4.10's import side effect (property 15).
	ImportedModules []string
}

// NewContext wires a fresh lowering context around b: registers the
// external/internal builtin surface (C10) and builds empty type/symbol
// tables (C8/C9), exactly the dependencies C11 needs before visiting a
// single ast.Node.
func NewContext(b codegen.Builder) *Context {
	return &Context{
		B:          b,
		Interner:   types.NewInterner(),
		Symbols:    symbols.NewTable(),
		External:   builtins.RegisterExternal(b),
		Intrinsics: builtins.RegisterIntrinsics(b),
	}
}
