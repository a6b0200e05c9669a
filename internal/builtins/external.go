package builtins

import "aoc/internal/codegen"

// External names the three externally-linked builtins spec.md §4.9 lists:
// print (lowered to a printf-style call), abort, and is_utf8.
type External struct {
	Print  codegen.FuncID
	Abort  codegen.FuncID
	IsUTF8 codegen.FuncID
}

// RegisterExternal declares print/abort/is_utf8 against b as external
// (un-defined) functions, mirroring CodegenBuiltin.cpp's
// externalBuiltinFunctions: print is declared against a variadic
// printf-shaped signature (a fixed leading format-string parameter; the
// Builder's Call never validates arity against the declared params, so
// extra variadic arguments at a call site render fine).
func RegisterExternal(b codegen.Builder) *External {
	printType := b.FuncType(codegen.TypeI32, []codegen.Type{codegen.TypeI8P})
	printID := b.CreateFunc("printf", printType, codegen.LinkageExternal)

	abortType := b.FuncType(codegen.TypeVoid, nil)
	abortID := b.CreateFunc("abort", abortType, codegen.LinkageExternal)

	isUTF8Type := b.FuncType(codegen.TypeI32, []codegen.Type{codegen.TypeI8P})
	isUTF8ID := b.CreateFunc("is_utf8", isUTF8Type, codegen.LinkageExternal)

	return &External{Print: printID, Abort: abortID, IsUTF8: isUTF8ID}
}

// FormatSpecifier selects print's per-argument printf conversion: "%d "
// for an integer-valued operand, "%s " for a pointer-valued one (the
// string/pointer case), per spec.md §4.9's "format string for numeric vs
// string/pointer argument". internal/lower builds the full format string
// by concatenating one of these per call argument before emitting the
// printf call.
func FormatSpecifier(kind codegen.ValueKind) string {
	if kind == codegen.ValuePtr {
		return "%s "
	}
	return "%d "
}
