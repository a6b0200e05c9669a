package builtins

import "aoc/internal/codegen"

// Intrinsics names the three internal nullary wrappers spec.md §4.9
// lists: each calls a platform intrinsic and returns its value unchanged.
type Intrinsics struct {
	ContractAddress codegen.FuncID
	CallerAddress   codegen.FuncID
	BlockTimestamp  codegen.FuncID
}

// wrapIntrinsic is the Go analogue of CodegenBuiltin.cpp's
// createIntrinsicWrapper: declare the raw intrinsic as an external
// function, then define a same-named wrapper whose body is just "call the
// intrinsic, return its result".
func wrapIntrinsic(b codegen.Builder, ret codegen.Type, intrinsicName, wrapperName string) codegen.FuncID {
	intrinsicType := b.FuncType(ret, nil)
	intrinsic := b.CreateFunc(intrinsicName, intrinsicType, codegen.LinkageExternal)

	wrapperType := b.FuncType(ret, nil)
	wrapper := b.CreateFunc(wrapperName, wrapperType, codegen.LinkageDefine)
	b.SetInsertPoint(wrapper, b.EntryBlock(wrapper))

	result := b.Call(intrinsic, nil)
	if ret.Equal(codegen.TypeVoid) {
		b.RetVoid()
	} else {
		b.Ret(result)
	}
	return wrapper
}

// RegisterIntrinsics wraps the three ADVM wasm intrinsics the original
// tool exposes: contract_address and caller_address return a pointer
// (TypeI8P), block_timestamp returns an i64.
func RegisterIntrinsics(b codegen.Builder) *Intrinsics {
	return &Intrinsics{
		ContractAddress: wrapIntrinsic(b, codegen.TypeI8P, "llvm.wasm.advm.contract.addr", "contract_address"),
		CallerAddress:   wrapIntrinsic(b, codegen.TypeI8P, "llvm.wasm.advm.caller.addr", "caller_address"),
		BlockTimestamp:  wrapIntrinsic(b, codegen.TypeI64, "llvm.wasm.advm.block.ts", "block_timestamp"),
	}
}
