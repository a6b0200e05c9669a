// Package builtins is the C10 "Built-in Library Declarations" component:
// external declarations for print/abort/is_utf8 and nullary intrinsic
// wrappers for contract_address/caller_address/block_timestamp, all
// expressed purely against the internal/codegen.Builder interface so the
// same declarations work against any backend that satisfies it.
//
// Grounded on original_source's CodegenBuiltin.cpp: externalBuiltinFunctions
// (print -> printf, abort, is_utf8) and internalBuiltinFunctions
// (createIntrinsicWrapper around the three ADVM wasm intrinsics).
package builtins
