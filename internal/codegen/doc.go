// Package codegen models the abstract "backend instruction builder" spec.md
// §6 describes: an interface, Builder, naming exactly the operations the
// lowering visitor needs (constants, alloca-in-entry, load/store, signed
// arithmetic, logical/bitwise ops, integer compare, branches, basic
// blocks, phi, function/struct/global creation, calls, ret). Any backend
// satisfying Builder — this package's own TextEmitter, a future bytecode
// emitter, or a real LLVM binding — can stand in for internal/lower.
//
// Grounded on the teacher's internal/backend/llvm/emit*.go: pure-Go
// textual IR emission via a strings.Builder, no cgo, generalized down to
// spec.md §6's smaller operation list.
package codegen
