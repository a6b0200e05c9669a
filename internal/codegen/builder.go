package codegen

// Builder is the abstract backend instruction builder spec.md §6 names.
// internal/lower depends only on this interface, never on a concrete
// emitter, so a bytecode-oriented ADVM backend could satisfy the same
// contract later ("Any engine that provides an SSA-like builder with
// these operations ... satisfies the contract").
type Builder interface {
	// Constants.
	ConstInt(v int64, t Type) Value
	ConstString(s string) Value // global string pointer (TypeI8P)

	// Memory.
	AllocaEntry(f FuncID, t Type, name string) Value
	Load(ptr Value, t Type) Value
	Store(ptr, val Value)

	// Signed integer arithmetic.
	Add(lhs, rhs Value) Value
	Sub(lhs, rhs Value) Value
	Mul(lhs, rhs Value) Value
	SDiv(lhs, rhs Value) Value
	SRem(lhs, rhs Value) Value

	// Logical.
	LogicalAnd(lhs, rhs Value) Value
	LogicalOr(lhs, rhs Value) Value
	LogicalNot(v Value) Value

	// Bitwise.
	BitAnd(lhs, rhs Value) Value
	BitOr(lhs, rhs Value) Value
	BitXor(lhs, rhs Value) Value
	BitNot(v Value) Value
	Shl(lhs, rhs Value) Value
	AShr(lhs, rhs Value) Value

	// Comparison.
	ICmp(pred Predicate, lhs, rhs Value) Value

	// Control flow.
	NewBlock(name string) BlockID
	// SetInsertPoint moves the insertion point to block b of function f,
	// switching the "current function" every subsequent emitting call
	// (NewBlock, Br, CondBr, Phi, arithmetic, ...) targets. This explicit
	// function handle is what lets module assembly (C12) interleave
	// `main`'s statements with fully-lowered function/contract
	// definitions and then resume emitting into `main` afterward.
	SetInsertPoint(f FuncID, b BlockID)
	CurrentBlock() BlockID
	Br(target BlockID)
	CondBr(cond Value, thenB, elseB BlockID)
	Phi(t Type, incoming []PhiIncoming) Value

	// Functions.
	FuncType(ret Type, params []Type) Type
	CreateFunc(name string, ft Type, linkage Linkage) FuncID
	EntryBlock(f FuncID) BlockID
	Param(f FuncID, idx int) Value
	LookupFunc(name string) (FuncID, bool)
	Call(callee FuncID, args []Value) Value
	Ret(v Value)   // value return
	RetVoid()      // void return
	EraseFunc(f FuncID)

	// Aggregates and globals.
	StructType(name string) Type
	SetBody(t Type, fields []Type)
	StructGEP(base Value, t Type, idx int) Value
	GlobalVar(name string, t Type, init Value) Value
	GlobalString(s string) Value

	// Final rendering.
	String() string
}
