package codegen

// ValueKind distinguishes the two shapes a lowered value can take, which
// the print-builtin's format selection and the "load if it looks like a
// pointer to primitive storage" rule (spec.md §4.10) both dispatch on.
type ValueKind uint8

const (
	ValueInvalid ValueKind = iota
	ValueInt
	ValuePtr
)

// Value is a reference to an SSA value, a global, or a storage location
// produced by some Builder operation. It carries just enough information
// (its textual handle, backend type, and coarse Int/Ptr kind) for the
// lowering visitor to decide whether to load through it.
type Value struct {
	Handle string // e.g. "%3", "@g1", "%argv.addr"
	Type   Type
	Kind   ValueKind
}

// IsValid reports whether v names a real value (the zero Value does not).
func (v Value) IsValid() bool {
	return v.Handle != ""
}

// FuncID identifies a function created through Builder.CreateFunc.
type FuncID uint32

// BlockID identifies a basic block created through Builder.NewBlock.
type BlockID uint32

// Linkage controls whether a created function is externally visible
// (module-scope def/contract methods) or merely declared (builtins).
type Linkage uint8

const (
	LinkageDefine Linkage = iota
	LinkageExternal
)

// Predicate selects an integer-compare operation. Per spec.md §9's Open
// Question on signedness, equality uses signed semantics and ordering
// uses unsigned — see internal/lower's comparison lowering and DESIGN.md.
type Predicate uint8

const (
	PredEQ Predicate = iota
	PredNE
	PredULT
	PredUGT
	PredULE
	PredUGE
)

// PhiIncoming names one (value, predecessor block) pair for Builder.Phi.
type PhiIncoming struct {
	Value Value
	Block BlockID
}
