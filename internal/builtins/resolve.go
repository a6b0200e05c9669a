package builtins

import "aoc/internal/codegen"

// Name constants for the source-level identifiers a call site can resolve
// to, used by internal/lower's resolution order (spec.md §4.9): contract
// type, then print, then these external/internal builtins, then user
// functions.
const (
	NamePrint           = "print"
	NameAbort           = "abort"
	NameIsUTF8          = "is_utf8"
	NameContractAddress = "contract_address"
	NameCallerAddress   = "caller_address"
	NameBlockTimestamp  = "block_timestamp"
)

// IsExternal reports whether name is one of the external builtins
// (excluding print, which gets its own specialization step ahead of the
// external-builtin step in the resolution order).
func IsExternal(name string) bool {
	return name == NameAbort || name == NameIsUTF8
}

// IsInternal reports whether name is one of the internal intrinsic
// wrappers.
func IsInternal(name string) bool {
	switch name {
	case NameContractAddress, NameCallerAddress, NameBlockTimestamp:
		return true
	default:
		return false
	}
}

// FuncIDFor resolves an external or internal builtin name to its
// registered FuncID, reporting ok=false for any other identifier (which
// the caller should then try to resolve as a user function).
func (e *External) FuncIDFor(name string) (id codegen.FuncID, ok bool) {
	switch name {
	case NameAbort:
		return e.Abort, true
	case NameIsUTF8:
		return e.IsUTF8, true
	default:
		return 0, false
	}
}

// FuncIDFor resolves an internal intrinsic wrapper name.
func (in *Intrinsics) FuncIDFor(name string) (id codegen.FuncID, ok bool) {
	switch name {
	case NameContractAddress:
		return in.ContractAddress, true
	case NameCallerAddress:
		return in.CallerAddress, true
	case NameBlockTimestamp:
		return in.BlockTimestamp, true
	default:
		return 0, false
	}
}
