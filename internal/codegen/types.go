package codegen

import "fmt"

// Type is a backend type reference: an opaque textual name (e.g. "i64",
// "i8*", "%struct.Addition*"). The lowering visitor never inspects the
// Name directly; it obtains Types from the Builder's type constructors.
//
// A Type built by Builder.FuncType additionally carries its return and
// parameter types, so Builder.CreateFunc can recover a function's
// signature without a separate bookkeeping side channel.
type Type struct {
	name       string
	funcRet    *Type
	funcParams []Type
}

func (t Type) String() string { return t.name }

// Equal reports whether t and other name the same backend type. Type isn't
// comparable with == (funcParams is a slice), so callers that need identity
// (e.g. "is this function's return type void") go through this instead.
func (t Type) Equal(other Type) bool { return t.name == other.name }

// IsPointer reports whether t names a pointer type, by the textual
// convention every constructor below follows ("..." + "*").
func (t Type) IsPointer() bool {
	return len(t.name) > 0 && t.name[len(t.name)-1] == '*'
}

// Well-known scalar types every target-independent builder must provide.
var (
	TypeVoid = Type{name: "void"}
	TypeI1   = Type{name: "i1"} // boolean / comparison result
	TypeI8   = Type{name: "i8"}
	TypeI16  = Type{name: "i16"}
	TypeI32  = Type{name: "i32"}
	TypeI64  = Type{name: "i64"}
	TypeI8P  = Type{name: "i8*"} // string / generic pointer
)

// PointerTo returns the pointer type to t.
func PointerTo(t Type) Type {
	return Type{name: t.name + "*"}
}

// ElementType strips one level of pointer indirection from t, the inverse
// of PointerTo. Used by internal/lower to recover the type a storage
// handle (an alloca or struct-GEP result) points to, so it can load
// through that handle. Returns t unchanged if it isn't a pointer.
func ElementType(t Type) Type {
	if !t.IsPointer() {
		return t
	}
	return Type{name: t.name[:len(t.name)-1]}
}

// NamedStruct returns the (non-pointer) struct type named name.
func NamedStruct(name string) Type {
	return Type{name: fmt.Sprintf("%%struct.%s", name)}
}

// IntWidth returns the backend integer type for a bit width (8/16/32/64).
// num-typed values use 64 bits, matching the spec's "Number -> signed
// 64-bit integer constant" rule for literals.
func IntWidth(bits int) Type {
	switch bits {
	case 8:
		return TypeI8
	case 16:
		return TypeI16
	case 32:
		return TypeI32
	default:
		return TypeI64
	}
}
