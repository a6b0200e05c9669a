package types

import (
	"fmt"

	"fortio.org/safecast"
)

// TypeID is a stable, interned handle for a Type. The zero value,
// NoTypeID, never names a valid type.
type TypeID uint32

const NoTypeID TypeID = 0

// Type is the descriptor behind a TypeID: a primitive scalar, or a
// contract naming its layout via Contract (see ContractInfo).
type Type struct {
	Kind     Kind
	Contract string // set only when Kind == KindContract; key into Interner.contracts
}

// Builtins caches the TypeIDs of every primitive, interned once at
// construction so callers never pay a map lookup for `num`, `bool`, etc.
type Builtins struct {
	Address TypeID
	Bool    TypeID
	Num     TypeID
	Str     TypeID
	I8      TypeID
	I16     TypeID
	I32     TypeID
	I64     TypeID
	U8      TypeID
	U16     TypeID
	U32     TypeID
	U64     TypeID
}

// Interner hands out stable TypeIDs for primitives and contract structs.
// Mechanism mirrors the teacher's internal/types/interner.go: a flat slice
// plus a structural-key index, reserving index 0 for the invalid sentinel.
type Interner struct {
	types     []Type
	index     map[Type]TypeID
	builtins  Builtins
	contracts map[string]*ContractInfo
}

// NewInterner builds an interner pre-seeded with every primitive type.
func NewInterner() *Interner {
	in := &Interner{
		index:     make(map[Type]TypeID, 32),
		contracts: make(map[string]*ContractInfo),
	}
	in.types = append(in.types, Type{Kind: KindInvalid}) // reserve 0

	in.builtins.Address = in.Intern(Type{Kind: KindAddress})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Num = in.Intern(Type{Kind: KindNum})
	in.builtins.Str = in.Intern(Type{Kind: KindStr})
	in.builtins.I8 = in.Intern(Type{Kind: KindI8})
	in.builtins.I16 = in.Intern(Type{Kind: KindI16})
	in.builtins.I32 = in.Intern(Type{Kind: KindI32})
	in.builtins.I64 = in.Intern(Type{Kind: KindI64})
	in.builtins.U8 = in.Intern(Type{Kind: KindU8})
	in.builtins.U16 = in.Intern(Type{Kind: KindU16})
	in.builtins.U32 = in.Intern(Type{Kind: KindU32})
	in.builtins.U64 = in.Intern(Type{Kind: KindU64})
	return in
}

// Builtins returns the cached primitive TypeIDs.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern returns t's stable TypeID, assigning a fresh one on first sight.
func (in *Interner) Intern(t Type) TypeID {
	if id, ok := in.index[t]; ok {
		return id
	}
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("types: too many interned types: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	in.index[t] = id
	return id
}

// Lookup returns the descriptor behind id.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics on an invalid id; used where the caller has already
// established the id came from this interner.
func (in *Interner) MustLookup(id TypeID) Type {
	t, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return t
}
