package types

// Member is one named, typed data member of a contract, carrying the
// zero-based index the lowering visitor uses for struct-GEP addressing.
type Member struct {
	Name  string
	Type  TypeID
	Index int
}

// ContractInfo is a contract type's layout descriptor: an ordered member
// table plus the backend struct handle and synthesized default-constructor
// name, filled in as the lowering visitor processes a ContractDefinition.
type ContractInfo struct {
	Name              string
	StructType        TypeID
	Members           []Member
	DefaultCtorMangle string // "C____default_init__"
	UserCtorMangle    string // "C____init__", empty if the contract declares none
}

// MemberByName looks up a contract's member by source name, returning the
// Member (which carries its zero-based index) and ok=true on a hit.
func (c *ContractInfo) MemberByName(name string) (Member, bool) {
	for _, m := range c.Members {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// RegisterContract creates (or returns the existing) ContractInfo for
// name, registering a fresh struct TypeID the first time. Per spec.md §9's
// "cyclic self-references" design note, the struct handle is written at
// most once and before the contract's own functions are lowered, so a
// method referring to `self : *C` resolves even while C's own body is
// still being processed.
func (in *Interner) RegisterContract(name string) *ContractInfo {
	if info, ok := in.contracts[name]; ok {
		return info
	}
	info := &ContractInfo{
		Name:       name,
		StructType: in.Intern(Type{Kind: KindContract, Contract: name}),
	}
	in.contracts[name] = info
	return info
}

// Contract looks up an already-registered contract's layout by name.
func (in *Interner) Contract(name string) (*ContractInfo, bool) {
	info, ok := in.contracts[name]
	return info, ok
}
