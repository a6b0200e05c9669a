// Package cache persists a msgpack-serialized summary of a lowered
// module's public surface (every function key and contract layout), keyed
// by a content digest of the source that produced it, so a repeat build
// can skip compiling an imported module whose source is unchanged (the
// entry file itself is always compiled). This is a smaller
// counterpart of the teacher's internal/driver.DiskCache: that cache keys
// a multi-module dependency graph's ModuleMeta by an aggregate
// content-plus-dependency hash; this spec has one compilation unit per
// build; SchemaVersion is invalidated by digest alone.
package cache

import (
	"crypto/sha256"

	"aoc/internal/symbols"
	"aoc/internal/types"
)

// schemaVersion is bumped whenever Summary's shape changes incompatibly;
// Get refuses to return a payload encoded under a different version.
const schemaVersion uint16 = 1

// Digest identifies a cached Summary by the SHA-256 of the source bytes
// that produced it.
type Digest [32]byte

// Hash computes the Digest for a source file's content.
func Hash(content []byte) Digest {
	return Digest(sha256.Sum256(content))
}

// MemberSummary is one contract data member's name and resolved kind.
type MemberSummary struct {
	Name string
	Kind string
}

// ContractSummary is one contract's public layout.
type ContractSummary struct {
	Name              string
	Members           []MemberSummary
	DefaultCtorMangle string
	UserCtorMangle    string
}

// Summary is the cached, serializable public surface of one lowered
// module.
type Summary struct {
	Schema       uint16
	FunctionKeys []string
	Contracts    []ContractSummary
}

// Build captures table's and interner's current contents into a Summary.
// Called once lowering has finished, so every function/contract the
// module declares is registered.
func Build(table *symbols.Table, interner *types.Interner) Summary {
	s := Summary{
		Schema:       schemaVersion,
		FunctionKeys: table.FunctionKeys(),
	}
	for name, info := range table.Contracts() {
		cs := ContractSummary{
			Name:              name,
			DefaultCtorMangle: info.DefaultCtorMangle,
			UserCtorMangle:    info.UserCtorMangle,
		}
		for _, m := range info.Members {
			kind := ""
			if t, ok := interner.Lookup(m.Type); ok {
				kind = t.Kind.String()
			}
			cs.Members = append(cs.Members, MemberSummary{Name: m.Name, Kind: kind})
		}
		s.Contracts = append(s.Contracts, cs)
	}
	return s
}

// Valid reports whether s was decoded under the schema version Build
// currently produces.
func (s Summary) Valid() bool {
	return s.Schema == schemaVersion
}
