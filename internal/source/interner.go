package source

import (
	"slices"
	"sync"
)

// StringID is an interned string handle, used for identifier and mangled
// names so symbol tables and the IR can compare names by integer equality.
type StringID uint32

const NoStringID StringID = 0

// Interner deduplicates strings behind small integer handles. Safe for
// concurrent use so the driver can intern names from imported modules
// compiled on separate goroutines before merging symbol tables.
type Interner struct {
	mu    sync.RWMutex
	byID  []string // index -> string (byID[0] == "" for NoStringID)
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern returns s's ID, assigning a new one if s hasn't been seen before.
func (i *Interner) Intern(s string) StringID {
	i.mu.RLock()
	if id, ok := i.index[s]; ok {
		i.mu.RUnlock()
		return id
	}
	i.mu.RUnlock()

	cpy := string([]byte(s)) // detach from caller's backing array

	i.mu.Lock()
	defer i.mu.Unlock()
	if id, ok := i.index[cpy]; ok {
		return id
	}
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// InternBytes interns b without requiring the caller to allocate a string.
func (i *Interner) InternBytes(b []byte) StringID {
	return i.Intern(string(b))
}

// Lookup returns the string behind id, or ok=false if id is out of range.
func (i *Interner) Lookup(id StringID) (string, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(i.byID) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup returns the string behind id and panics if id is invalid.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("source: invalid string ID")
	}
	return s
}

// Len returns the number of interned strings, including NoStringID.
func (i *Interner) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.byID)
}

// Snapshot returns a copy of every interned string, indexed by StringID.
func (i *Interner) Snapshot() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return slices.Clone(i.byID)
}
