package symbols

import (
	"strings"

	"aoc/internal/codegen"
	"aoc/internal/types"
)

// Table is the C9 "Symbol Table" component: flat maps keyed by mangled
// name, plus the bookkeeping the mangler consults. Grounded in the
// teacher's internal/symbols.Table shape (one struct aggregating several
// named lookup tables), cut down to the spec's simpler flat-map design —
// see DESIGN.md's "Mutable pointer-graph symbol tables" redesign note.
type Table struct {
	variables map[string]codegen.Value
	functions map[string]codegen.FuncID
	contracts map[string]*types.ContractInfo

	currentContractName string
	currentFunctionName string
}

// NewTable returns an empty symbol table.
func NewTable() *Table {
	return &Table{
		variables: make(map[string]codegen.Value),
		functions: make(map[string]codegen.FuncID),
		contracts: make(map[string]*types.ContractInfo),
	}
}

// CurrentContract and CurrentFunction report the mangling context the
// lowering visitor is presently inside; both empty at module scope.
func (t *Table) CurrentContract() string { return t.currentContractName }
func (t *Table) CurrentFunction() string { return t.currentFunctionName }

// EnterContract and EnterFunction push mangling context; the lowering
// visitor restores the previous value itself once the body is done (there
// is deliberately no stack here, mirroring the "current*Name" fields spec
// §4.8 calls out as the context's own bookkeeping, not the table's).
func (t *Table) EnterContract(name string) (previous string) {
	previous = t.currentContractName
	t.currentContractName = name
	return previous
}

func (t *Table) EnterFunction(name string) (previous string) {
	previous = t.currentFunctionName
	t.currentFunctionName = name
	return previous
}

func (t *Table) LeaveContract(previous string) { t.currentContractName = previous }
func (t *Table) LeaveFunction(previous string) { t.currentFunctionName = previous }

// Mangle applies §3's mangling rule using the table's current contract and
// function context.
func (t *Table) Mangle(name string) string {
	return Mangle(t.currentContractName, t.currentFunctionName, name)
}

// DefineVariable registers name (mangled under the current context) with
// its backend value handle.
func (t *Table) DefineVariable(name string, v codegen.Value) string {
	key := t.Mangle(name)
	t.variables[key] = v
	return key
}

// LookupVariable resolves an unmangled identifier under the current
// mangling context, the way an ordinary name reference does.
func (t *Table) LookupVariable(name string) (codegen.Value, bool) {
	v, ok := t.variables[t.Mangle(name)]
	return v, ok
}

// LookupVariableKey resolves an already-mangled key directly, used when a
// caller (e.g. member-call self-binding) has computed the mangled name
// itself.
func (t *Table) LookupVariableKey(key string) (codegen.Value, bool) {
	v, ok := t.variables[key]
	return v, ok
}

// DefineFunction registers a function's own functions-table entry under an
// already-mangled key (see MangleFunction / MangleMethod / MangleDefaultCtor
// / MangleUserCtor — the function's own name is never mangled through the
// three-part Mangle used for variable references).
func (t *Table) DefineFunction(key string, id codegen.FuncID) {
	t.functions[key] = id
}

// LookupFunction resolves an already-mangled function key.
func (t *Table) LookupFunction(key string) (codegen.FuncID, bool) {
	id, ok := t.functions[key]
	return id, ok
}

// DefineContract registers a contract's layout descriptor under its bare
// name (contract names are never mangled; they are the mangling prefix).
func (t *Table) DefineContract(name string, info *types.ContractInfo) {
	t.contracts[name] = info
}

// Contracts returns the table's live contracts map, for callers (the
// internal/cache module summary builder) that need to enumerate every
// contract registered so far rather than look one up by name.
func (t *Table) Contracts() map[string]*types.ContractInfo {
	return t.contracts
}

// FunctionKeys returns every mangled function key registered so far, for
// the same kind of whole-table enumeration Contracts serves.
func (t *Table) FunctionKeys() []string {
	keys := make([]string, 0, len(t.functions))
	for k := range t.functions {
		keys = append(keys, k)
	}
	return keys
}

// LookupContract resolves a contract type by its bare name.
func (t *Table) LookupContract(name string) (*types.ContractInfo, bool) {
	info, ok := t.contracts[name]
	return info, ok
}

// ExitScope implements spec.md §4.8's scope-exit rule: delete every
// variables entry whose mangled key begins with prefix, without ever
// walking a pointer graph of scopes. Callers pass the exact mangling
// prefix of the scope that just ended (e.g. "C_F_" for a function F
// inside contract C, or "F_" for a module-scope function F).
func (t *Table) ExitScope(prefix string) {
	for key := range t.variables {
		if strings.HasPrefix(key, prefix) {
			delete(t.variables, key)
		}
	}
}

// FunctionPrefix returns the mangling prefix spanning every variable a
// function F (inside contract C, or bare at module scope) can have
// defined, suitable for ExitScope. An empty contract yields "F_"; a
// non-empty one yields "C_F_".
func FunctionPrefix(contract, fn string) string {
	if contract == "" {
		return fn + "_"
	}
	return contract + "_" + fn + "_"
}
