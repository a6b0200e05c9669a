package symbols

// Mangle flattens an unmangled identifier into its storage key: bare at
// module scope, "ContractName_FunctionName_x" inside a function body
// (spec.md §3's name-mangling rule, verbatim). contract and fn are empty
// outside a contract/function respectively.
func Mangle(contract, fn, name string) string {
	switch {
	case contract == "" && fn == "":
		return name
	case contract == "":
		return fn + "_" + name
	default:
		return contract + "_" + fn + "_" + name
	}
}

// MangleMethod mangles a contract method's own entry in the functions
// table: "ContractName__method" (Mangle with an empty function segment,
// per spec.md §3's "Contract methods are stored in functions as C__m").
func MangleMethod(contract, method string) string {
	return Mangle(contract, "", method)
}

// MangleDefaultCtor names a contract's synthesized default constructor.
func MangleDefaultCtor(contract string) string {
	return contract + "____default_init__"
}

// MangleUserCtor names a contract's user-declared constructor.
func MangleUserCtor(contract string) string {
	return contract + "____init__"
}

// MangleFunction mangles a free or contract-scoped function definition's
// own entry in the functions table: bare at module scope, otherwise
// "ContractName_FunctionName".
func MangleFunction(contract, name string) string {
	if contract == "" {
		return name
	}
	return contract + "_" + name
}
