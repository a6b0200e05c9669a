package lower

import (
	"aoc/internal/ast"
	"aoc/internal/codegen"
	"aoc/internal/diag"
	"aoc/internal/symbols"
	"aoc/internal/types"
)

// extractLetParts splits a VariableDefinition's children into its name,
// optional declared type, and optional initializer, per fn.go/let.go's
// fixed child layout: [name, optional TypeID, optional init].
func extractLetParts(n *ast.Node) (name string, kind types.Kind, hasDeclared bool, init *ast.Node) {
	name = n.Children[0].Identifier
	idx := 1
	if idx < len(n.Children) && n.Children[idx].Kind == ast.KindTypeID {
		kind = typesKindFromToken(n.Children[idx].Type)
		hasDeclared = true
		idx++
	}
	if idx < len(n.Children) {
		init = n.Children[idx]
	}
	return
}

// lowerVariableDefinition handles a `let` binding at module or function
// scope. `let v = Contract(...)` is special-cased into
// lowerContractConstruction since only a `let` initializer ever has a
// named storage slot ready for a user constructor to write through.
func (c *Context) lowerVariableDefinition(n *ast.Node) (codegen.Value, error) {
	name, declaredKind, hasDeclared, init := extractLetParts(n)

	if !hasDeclared && init != nil {
		target := unwrapParens(init)
		if target.Kind == ast.Call && len(target.Children) >= 1 && target.Children[0].Kind == ast.KindIdentifier {
			if info, ok := c.Symbols.LookupContract(target.Children[0].Identifier); ok {
				return c.lowerContractConstruction(name, info, target)
			}
		}
	}

	kind := declaredKind
	if !hasDeclared {
		kind = inferKind(init)
	}
	ct := codegenTypeFor(kind)
	storage := c.B.AllocaEntry(c.CurrentFunc, ct, name)

	var val codegen.Value
	var err error
	if init != nil {
		val, err = c.lowerExprLoaded(init)
		if err != nil {
			return codegen.Value{}, err
		}
	} else {
		val = c.zeroValue(kind)
	}
	c.B.Store(storage, val)
	c.Symbols.DefineVariable(name, storage)
	return storage, nil
}

// lowerContractConstruction implements spec.md §4.9's contract-type call
// resolution: allocate varName's storage as the struct type itself, call
// the synthesized default constructor and store its result, then (if a
// user constructor exists) call it with that storage as the self
// argument — the storage slot IS the instance pointer the user
// constructor and every later member access/method call needs.
func (c *Context) lowerContractConstruction(varName string, info *types.ContractInfo, callNode *ast.Node) (codegen.Value, error) {
	structType := codegen.NamedStruct(info.Name)
	storage := c.B.AllocaEntry(c.CurrentFunc, structType, varName)

	defaultFn, ok := c.Symbols.LookupFunction(info.DefaultCtorMangle)
	if !ok {
		return codegen.Value{}, diag.Compile(callNode.Span, "contract %q missing default constructor", info.Name)
	}
	c.B.Store(storage, c.B.Call(defaultFn, nil))

	if info.UserCtorMangle != "" {
		userFn, ok := c.Symbols.LookupFunction(info.UserCtorMangle)
		if !ok {
			return codegen.Value{}, diag.Compile(callNode.Span, "contract %q missing user constructor", info.Name)
		}
		args := []codegen.Value{storage}
		for _, a := range callNode.Children[1:] {
			v, err := c.lowerExprLoaded(a)
			if err != nil {
				return codegen.Value{}, err
			}
			args = append(args, v)
		}
		c.B.Call(userFn, args)
	}

	c.Symbols.DefineVariable(varName, storage)
	return storage, nil
}

// lowerFunctionDefinition lowers one `def`, whether a free module-scope
// function or a contract method (including the user-declared `__init__`
// constructor, mangled to info.UserCtorMangle rather than the ordinary
// method key). Children are [name, params..., optional return TypeID,
// body...] per fn.go's fixed layout.
func (c *Context) lowerFunctionDefinition(n *ast.Node) (codegen.Value, error) {
	fnName := n.Children[0].Identifier
	idx := 1
	var params []*ast.Node
	for idx < len(n.Children) && n.Children[idx].Kind == ast.FunctionParameterDefinition {
		params = append(params, n.Children[idx])
		idx++
	}
	var retTypeNode *ast.Node
	if idx < len(n.Children) && n.Children[idx].Kind == ast.KindTypeID {
		retTypeNode = n.Children[idx]
		idx++
	}
	body := n.Children[idx:]

	contractName := c.Symbols.CurrentContract()

	paramTypes := make([]codegen.Type, len(params))
	paramNames := make([]string, len(params))
	for i, p := range params {
		if len(p.Children) == 1 {
			paramNames[i] = "self"
			paramTypes[i] = codegen.PointerTo(codegen.NamedStruct(contractName))
		} else {
			paramNames[i] = p.Children[0].Identifier
			paramTypes[i] = codegenTypeFor(typesKindFromToken(p.Children[1].Type))
		}
	}

	retType := codegen.TypeVoid
	if retTypeNode != nil {
		retType = codegenTypeFor(typesKindFromToken(retTypeNode.Type))
	}

	var mangledKey string
	switch {
	case contractName == "":
		mangledKey = symbols.MangleFunction("", fnName)
	case fnName == "__init__":
		mangledKey = symbols.MangleUserCtor(contractName)
	default:
		mangledKey = symbols.MangleMethod(contractName, fnName)
	}

	ft := c.B.FuncType(retType, paramTypes)
	fnID := c.B.CreateFunc(mangledKey, ft, codegen.LinkageDefine)
	c.Symbols.DefineFunction(mangledKey, fnID)
	if fnName == "__init__" && contractName != "" {
		if info, ok := c.Symbols.LookupContract(contractName); ok {
			info.UserCtorMangle = mangledKey
		}
	}

	prevFnName := c.Symbols.EnterFunction(fnName)
	prevFuncID := c.CurrentFunc
	c.CurrentFunc = fnID

	c.B.SetInsertPoint(fnID, c.B.EntryBlock(fnID))
	for i, pname := range paramNames {
		pstorage := c.B.AllocaEntry(fnID, paramTypes[i], pname)
		c.B.Store(pstorage, c.B.Param(fnID, i))
		c.Symbols.DefineVariable(pname, pstorage)
	}

	_, err := c.lowerStmts(body)

	if err == nil && retType.Equal(codegen.TypeVoid) {
		c.B.RetVoid()
	}

	c.Symbols.ExitScope(symbols.FunctionPrefix(contractName, fnName))
	c.Symbols.LeaveFunction(prevFnName)
	c.CurrentFunc = prevFuncID

	if err != nil {
		return codegen.Value{}, err
	}
	return codegen.Value{}, nil
}

// lowerContractDefinition lowers one `contract`: first pass collects data
// members (interning their types and lowering any initializer, defaulting
// to a zero value) and builds the struct body; second pass lowers each
// method with the contract as mangling context; finally synthesizes the
// default constructor spec.md §4.10 requires.
func (c *Context) lowerContractDefinition(n *ast.Node) (codegen.Value, error) {
	name := n.Children[0].Identifier
	structType := c.B.StructType(name)
	info := c.Interner.RegisterContract(name)
	c.Symbols.DefineContract(name, info)

	prevContract := c.Symbols.EnterContract(name)

	var fieldTypes []codegen.Type
	var initVals []codegen.Value
	var members []types.Member
	var fnNodes []*ast.Node

	for _, child := range n.Children[1:] {
		switch child.Kind {
		case ast.VariableDefinition:
			mName, declaredKind, hasDeclared, init := extractLetParts(child)
			kind := declaredKind
			if !hasDeclared {
				kind = inferKind(init)
			}
			var iv codegen.Value
			var err error
			if init != nil {
				iv, err = c.lowerExprLoaded(init)
				if err != nil {
					c.Symbols.LeaveContract(prevContract)
					return codegen.Value{}, err
				}
			} else {
				iv = c.zeroValue(kind)
			}
			members = append(members, types.Member{
				Name:  mName,
				Type:  c.Interner.Intern(types.Type{Kind: kind}),
				Index: len(members),
			})
			fieldTypes = append(fieldTypes, codegenTypeFor(kind))
			initVals = append(initVals, iv)
		case ast.FunctionDefinition:
			fnNodes = append(fnNodes, child)
		case ast.StatementPass:
			// no data, no behavior.
		}
	}

	info.Members = members
	c.B.SetBody(structType, fieldTypes)

	for _, fn := range fnNodes {
		if _, err := c.lowerFunctionDefinition(fn); err != nil {
			c.Symbols.LeaveContract(prevContract)
			return codegen.Value{}, err
		}
	}

	c.Symbols.LeaveContract(prevContract)

	if err := c.synthesizeDefaultCtor(info, structType, initVals); err != nil {
		return codegen.Value{}, err
	}
	return codegen.Value{}, nil
}

// synthesizeDefaultCtor builds "C____default_init__": allocate a local
// struct, store each member's initial value through a struct-GEP, load
// the whole aggregate back, and return it by value. Callers (only
// lowerContractConstruction) spill that returned struct into their own
// named storage slot, which is what lets that slot double as the
// instance pointer passed to a user constructor.
func (c *Context) synthesizeDefaultCtor(info *types.ContractInfo, structType codegen.Type, initVals []codegen.Value) error {
	mangled := symbols.MangleDefaultCtor(info.Name)
	info.DefaultCtorMangle = mangled

	ctorType := c.B.FuncType(structType, nil)
	fnID := c.B.CreateFunc(mangled, ctorType, codegen.LinkageDefine)
	c.Symbols.DefineFunction(mangled, fnID)

	prevFuncID := c.CurrentFunc
	c.CurrentFunc = fnID
	c.B.SetInsertPoint(fnID, c.B.EntryBlock(fnID))

	storage := c.B.AllocaEntry(fnID, structType, "self")
	for i, iv := range initVals {
		fieldPtr := c.B.StructGEP(storage, structType, i)
		c.B.Store(fieldPtr, iv)
	}
	c.B.Ret(c.B.Load(storage, structType))

	c.CurrentFunc = prevFuncID
	return nil
}
