package lower

import (
	"strconv"
	"strings"

	"aoc/internal/ast"
	"aoc/internal/builtins"
	"aoc/internal/codegen"
	"aoc/internal/diag"
	"aoc/internal/symbols"
)

// lowerExpr is the expression-shaped half of the visitor spec.md §4.10
// describes. Identifier and member-access reads return their storage
// handle unloaded — the caller decides whether to load through it
// (lowerExprLoaded) or use it as an assignment target directly.
func (c *Context) lowerExpr(n *ast.Node) (codegen.Value, error) {
	switch n.Kind {
	case ast.KindNumber:
		v, err := parseNumberLiteral(n.Number)
		if err != nil {
			return codegen.Value{}, diag.Compile(n.Span, "invalid number literal %q: %v", n.Number, err)
		}
		return c.B.ConstInt(v, codegen.TypeI64), nil

	case ast.KindString:
		return c.B.ConstString(n.Str), nil

	case ast.KindBoolean:
		v := int64(0)
		if n.Bool {
			v = 1
		}
		return c.B.ConstInt(v, codegen.TypeI1), nil

	case ast.KindTypeID:
		return codegen.Value{}, nil

	case ast.KindIdentifier:
		v, ok := c.Symbols.LookupVariable(n.Identifier)
		if !ok {
			return codegen.Value{}, diag.Compile(n.Span, "undefined identifier %q", n.Identifier)
		}
		return v, nil

	case ast.Parentheses:
		return c.lowerExpr(n.Children[0])

	case ast.UnaryPlus, ast.UnaryMinus, ast.BitwiseNot, ast.LogicalNot:
		return c.lowerUnary(n)

	case ast.Assign:
		return c.lowerAssign(n)

	case ast.AssignExponent, ast.AssignAddition, ast.AssignSubtraction, ast.AssignMultiplication,
		ast.AssignDivision, ast.AssignFloorDivision, ast.AssignModulus,
		ast.AssignBitwiseLeftShift, ast.AssignBitwiseRightShift,
		ast.AssignBitwiseAnd, ast.AssignBitwiseOr, ast.AssignBitwiseXor:
		return c.lowerCompoundAssign(n)

	case ast.MemberCall:
		return c.lowerMemberCall(n)

	case ast.Index:
		return c.lowerIndex(n)

	case ast.Call:
		return c.lowerCall(n)

	default:
		return c.lowerBinary(n)
	}
}

// lowerExprLoaded lowers n and, if n resolves to a storage handle (a plain
// identifier reference or a member-access form, per spec.md §4.10's
// "operands are loaded if they appear to be pointers to their primitive
// storage"), loads the value out of it. Parentheses are transparent.
func (c *Context) lowerExprLoaded(n *ast.Node) (codegen.Value, error) {
	v, err := c.lowerExpr(n)
	if err != nil {
		return codegen.Value{}, err
	}
	target := unwrapParens(n)
	switch {
	case target.Kind == ast.KindIdentifier:
		return c.load(v), nil
	case target.Kind == ast.MemberCall && len(target.Children) == 2 && target.Children[1].Kind != ast.Call:
		return c.load(v), nil
	default:
		return v, nil
	}
}

// load dereferences a pointer-typed storage handle one level.
func (c *Context) load(v codegen.Value) codegen.Value {
	if v.Kind != codegen.ValuePtr {
		return v
	}
	return c.B.Load(v, codegen.ElementType(v.Type))
}

func parseNumberLiteral(text string) (int64, error) {
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

// lowerUnary handles the four prefix unary operators: +x is a no-op, -x
// subtracts from zero, ~x flips every bit, !x is boolean negation.
func (c *Context) lowerUnary(n *ast.Node) (codegen.Value, error) {
	v, err := c.lowerExprLoaded(n.Children[0])
	if err != nil {
		return codegen.Value{}, err
	}
	switch n.Kind {
	case ast.UnaryPlus:
		return v, nil
	case ast.UnaryMinus:
		return c.B.Sub(c.B.ConstInt(0, v.Type), v), nil
	case ast.BitwiseNot:
		return c.B.BitNot(v), nil
	case ast.LogicalNot:
		return c.B.LogicalNot(v), nil
	default:
		return codegen.Value{}, diag.Compile(n.Span, "unsupported unary operator %v", n.Kind)
	}
}

// lowerBinary handles every remaining binary operator kind by table
// lookup. Per the locked Open Question (DESIGN.md): arithmetic and
// equality/inequality are signed, ordering comparisons are unsigned
// (the Builder's ICmp already encodes that split via Predicate).
func (c *Context) lowerBinary(n *ast.Node) (codegen.Value, error) {
	lhs, err := c.lowerExprLoaded(n.Children[0])
	if err != nil {
		return codegen.Value{}, err
	}
	rhs, err := c.lowerExprLoaded(n.Children[1])
	if err != nil {
		return codegen.Value{}, err
	}
	switch n.Kind {
	case ast.Addition:
		return c.B.Add(lhs, rhs), nil
	case ast.Subtraction:
		return c.B.Sub(lhs, rhs), nil
	case ast.Multiplication:
		return c.B.Mul(lhs, rhs), nil
	case ast.Division, ast.FloorDivision:
		return c.B.SDiv(lhs, rhs), nil
	case ast.Modulus:
		return c.B.SRem(lhs, rhs), nil
	case ast.Exponent:
		return c.lowerExponent(lhs, rhs)
	case ast.BitwiseLeftShift:
		return c.B.Shl(lhs, rhs), nil
	case ast.BitwiseRightShift:
		return c.B.AShr(lhs, rhs), nil
	case ast.BitwiseAnd:
		return c.B.BitAnd(lhs, rhs), nil
	case ast.BitwiseOr:
		return c.B.BitOr(lhs, rhs), nil
	case ast.BitwiseXor:
		return c.B.BitXor(lhs, rhs), nil
	case ast.Equality, ast.IsIdentical:
		return c.B.ICmp(codegen.PredEQ, lhs, rhs), nil
	case ast.Inequality, ast.IsNotIdentical:
		return c.B.ICmp(codegen.PredNE, lhs, rhs), nil
	case ast.GreaterThan:
		return c.B.ICmp(codegen.PredUGT, lhs, rhs), nil
	case ast.GreaterThanEqual:
		return c.B.ICmp(codegen.PredUGE, lhs, rhs), nil
	case ast.LessThan:
		return c.B.ICmp(codegen.PredULT, lhs, rhs), nil
	case ast.LessThanEqual:
		return c.B.ICmp(codegen.PredULE, lhs, rhs), nil
	case ast.LogicalAnd:
		return c.B.LogicalAnd(lhs, rhs), nil
	case ast.LogicalOr:
		return c.B.LogicalOr(lhs, rhs), nil
	case ast.IsMemberOf, ast.IsNotMemberOf:
		return codegen.Value{}, diag.Compile(n.Span, "'in'/'not in' container membership is not implemented")
	default:
		return codegen.Value{}, diag.Compile(n.Span, "unsupported binary operator %v", n.Kind)
	}
}

// lowerExponent synthesizes integer exponentiation as an inline counting
// loop (the Builder has no pow instruction), the same cond/body/after
// block shape lowerWhile uses for the source-level while statement.
func (c *Context) lowerExponent(lhs, rhs codegen.Value) (codegen.Value, error) {
	t := lhs.Type
	resultSlot := c.B.AllocaEntry(c.CurrentFunc, t, "pow.result")
	counterSlot := c.B.AllocaEntry(c.CurrentFunc, t, "pow.i")
	c.B.Store(resultSlot, c.B.ConstInt(1, t))
	c.B.Store(counterSlot, c.B.ConstInt(0, t))

	condBlock := c.B.NewBlock("pow.cond")
	bodyBlock := c.B.NewBlock("pow.body")
	afterBlock := c.B.NewBlock("pow.after")
	c.B.Br(condBlock)

	c.B.SetInsertPoint(c.CurrentFunc, condBlock)
	counterVal := c.B.Load(counterSlot, t)
	cmp := c.B.ICmp(codegen.PredULT, counterVal, rhs)
	c.B.CondBr(cmp, bodyBlock, afterBlock)

	c.B.SetInsertPoint(c.CurrentFunc, bodyBlock)
	resultVal := c.B.Load(resultSlot, t)
	c.B.Store(resultSlot, c.B.Mul(resultVal, lhs))
	counterVal2 := c.B.Load(counterSlot, t)
	c.B.Store(counterSlot, c.B.Add(counterVal2, c.B.ConstInt(1, t)))
	c.B.Br(condBlock)

	c.B.SetInsertPoint(c.CurrentFunc, afterBlock)
	return c.B.Load(resultSlot, t), nil
}

// lowerAssign stores rhs into lhs's storage handle (a variable or a
// contract member field) and yields rhs as the expression's own value.
func (c *Context) lowerAssign(n *ast.Node) (codegen.Value, error) {
	storage, err := c.lowerExpr(n.Children[0])
	if err != nil {
		return codegen.Value{}, err
	}
	if storage.Kind != codegen.ValuePtr {
		return codegen.Value{}, diag.Compile(n.Span, "invalid assignment target")
	}
	rhs, err := c.lowerExprLoaded(n.Children[1])
	if err != nil {
		return codegen.Value{}, err
	}
	c.B.Store(storage, rhs)
	return rhs, nil
}

// lowerCompoundAssign loads the current value, combines it with rhs by
// the operator the Assign* kind names, stores the result back, and
// yields it.
func (c *Context) lowerCompoundAssign(n *ast.Node) (codegen.Value, error) {
	storage, err := c.lowerExpr(n.Children[0])
	if err != nil {
		return codegen.Value{}, err
	}
	if storage.Kind != codegen.ValuePtr {
		return codegen.Value{}, diag.Compile(n.Span, "invalid assignment target")
	}
	current := c.B.Load(storage, codegen.ElementType(storage.Type))
	rhs, err := c.lowerExprLoaded(n.Children[1])
	if err != nil {
		return codegen.Value{}, err
	}

	var result codegen.Value
	switch n.Kind {
	case ast.AssignAddition:
		result = c.B.Add(current, rhs)
	case ast.AssignSubtraction:
		result = c.B.Sub(current, rhs)
	case ast.AssignMultiplication:
		result = c.B.Mul(current, rhs)
	case ast.AssignDivision, ast.AssignFloorDivision:
		result = c.B.SDiv(current, rhs)
	case ast.AssignModulus:
		result = c.B.SRem(current, rhs)
	case ast.AssignExponent:
		result, err = c.lowerExponent(current, rhs)
		if err != nil {
			return codegen.Value{}, err
		}
	case ast.AssignBitwiseLeftShift:
		result = c.B.Shl(current, rhs)
	case ast.AssignBitwiseRightShift:
		result = c.B.AShr(current, rhs)
	case ast.AssignBitwiseAnd:
		result = c.B.BitAnd(current, rhs)
	case ast.AssignBitwiseOr:
		result = c.B.BitOr(current, rhs)
	case ast.AssignBitwiseXor:
		result = c.B.BitXor(current, rhs)
	default:
		return codegen.Value{}, diag.Compile(n.Span, "unsupported compound assignment %v", n.Kind)
	}
	c.B.Store(storage, result)
	return result, nil
}

// lowerMemberCall handles both member-access (`v.sum`) and method-call
// (`v.add(1, 2)`) forms, grouped together per the Open Question decision
// that MemberCall's dispatch rests on the explicit table in spec.md §4.10
// rather than original_source's separate member/method AST nodes.
func (c *Context) lowerMemberCall(n *ast.Node) (codegen.Value, error) {
	instancePtr, err := c.resolveInstancePointer(n.Children[0])
	if err != nil {
		return codegen.Value{}, err
	}
	structT := codegen.ElementType(instancePtr.Type)
	contractName := contractNameOf(structT)
	info, ok := c.Symbols.LookupContract(contractName)
	if !ok {
		return codegen.Value{}, diag.Compile(n.Span, "member access on non-contract value")
	}

	second := n.Children[1]
	if second.Kind == ast.Call {
		methodName := second.Children[0].Identifier
		mangled := symbols.MangleMethod(contractName, methodName)
		fnID, ok := c.Symbols.LookupFunction(mangled)
		if !ok {
			return codegen.Value{}, diag.Compile(n.Span, "undefined method %q on contract %q", methodName, contractName)
		}
		args := []codegen.Value{instancePtr}
		for _, a := range second.Children[1:] {
			v, err := c.lowerExprLoaded(a)
			if err != nil {
				return codegen.Value{}, err
			}
			args = append(args, v)
		}
		return c.B.Call(fnID, args), nil
	}

	member, ok := info.MemberByName(second.Identifier)
	if !ok {
		return codegen.Value{}, diag.Compile(n.Span, "contract %q has no member %q", contractName, second.Identifier)
	}
	return c.B.StructGEP(instancePtr, structT, member.Index), nil
}

// resolveInstancePointer lowers a MemberCall's base expression to the
// contract instance pointer struct-GEP/method calls need. A plain
// variable's storage already holds that pointer directly (ct is the
// struct type itself, see lowerVariableDefinition's contract-construction
// branch); a `self` parameter's storage is one level further removed (the
// parameter's own type is already a pointer, so its alloca is a pointer
// to a pointer) and needs one Load to reach the same shape.
func (c *Context) resolveInstancePointer(n *ast.Node) (codegen.Value, error) {
	v, err := c.lowerExpr(n)
	if err != nil {
		return codegen.Value{}, err
	}
	if v.Kind != codegen.ValuePtr {
		return v, nil
	}
	elem := codegen.ElementType(v.Type)
	if elem.IsPointer() {
		return c.B.Load(v, elem), nil
	}
	return v, nil
}

func contractNameOf(t codegen.Type) string {
	s := strings.TrimSuffix(t.String(), "*")
	return strings.TrimPrefix(s, "%struct.")
}

var builtinNamespaces = map[string]map[string]string{
	"block": {"timestamp": builtins.NameBlockTimestamp},
	"msg":   {"sender": builtins.NameCallerAddress, "caller": builtins.NameCallerAddress},
	"contract": {"address": builtins.NameContractAddress},
}

// lowerIndex dispatches a recognized builtin namespace index (block[timestamp],
// msg[sender], ...) to its internal wrapper. Per spec.md §9's Open
// Question, anything else is reserved for user-defined container types
// and is not implemented: it emits nothing and yields an invalid Value.
func (c *Context) lowerIndex(n *ast.Node) (codegen.Value, error) {
	base, idx := n.Children[0], n.Children[1]
	if base.Kind == ast.KindIdentifier && idx.Kind == ast.KindIdentifier {
		if fields, ok := builtinNamespaces[base.Identifier]; ok {
			if wrapperName, ok := fields[idx.Identifier]; ok {
				fnID, _ := c.Intrinsics.FuncIDFor(wrapperName)
				return c.B.Call(fnID, nil), nil
			}
		}
	}
	return codegen.Value{}, nil
}

// lowerCall resolves a bare Call's callee in spec.md §4.9's order: print's
// own specialization, then external builtins, then internal intrinsic
// wrappers, then user-defined functions. Contract construction
// (`Addition()`) is handled exclusively by lowerVariableDefinition, since
// only a `let` initializer ever needs the fresh storage slot a
// constructor's user-ctor call must write through.
func (c *Context) lowerCall(n *ast.Node) (codegen.Value, error) {
	callee := n.Children[0]
	if callee.Kind != ast.KindIdentifier {
		return codegen.Value{}, diag.Compile(n.Span, "call target must be a name")
	}
	name := callee.Identifier
	args := n.Children[1:]

	if name == builtins.NamePrint {
		return c.lowerPrint(args)
	}
	if builtins.IsExternal(name) {
		fnID, _ := c.External.FuncIDFor(name)
		return c.lowerSimpleCall(fnID, args)
	}
	if builtins.IsInternal(name) {
		fnID, _ := c.Intrinsics.FuncIDFor(name)
		return c.B.Call(fnID, nil), nil
	}
	fnID, ok := c.Symbols.LookupFunction(name)
	if !ok {
		return codegen.Value{}, diag.Compile(n.Span, "call to undefined function %q", name)
	}
	return c.lowerSimpleCall(fnID, args)
}

func (c *Context) lowerSimpleCall(fnID codegen.FuncID, args []*ast.Node) (codegen.Value, error) {
	vals := make([]codegen.Value, 0, len(args))
	for _, a := range args {
		v, err := c.lowerExprLoaded(a)
		if err != nil {
			return codegen.Value{}, err
		}
		vals = append(vals, v)
	}
	return c.B.Call(fnID, vals), nil
}

// lowerPrint builds print's per-call format string (spec.md §4.9: one
// "%d " or "%s " conversion per argument, selected by its ValueKind,
// trailing space trimmed and a newline appended) and emits the printf
// call.
func (c *Context) lowerPrint(args []*ast.Node) (codegen.Value, error) {
	var format strings.Builder
	vals := make([]codegen.Value, 0, len(args))
	for _, a := range args {
		v, err := c.lowerExprLoaded(a)
		if err != nil {
			return codegen.Value{}, err
		}
		format.WriteString(builtins.FormatSpecifier(v.Kind))
		vals = append(vals, v)
	}
	fmtStr := strings.TrimRight(format.String(), " ") + "\n"
	callArgs := append([]codegen.Value{c.B.ConstString(fmtStr)}, vals...)
	return c.B.Call(c.External.Print, callArgs), nil
}
