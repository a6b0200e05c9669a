package codegen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TextEmitter is the one concrete Builder this module ships: it renders an
// LLVM-IR-flavored textual module via a strings.Builder, the same
// no-cgo, pure-Go technique the teacher's internal/backend/llvm/emit*.go
// uses, scaled down to spec.md §6's smaller operation list.
type TextEmitter struct {
	tmp int

	structs     map[string][]Type
	structOrder []string

	globalStrings map[string]string // content -> global name
	stringOrder   []string

	globals     map[string]Type
	globalInit  map[string]Value
	globalOrder []string

	funcs   []*emFunc
	byName  map[string]FuncID
	current FuncID // function every emitting call targets until the next SetInsertPoint
}

type emFunc struct {
	name    string
	typ     Type
	linkage Linkage
	params  []Type
	blocks  []*emBlock
	cur     int // index into blocks, the current insertion point
	erased  bool
}

type emBlock struct {
	name  string
	lines []string
	term  bool
}

// NewTextEmitter returns a Builder that accumulates into an in-memory
// textual module, ready to be read back with String() once lowering
// finishes.
func NewTextEmitter() *TextEmitter {
	return &TextEmitter{
		structs:       make(map[string][]Type),
		globalStrings: make(map[string]string),
		globals:       make(map[string]Type),
		globalInit:    make(map[string]Value),
		byName:        make(map[string]FuncID),
	}
}

func (e *TextEmitter) next() string {
	e.tmp++
	return fmt.Sprintf("%%t%d", e.tmp)
}

// ---- constants ----

func (e *TextEmitter) ConstInt(v int64, t Type) Value {
	return Value{Handle: strconv.FormatInt(v, 10), Type: t, Kind: ValueInt}
}

func (e *TextEmitter) ConstString(s string) Value {
	return e.GlobalString(s)
}

func (e *TextEmitter) GlobalString(s string) Value {
	if name, ok := e.globalStrings[s]; ok {
		return Value{Handle: name, Type: TypeI8P, Kind: ValuePtr}
	}
	name := fmt.Sprintf("@.str.%d", len(e.stringOrder))
	e.globalStrings[s] = name
	e.stringOrder = append(e.stringOrder, s)
	return Value{Handle: name, Type: TypeI8P, Kind: ValuePtr}
}

// ---- memory ----

func (e *TextEmitter) AllocaEntry(f FuncID, t Type, name string) Value {
	fn := e.funcs[f]
	reg := fmt.Sprintf("%%%s.addr", sanitize(name))
	entry := fn.blocks[0]
	entry.lines = append([]string{fmt.Sprintf("  %s = alloca %s ; %s", reg, t, name)}, entry.lines...)
	return Value{Handle: reg, Type: PointerTo(t), Kind: ValuePtr}
}

func (e *TextEmitter) Load(ptr Value, t Type) Value {
	reg := e.next()
	e.emit("%s = load %s, %s %s", reg, t, PointerTo(t), ptr.Handle)
	return Value{Handle: reg, Type: t, Kind: kindOfType(t)}
}

// kindOfType derives a Value's coarse Int/Ptr kind from its backend Type,
// so a loaded or called pointer-typed value (a string, an address, the
// result of an intrinsic wrapper) keeps the Ptr-ness print's format
// selection (spec.md §4.9) depends on, instead of always reporting Int.
func kindOfType(t Type) ValueKind {
	if t.IsPointer() {
		return ValuePtr
	}
	return ValueInt
}

func (e *TextEmitter) Store(ptr, val Value) {
	e.emit("store %s %s, %s %s", val.Type, val.Handle, ptr.Type, ptr.Handle)
}

// ---- arithmetic ----

func (e *TextEmitter) binop(op string, lhs, rhs Value) Value {
	reg := e.next()
	e.emit("%s = %s %s %s, %s", reg, op, lhs.Type, lhs.Handle, rhs.Handle)
	return Value{Handle: reg, Type: lhs.Type, Kind: ValueInt}
}

func (e *TextEmitter) Add(lhs, rhs Value) Value { return e.binop("add", lhs, rhs) }
func (e *TextEmitter) Sub(lhs, rhs Value) Value { return e.binop("sub", lhs, rhs) }
func (e *TextEmitter) Mul(lhs, rhs Value) Value { return e.binop("mul", lhs, rhs) }
func (e *TextEmitter) SDiv(lhs, rhs Value) Value { return e.binop("sdiv", lhs, rhs) }
func (e *TextEmitter) SRem(lhs, rhs Value) Value { return e.binop("srem", lhs, rhs) }

func (e *TextEmitter) BitAnd(lhs, rhs Value) Value { return e.binop("and", lhs, rhs) }
func (e *TextEmitter) BitOr(lhs, rhs Value) Value  { return e.binop("or", lhs, rhs) }
func (e *TextEmitter) BitXor(lhs, rhs Value) Value { return e.binop("xor", lhs, rhs) }
func (e *TextEmitter) Shl(lhs, rhs Value) Value    { return e.binop("shl", lhs, rhs) }
func (e *TextEmitter) AShr(lhs, rhs Value) Value   { return e.binop("ashr", lhs, rhs) }

func (e *TextEmitter) BitNot(v Value) Value {
	return e.binop("xor", v, Value{Handle: "-1", Type: v.Type, Kind: ValueInt})
}

func (e *TextEmitter) LogicalAnd(lhs, rhs Value) Value { return e.binop("and", lhs, rhs) }
func (e *TextEmitter) LogicalOr(lhs, rhs Value) Value  { return e.binop("or", lhs, rhs) }

func (e *TextEmitter) LogicalNot(v Value) Value {
	reg := e.next()
	e.emit("%s = icmp eq %s %s, 0", reg, v.Type, v.Handle)
	return Value{Handle: reg, Type: TypeI1, Kind: ValueInt}
}

// ---- comparison ----

var predNames = map[Predicate]string{
	PredEQ:  "eq",
	PredNE:  "ne",
	PredULT: "ult",
	PredUGT: "ugt",
	PredULE: "ule",
	PredUGE: "uge",
}

func (e *TextEmitter) ICmp(pred Predicate, lhs, rhs Value) Value {
	reg := e.next()
	e.emit("%s = icmp %s %s %s, %s", reg, predNames[pred], lhs.Type, lhs.Handle, rhs.Handle)
	return Value{Handle: reg, Type: TypeI1, Kind: ValueInt}
}

// ---- control flow ----

func (e *TextEmitter) NewBlock(name string) BlockID {
	fn := e.funcs[e.current]
	id := BlockID(len(fn.blocks))
	fn.blocks = append(fn.blocks, &emBlock{name: fmt.Sprintf("%s%d", name, id)})
	return id
}

// SetInsertPoint switches both the current function and its current block.
// Passing a FuncID other than the most recently created one is how module
// assembly resumes emitting into `main` after fully lowering an interleaved
// function or contract definition.
func (e *TextEmitter) SetInsertPoint(f FuncID, b BlockID) {
	e.current = f
	e.funcs[f].cur = int(b)
}

func (e *TextEmitter) CurrentBlock() BlockID {
	fn := e.funcs[e.current]
	return BlockID(fn.cur)
}

func (e *TextEmitter) Br(target BlockID) {
	fn := e.funcs[e.current]
	block := fn.blocks[fn.cur]
	if block.term {
		return
	}
	block.lines = append(block.lines, fmt.Sprintf("  br label %%%s", fn.blocks[target].name))
	block.term = true
}

func (e *TextEmitter) CondBr(cond Value, thenB, elseB BlockID) {
	fn := e.funcs[e.current]
	block := fn.blocks[fn.cur]
	if block.term {
		return
	}
	block.lines = append(block.lines, fmt.Sprintf("  br i1 %s, label %%%s, label %%%s",
		cond.Handle, fn.blocks[thenB].name, fn.blocks[elseB].name))
	block.term = true
}

func (e *TextEmitter) Phi(t Type, incoming []PhiIncoming) Value {
	reg := e.next()
	fn := e.funcs[e.current]
	parts := make([]string, len(incoming))
	for i, in := range incoming {
		parts[i] = fmt.Sprintf("[ %s, %%%s ]", in.Value.Handle, fn.blocks[in.Block].name)
	}
	e.emit("%s = phi %s %s", reg, t, strings.Join(parts, ", "))
	return Value{Handle: reg, Type: t, Kind: kindOfType(t)}
}

// ---- functions ----

func (e *TextEmitter) FuncType(ret Type, params []Type) Type {
	r := ret
	return Type{
		name:       fmt.Sprintf("%s (%s)", ret, paramList(params)),
		funcRet:    &r,
		funcParams: params,
	}
}

func (e *TextEmitter) CreateFunc(name string, ft Type, linkage Linkage) FuncID {
	if id, ok := e.byName[name]; ok {
		return id
	}
	ret := TypeVoid
	if ft.funcRet != nil {
		ret = *ft.funcRet
	}
	fn := &emFunc{name: name, typ: ret, params: ft.funcParams, linkage: linkage}
	id := FuncID(len(e.funcs))
	e.funcs = append(e.funcs, fn)
	e.byName[name] = id
	if linkage == LinkageDefine {
		fn.blocks = append(fn.blocks, &emBlock{name: "entry"})
	}
	e.current = id
	return id
}

func (e *TextEmitter) EntryBlock(f FuncID) BlockID {
	return 0
}

func (e *TextEmitter) Param(f FuncID, idx int) Value {
	fn := e.funcs[f]
	return Value{Handle: fmt.Sprintf("%%arg%d", idx), Type: fn.params[idx], Kind: kindOfType(fn.params[idx])}
}

func (e *TextEmitter) LookupFunc(name string) (FuncID, bool) {
	id, ok := e.byName[name]
	return id, ok
}

func (e *TextEmitter) Call(callee FuncID, args []Value) Value {
	fn := e.funcs[callee]
	argStrs := make([]string, len(args))
	for i, a := range args {
		argStrs[i] = fmt.Sprintf("%s %s", a.Type, a.Handle)
	}
	call := fmt.Sprintf("call %s @%s(%s)", fn.typ, fn.name, strings.Join(argStrs, ", "))
	if fn.typ.Equal(TypeVoid) {
		e.emit("%s", call)
		return Value{}
	}
	reg := e.next()
	e.emit("%s = %s", reg, call)
	return Value{Handle: reg, Type: fn.typ, Kind: kindOfType(fn.typ)}
}

func (e *TextEmitter) Ret(v Value) {
	fn := e.funcs[e.current]
	block := fn.blocks[fn.cur]
	if block.term {
		return
	}
	block.lines = append(block.lines, fmt.Sprintf("  ret %s %s", v.Type, v.Handle))
	block.term = true
}

func (e *TextEmitter) RetVoid() {
	fn := e.funcs[e.current]
	block := fn.blocks[fn.cur]
	if block.term {
		return
	}
	block.lines = append(block.lines, "  ret void")
	block.term = true
}

func (e *TextEmitter) EraseFunc(f FuncID) {
	e.funcs[f].erased = true
}

// ---- aggregates / globals ----

func (e *TextEmitter) StructType(name string) Type {
	if _, ok := e.structs[name]; !ok {
		e.structs[name] = nil
		e.structOrder = append(e.structOrder, name)
	}
	return NamedStruct(name)
}

func (e *TextEmitter) SetBody(t Type, fields []Type) {
	name := strings.TrimPrefix(t.String(), "%struct.")
	e.structs[name] = fields
}

func (e *TextEmitter) StructGEP(base Value, t Type, idx int) Value {
	reg := e.next()
	e.emit("%s = getelementptr %s, %s %s, i32 0, i32 %d", reg, t, PointerTo(t), base.Handle, idx)
	fields := e.structs[strings.TrimPrefix(t.String(), "%struct.")]
	var fieldType Type
	if idx < len(fields) {
		fieldType = fields[idx]
	}
	return Value{Handle: reg, Type: PointerTo(fieldType), Kind: ValuePtr}
}

func (e *TextEmitter) GlobalVar(name string, t Type, init Value) Value {
	gname := "@" + sanitize(name)
	e.globals[gname] = t
	e.globalInit[gname] = init
	e.globalOrder = append(e.globalOrder, gname)
	return Value{Handle: gname, Type: PointerTo(t), Kind: ValuePtr}
}

// ---- rendering ----

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' {
			return '_'
		}
		return r
	}, name)
}

func (e *TextEmitter) emit(format string, args ...any) {
	fn := e.funcs[e.current]
	block := fn.blocks[fn.cur]
	block.lines = append(block.lines, "  "+fmt.Sprintf(format, args...))
}

// String renders the accumulated module as textual LLVM-IR-flavored
// output: struct definitions, string/global constants, then functions in
// creation order (erased functions, e.g. a production-build's discarded
// "main", are skipped entirely).
func (e *TextEmitter) String() string {
	var b strings.Builder

	sort.Strings(e.structOrder) // deterministic output regardless of visit order
	for _, name := range e.structOrder {
		fields := e.structs[name]
		names := make([]string, len(fields))
		for i, f := range fields {
			names[i] = f.String()
		}
		fmt.Fprintf(&b, "%%struct.%s = type { %s }\n", name, strings.Join(names, ", "))
	}
	if len(e.structOrder) > 0 {
		b.WriteString("\n")
	}

	for i, s := range e.stringOrder {
		name := fmt.Sprintf("@.str.%d", i)
		fmt.Fprintf(&b, "%s = private constant [%d x i8] c%q\n", name, len(s)+1, s+"\x00")
	}
	if len(e.stringOrder) > 0 {
		b.WriteString("\n")
	}

	for _, name := range e.globalOrder {
		init := e.globalInit[name]
		initText := init.Handle
		if initText == "" {
			initText = "zeroinitializer"
		}
		fmt.Fprintf(&b, "%s = global %s %s\n", name, e.globals[name], initText)
	}
	if len(e.globalOrder) > 0 {
		b.WriteString("\n")
	}

	for _, fn := range e.funcs {
		if fn.erased {
			continue
		}
		if fn.linkage == LinkageExternal {
			fmt.Fprintf(&b, "declare %s @%s(%s)\n", fn.typ, fn.name, paramList(fn.params))
			continue
		}
		fmt.Fprintf(&b, "define %s @%s(%s) {\n", fn.typ, fn.name, paramList(fn.params))
		for _, blk := range fn.blocks {
			fmt.Fprintf(&b, "%s:\n", blk.name)
			for _, line := range blk.lines {
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
		b.WriteString("}\n\n")
	}

	return b.String()
}

func paramList(params []Type) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.String()
	}
	return strings.Join(names, ", ")
}
