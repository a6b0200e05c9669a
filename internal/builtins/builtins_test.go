package builtins

import (
	"strings"
	"testing"

	"aoc/internal/codegen"
)

func TestRegisterExternalDeclaresAllThree(t *testing.T) {
	e := NewTextEmitterForTest()
	ext := RegisterExternal(e)

	if _, ok := e.LookupFunc("printf"); !ok {
		t.Error("printf not declared")
	}
	if _, ok := e.LookupFunc("abort"); !ok {
		t.Error("abort not declared")
	}
	if _, ok := e.LookupFunc("is_utf8"); !ok {
		t.Error("is_utf8 not declared")
	}
	if ext.Print == ext.Abort {
		t.Error("print and abort must not collide")
	}

	out := e.String()
	if !strings.Contains(out, "declare i32 @printf(i8*)") {
		t.Errorf("expected a printf declare line, got:\n%s", out)
	}
}

func TestRegisterIntrinsicsDefinesWrappers(t *testing.T) {
	e := NewTextEmitterForTest()
	in := RegisterIntrinsics(e)

	out := e.String()
	if !strings.Contains(out, "define i8* @contract_address()") {
		t.Errorf("missing contract_address wrapper define, got:\n%s", out)
	}
	if !strings.Contains(out, "define i64 @block_timestamp()") {
		t.Errorf("missing block_timestamp wrapper define, got:\n%s", out)
	}
	if in.ContractAddress == in.CallerAddress {
		t.Error("contract_address and caller_address must not collide")
	}
}

func TestFormatSpecifier(t *testing.T) {
	if FormatSpecifier(codegen.ValueInt) != "%d " {
		t.Errorf("integer operand should get %q", "%d ")
	}
	if FormatSpecifier(codegen.ValuePtr) != "%s " {
		t.Errorf("pointer operand should get %q", "%s ")
	}
}

func TestResolutionHelpers(t *testing.T) {
	if !IsExternal(NameAbort) || IsExternal(NamePrint) {
		t.Error("IsExternal must exclude print (it gets its own specialization step)")
	}
	if !IsInternal(NameContractAddress) || IsInternal(NameAbort) {
		t.Error("IsInternal must only match the three intrinsic wrappers")
	}
}

// NewTextEmitterForTest avoids internal/builtins importing its own tests'
// dependency back onto internal/codegen's concrete type in non-test code.
func NewTextEmitterForTest() *codegen.TextEmitter {
	return codegen.NewTextEmitter()
}
