package lower

import (
	"strings"
	"testing"

	"aoc/internal/ast"
	"aoc/internal/codegen"
	"aoc/internal/lexer"
	"aoc/internal/parser"
	"aoc/internal/source"
)

func parseModule(t *testing.T, src string) *ast.Node {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.a1", []byte(src))
	it := lexer.NewTokenIterator(source.NewStream(fs.Get(id)))
	root, err := parser.Parse(it)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return root
}

// lowerModule parses src, lowers it as a test build (main kept), and
// returns the context plus the rendered IR text.
func lowerModule(t *testing.T, src string) (*Context, string) {
	t.Helper()
	root := parseModule(t, src)
	e := codegen.NewTextEmitter()
	c := NewContext(e)
	if err := LowerModule(c, root, false); err != nil {
		t.Fatalf("unexpected lowering error: %v", err)
	}
	return c, e.String()
}

// Scenario B (spec.md §8): three prints of an int, int, string select
// "%d"/"%d"/"%s" conversions and concatenate into one format string per
// call, trailing space trimmed, newline appended.
func TestScenarioPrintFormatSelection(t *testing.T) {
	_, ir := lowerModule(t, "print(1)\nprint(5)\nprint(\"foo\")\n")

	if strings.Count(ir, "call i32 @printf(") != 3 {
		t.Fatalf("expected 3 printf calls, got IR:\n%s", ir)
	}
	if !strings.Contains(ir, `"%d\n`) {
		t.Fatalf("expected a %%d format string, got IR:\n%s", ir)
	}
	if !strings.Contains(ir, `"%s\n`) {
		t.Fatalf("expected a %%s format string, got IR:\n%s", ir)
	}
}

// Property 11: scope hygiene — two functions each declaring a local `x`
// mangle to distinct keys and neither leaks into the other's scope.
func TestScopeHygieneAcrossFunctions(t *testing.T) {
	src := "def f():\n    let x = 1\n    return x\n\ndef g():\n    let x = 2\n    return x\n"
	c, _ := lowerModule(t, src)

	if _, ok := c.Symbols.LookupVariable("x"); ok {
		t.Fatal("module scope should not see either function's local x after lowering")
	}
	if _, ok := c.Symbols.LookupFunction("f"); !ok {
		t.Fatal("expected function f registered")
	}
	if _, ok := c.Symbols.LookupFunction("g"); !ok {
		t.Fatal("expected function g registered")
	}
}

// Property 12: mangling uniqueness — two contracts each declaring a
// method named `add` resolve to distinct functions-table entries.
func TestMangleUniquenessAcrossContracts(t *testing.T) {
	src := "contract A:\n    def add(self, x: i64) -> i64:\n        return x\n\n" +
		"contract B:\n    def add(self, x: i64) -> i64:\n        return x\n"
	c, _ := lowerModule(t, src)

	aFn, ok := c.Symbols.LookupFunction("A__add")
	if !ok {
		t.Fatal("expected A__add registered")
	}
	bFn, ok := c.Symbols.LookupFunction("B__add")
	if !ok {
		t.Fatal("expected B__add registered")
	}
	if aFn == bFn {
		t.Fatal("A.add and B.add must be distinct functions")
	}
}

// Property 13: contract layout — member declaration order becomes
// struct-GEP index order, reflected in the rendered struct body.
func TestContractLayout(t *testing.T) {
	src := "contract Pair:\n    let a: i64 = 0\n    let b: i64 = 0\n    pass\n"
	_, ir := lowerModule(t, src)

	if !strings.Contains(ir, "%struct.Pair = type { i64, i64 }") {
		t.Fatalf("expected Pair struct body with two i64 fields, got IR:\n%s", ir)
	}
}

// Property 14: constructor synthesis — a contract with no declared
// `__init__` still gets a default constructor; one that declares
// `__init__` gets both, and the default constructor's aggregate return
// type matches the struct.
func TestConstructorSynthesis(t *testing.T) {
	src := "contract Counter:\n    let n: i64 = 0\n\n    def __init__(self, start: i64):\n        self.n = start\n"
	c, ir := lowerModule(t, src)

	info, ok := c.Symbols.LookupContract("Counter")
	if !ok {
		t.Fatal("expected Counter contract registered")
	}
	if info.DefaultCtorMangle != "Counter____default_init__" {
		t.Fatalf("default ctor mangle = %q", info.DefaultCtorMangle)
	}
	if info.UserCtorMangle != "Counter____init__" {
		t.Fatalf("user ctor mangle = %q", info.UserCtorMangle)
	}
	if !strings.Contains(ir, "@Counter____default_init__(") {
		t.Fatalf("expected default ctor in IR:\n%s", ir)
	}
	if !strings.Contains(ir, "@Counter____init__(") {
		t.Fatalf("expected user ctor in IR:\n%s", ir)
	}
}

// Property 15: import side effect — each import statement is recorded
// exactly once, in source order, with no other codegen effect.
func TestImportSideEffect(t *testing.T) {
	c, ir := lowerModule(t, "import a.b\nimport c\n")

	want := []string{"a.b", "c"}
	if len(c.ImportedModules) != len(want) {
		t.Fatalf("ImportedModules = %v, want %v", c.ImportedModules, want)
	}
	for i, w := range want {
		if c.ImportedModules[i] != w {
			t.Fatalf("ImportedModules[%d] = %q, want %q", i, c.ImportedModules[i], w)
		}
	}
	if strings.Contains(ir, "a.b") || strings.Contains(ir, "import") {
		t.Fatalf("import should leave no trace in emitted IR, got:\n%s", ir)
	}
}

// Scenario F (spec.md §8): constructing a contract, calling a method,
// and printing the result — exercises lowerContractConstruction and the
// MemberCall method-call path end to end.
func TestScenarioContractConstructionAndMethodCall(t *testing.T) {
	src := "contract Addition:\n" +
		"    let sum: i64 = 0\n\n" +
		"    def add(self, a: i64, b: i64) -> i64:\n" +
		"        self.sum = a + b\n" +
		"        return self.sum\n\n" +
		"let v = Addition()\n" +
		"let r = v.add(2, 3)\n" +
		"print(r)\n"
	_, ir := lowerModule(t, src)

	if !strings.Contains(ir, "@Addition____default_init__(") {
		t.Fatalf("expected default ctor call site, got IR:\n%s", ir)
	}
	if !strings.Contains(ir, "@Addition__add(") {
		t.Fatalf("expected add method call, got IR:\n%s", ir)
	}
	if !strings.Contains(ir, "@printf(") {
		t.Fatalf("expected a final print call, got IR:\n%s", ir)
	}
}

// C12: a production build erases `main` entirely.
func TestModuleAssemblyProductionErasesMain(t *testing.T) {
	root := parseModule(t, "let x = 1\n")
	e := codegen.NewTextEmitter()
	c := NewContext(e)
	if err := LowerModule(c, root, true); err != nil {
		t.Fatalf("unexpected lowering error: %v", err)
	}
	if strings.Contains(e.String(), "@main(") {
		t.Fatalf("expected main erased in production build, got IR:\n%s", e.String())
	}
}

// C12: a test build keeps `main`, interleaves a function definition with
// top-level statements, and still resumes emitting into main afterward.
func TestModuleAssemblyInterleavesMainAndFunctionDef(t *testing.T) {
	src := "let x = 1\ndef helper():\n    pass\nlet y = 2\n"
	_, ir := lowerModule(t, src)

	if !strings.Contains(ir, "define i32 @main()") {
		t.Fatalf("expected main kept for a test build, got IR:\n%s", ir)
	}
	if !strings.Contains(ir, "@helper(") {
		t.Fatalf("expected helper function defined, got IR:\n%s", ir)
	}
	if !strings.Contains(ir, "ret i32 0") {
		t.Fatalf("expected main's final ret 0, got IR:\n%s", ir)
	}
}
