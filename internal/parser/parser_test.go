package parser

import (
	"testing"

	"aoc/internal/ast"
	"aoc/internal/lexer"
	"aoc/internal/source"
)

func parseAll(t *testing.T, content string) *ast.Node {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.a1", []byte(content))
	it := lexer.NewTokenIterator(source.NewStream(fs.Get(id)))
	root, err := Parse(it)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return root
}

// Property 5: every parse produces a ModuleDefinition root, regardless of
// what it contains.
func TestModuleDefinitionRoot(t *testing.T) {
	root := parseAll(t, "let x = 1\n")
	if root.Kind != ast.ModuleDefinition {
		t.Fatalf("root kind = %v, want ModuleDefinition", root.Kind)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children))
	}
}

// Property 6: precedence dominance — `1 + 2 * 3` reduces with
// Multiplication nested under Addition, not the reverse.
func TestPrecedenceDominance(t *testing.T) {
	root := parseAll(t, "1 + 2 * 3\n")
	expr := root.Children[0]
	if expr.Kind != ast.Addition {
		t.Fatalf("top kind = %v, want Addition", expr.Kind)
	}
	rhs := expr.Children[1]
	if rhs.Kind != ast.Multiplication {
		t.Fatalf("rhs kind = %v, want Multiplication", rhs.Kind)
	}
}

// Property 7: exponentiation is right-associative — `2 ** 3 ** 2` groups as
// `2 ** (3 ** 2)`.
func TestExponentRightAssociative(t *testing.T) {
	root := parseAll(t, "2 ** 3 ** 2\n")
	expr := root.Children[0]
	if expr.Kind != ast.Exponent {
		t.Fatalf("top kind = %v, want Exponent", expr.Kind)
	}
	lhs := expr.Children[0]
	if lhs.Kind != ast.KindNumber || lhs.Number != "2" {
		t.Fatalf("lhs = %+v, want leaf Number 2", lhs)
	}
	rhs := expr.Children[1]
	if rhs.Kind != ast.Exponent {
		t.Fatalf("rhs kind = %v, want nested Exponent", rhs.Kind)
	}
}

// Property 8: unary/binary '+'/'-' disambiguation by operand-expectation
// position — `-1 - -2` is UnaryMinus(1) Subtraction UnaryMinus(2).
func TestUnaryBinaryDisambiguation(t *testing.T) {
	root := parseAll(t, "-1 - -2\n")
	expr := root.Children[0]
	if expr.Kind != ast.Subtraction {
		t.Fatalf("top kind = %v, want Subtraction", expr.Kind)
	}
	if expr.Children[0].Kind != ast.UnaryMinus {
		t.Fatalf("lhs kind = %v, want UnaryMinus", expr.Children[0].Kind)
	}
	if expr.Children[1].Kind != ast.UnaryMinus {
		t.Fatalf("rhs kind = %v, want UnaryMinus", expr.Children[1].Kind)
	}
}

// Property 9: compound-statement chain shape — if/elif/else builds a
// right-leaning chain via the single trailing child slot.
func TestCompoundStatementChainShape(t *testing.T) {
	root := parseAll(t, "if a:\n    pass\nelif b:\n    pass\nelse:\n    pass\n")
	ifNode := root.Children[0]
	if ifNode.Kind != ast.StatementIf {
		t.Fatalf("kind = %v, want StatementIf", ifNode.Kind)
	}
	// children: [cond, pass, elif-chain]
	if len(ifNode.Children) != 3 {
		t.Fatalf("if has %d children, want 3 (cond, body, elif-chain)", len(ifNode.Children))
	}
	elifNode := ifNode.Children[2]
	if elifNode.Kind != ast.StatementElif {
		t.Fatalf("tail kind = %v, want StatementElif", elifNode.Kind)
	}
	if len(elifNode.Children) != 3 {
		t.Fatalf("elif has %d children, want 3 (cond, body, else-chain)", len(elifNode.Children))
	}
	elseNode := elifNode.Children[2]
	if elseNode.Kind != ast.StatementElse {
		t.Fatalf("tail kind = %v, want StatementElse", elseNode.Kind)
	}
}

// Property 10: self-parameter arity — a bare `self` param is a 1-child
// FunctionParameterDefinition, a typed param is 2-child.
func TestSelfParameterArity(t *testing.T) {
	root := parseAll(t, "contract C:\n    def m(self, x: i64):\n        pass\n")
	contract := root.Children[0]
	if contract.Kind != ast.ContractDefinition {
		t.Fatalf("kind = %v, want ContractDefinition", contract.Kind)
	}
	fn := contract.Children[1]
	if fn.Kind != ast.FunctionDefinition {
		t.Fatalf("kind = %v, want FunctionDefinition", fn.Kind)
	}
	selfParam := fn.Children[1]
	if selfParam.Kind != ast.FunctionParameterDefinition || len(selfParam.Children) != 1 {
		t.Fatalf("self param = %+v, want 1-child FunctionParameterDefinition", selfParam)
	}
	if selfParam.Children[0].Identifier != "self" {
		t.Fatalf("self param child = %+v, want Identifier self", selfParam.Children[0])
	}
	xParam := fn.Children[2]
	if xParam.Kind != ast.FunctionParameterDefinition || len(xParam.Children) != 2 {
		t.Fatalf("x param = %+v, want 2-child FunctionParameterDefinition", xParam)
	}
}

func TestSelfOutsideContractRejected(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.a1", []byte("def m(self):\n    pass\n"))
	it := lexer.NewTokenIterator(source.NewStream(fs.Get(id)))
	if _, err := Parse(it); err == nil {
		t.Fatal("expected error for 'self' outside a contract")
	}
}

func TestImportStatementDottedPath(t *testing.T) {
	root := parseAll(t, "import foo.bar\n")
	imp := root.Children[0]
	if imp.Kind != ast.StatementImport {
		t.Fatalf("kind = %v, want StatementImport", imp.Kind)
	}
	if imp.Children[0].Identifier != "foo.bar" {
		t.Fatalf("import path = %q, want foo.bar", imp.Children[0].Identifier)
	}
}

func TestLetWithTypeAndInitializer(t *testing.T) {
	root := parseAll(t, "let x: i64 = 1 + 2\n")
	let := root.Children[0]
	if let.Kind != ast.VariableDefinition {
		t.Fatalf("kind = %v, want VariableDefinition", let.Kind)
	}
	if len(let.Children) != 3 {
		t.Fatalf("let has %d children, want 3 (name, type, init)", len(let.Children))
	}
	if let.Children[1].Kind != ast.KindTypeID {
		t.Fatalf("type child kind = %v, want TypeID", let.Children[1].Kind)
	}
	if let.Children[2].Kind != ast.Addition {
		t.Fatalf("init child kind = %v, want Addition", let.Children[2].Kind)
	}
}

func TestMemberCallChaining(t *testing.T) {
	root := parseAll(t, "v.add(1, 2)\n")
	call := root.Children[0]
	if call.Kind != ast.MemberCall {
		t.Fatalf("kind = %v, want MemberCall", call.Kind)
	}
	method := call.Children[1]
	if method.Kind != ast.Call {
		t.Fatalf("method kind = %v, want Call", method.Kind)
	}
	if len(method.Children) != 3 { // callee + 2 args
		t.Fatalf("call has %d children, want 3", len(method.Children))
	}
}

func TestIndexAndIsNotMemberOf(t *testing.T) {
	root := parseAll(t, "a[0] not in b\n")
	expr := root.Children[0]
	if expr.Kind != ast.IsNotMemberOf {
		t.Fatalf("kind = %v, want IsNotMemberOf", expr.Kind)
	}
	if expr.Children[0].Kind != ast.Index {
		t.Fatalf("lhs kind = %v, want Index", expr.Children[0].Kind)
	}
}
