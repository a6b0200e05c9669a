package ast

import "testing"

func TestPrecedenceOrdering(t *testing.T) {
	// Multiplication must bind tighter than Addition: a + b * c reduces the
	// '*' first. The shunting rule pops the stack top while it has
	// higher-or-equal precedence than the incoming operator, so a '+'
	// already on the stack stays there when '*' is about to be pushed.
	// Multiplication binds tighter (lower group number) than Addition.
	if PrecedenceOf(Multiplication) >= PrecedenceOf(Addition) {
		t.Fatalf("Multiplication (%d) should bind tighter than Addition (%d)",
			PrecedenceOf(Multiplication), PrecedenceOf(Addition))
	}
}

func TestExponentRightAssociative(t *testing.T) {
	if AssociativityOf(Exponent) != RightToLeft {
		t.Fatal("Exponent must be right-associative")
	}
	if AssociativityOf(Addition) != LeftToRight {
		t.Fatal("Addition must be left-associative")
	}
}

func TestHasHigherPrecedenceLeftAssociative(t *testing.T) {
	// Same precedence, left-associative: lhs reduces before rhs is pushed.
	if !HasHigherPrecedence(Addition, Subtraction) {
		t.Fatal("same-group left-associative operators should reduce left to right")
	}
}

func TestHasHigherPrecedenceRightAssociative(t *testing.T) {
	// a ** b ** c: when about to push the second '**', the first '**' on
	// the stack must NOT be considered higher precedence (so it stays
	// on the stack and the right-hand side is parsed first).
	if HasHigherPrecedence(Exponent, Exponent) {
		t.Fatal("right-associative exponent must not reduce against itself")
	}
}

func TestMemberCallGroupedWithIndex(t *testing.T) {
	if PrecedenceOf(MemberCall) != PrecedenceOf(Index) {
		t.Fatalf("MemberCall (%d) must share Index's precedence group (%d)",
			PrecedenceOf(MemberCall), PrecedenceOf(Index))
	}
	if PrecedenceOf(MemberCall) != Group2 {
		t.Fatalf("MemberCall = %d, want Group2", PrecedenceOf(MemberCall))
	}
}

func TestStatementsAreLoosestGroup(t *testing.T) {
	for _, k := range []Kind{StatementIf, StatementWhile, ContractDefinition, FunctionDefinition, ModuleDefinition} {
		if PrecedenceOf(k) != Group16 {
			t.Errorf("%v precedence = %d, want Group16", k, PrecedenceOf(k))
		}
	}
}

func TestOperandsCount(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{StatementPass, 0},
		{ModuleDefinition, 0},
		{StatementElse, 0},
		{UnaryMinus, 1},
		{StatementReturn, 1},
		{Call, 1},
		{VariableDefinition, 1},
		{Addition, 2},
		{Assign, 2},
		{MemberCall, 2},
		{FunctionParameterDefinition, 2},
	}
	for _, tt := range tests {
		if got := OperandsCount(tt.kind); got != tt.want {
			t.Errorf("OperandsCount(%v) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}
