package parser

import (
	"aoc/internal/ast"
	"aoc/internal/token"
)

// mapOperator maps a reserved operator token to the ast.Kind it introduces,
// per spec.md §4.6's "Operator dispatch": '+'/'-' resolve to the unary or
// binary kind depending on whether an operand is currently expected; '~'
// and '!' are unary-only; everything else is a fixed binary mapping. ok is
// false for any token that isn't a recognized operator in the requested
// position (e.g. '~' seen while an infix operator was expected).
func mapOperator(k token.Kind, expectOperand bool) (ast.Kind, bool) {
	switch k {
	case token.OpAdd:
		if expectOperand {
			return ast.UnaryPlus, true
		}
		return ast.Addition, true
	case token.OpSub:
		if expectOperand {
			return ast.UnaryMinus, true
		}
		return ast.Subtraction, true
	case token.OpBitwiseNot:
		if expectOperand {
			return ast.BitwiseNot, true
		}
		return ast.Unknown, false
	case token.OpLogicalNot:
		if expectOperand {
			return ast.LogicalNot, true
		}
		return ast.Unknown, false
	}

	if expectOperand {
		return ast.Unknown, false
	}

	switch k {
	case token.OpExp:
		return ast.Exponent, true
	case token.OpMul:
		return ast.Multiplication, true
	case token.OpDiv:
		return ast.Division, true
	case token.OpFloorDiv:
		return ast.FloorDivision, true
	case token.OpMod:
		return ast.Modulus, true
	case token.OpBitwiseLeftShift:
		return ast.BitwiseLeftShift, true
	case token.OpBitwiseRightShift:
		return ast.BitwiseRightShift, true
	case token.OpBitwiseAnd:
		return ast.BitwiseAnd, true
	case token.OpBitwiseOr:
		return ast.BitwiseOr, true
	case token.OpBitwiseXor:
		return ast.BitwiseXor, true
	case token.OpEqual:
		return ast.Equality, true
	case token.OpNotEqual:
		return ast.Inequality, true
	case token.OpGreaterThan:
		return ast.GreaterThan, true
	case token.OpGreaterThanEqual:
		return ast.GreaterThanEqual, true
	case token.OpLessThan:
		return ast.LessThan, true
	case token.OpLessThanEqual:
		return ast.LessThanEqual, true
	case token.OpLogicalAnd:
		return ast.LogicalAnd, true
	case token.OpLogicalOr:
		return ast.LogicalOr, true
	case token.OpAssign:
		return ast.Assign, true
	case token.OpAssignAdd:
		return ast.AssignAddition, true
	case token.OpAssignSub:
		return ast.AssignSubtraction, true
	case token.OpAssignMul:
		return ast.AssignMultiplication, true
	case token.OpAssignDiv:
		return ast.AssignDivision, true
	case token.OpAssignFloorDiv:
		return ast.AssignFloorDivision, true
	case token.OpAssignMod:
		return ast.AssignModulus, true
	case token.OpAssignExp:
		return ast.AssignExponent, true
	case token.OpAssignBitwiseLeftShift:
		return ast.AssignBitwiseLeftShift, true
	case token.OpAssignBitwiseRightShift:
		return ast.AssignBitwiseRightShift, true
	case token.OpAssignBitwiseAnd:
		return ast.AssignBitwiseAnd, true
	case token.OpAssignBitwiseOr:
		return ast.AssignBitwiseOr, true
	case token.OpAssignBitwiseXor:
		return ast.AssignBitwiseXor, true
	default:
		return ast.Unknown, false
	}
}
