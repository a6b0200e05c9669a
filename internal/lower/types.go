package lower

import (
	"aoc/internal/ast"
	"aoc/internal/codegen"
	"aoc/internal/token"
	"aoc/internal/types"
)

// typesKindFromToken maps a parsed type-specifier token (token.KwNum,
// token.KwI64, ...) to its types.Kind. Falls back to KindNum for anything
// unrecognized, which cannot happen for a TypeID leaf the parser produced
// (expectTypeSpecifier only accepts token.IsTypeSpecifier() tokens).
func typesKindFromToken(t token.Kind) types.Kind {
	switch t {
	case token.KwAddress:
		return types.KindAddress
	case token.KwBool:
		return types.KindBool
	case token.KwStr:
		return types.KindStr
	case token.KwI8:
		return types.KindI8
	case token.KwI16:
		return types.KindI16
	case token.KwI32:
		return types.KindI32
	case token.KwI64:
		return types.KindI64
	case token.KwU8:
		return types.KindU8
	case token.KwU16:
		return types.KindU16
	case token.KwU32:
		return types.KindU32
	case token.KwU64:
		return types.KindU64
	default:
		return types.KindNum
	}
}

// codegenTypeFor picks the backend storage type for a types.Kind. str and
// address both carry as a raw i8* pointer, matching the teacher's string
// representation.
func codegenTypeFor(k types.Kind) codegen.Type {
	switch k {
	case types.KindBool:
		return codegen.TypeI1
	case types.KindStr, types.KindAddress:
		return codegen.TypeI8P
	case types.KindI8, types.KindU8:
		return codegen.TypeI8
	case types.KindI16, types.KindU16:
		return codegen.TypeI16
	case types.KindI32, types.KindU32:
		return codegen.TypeI32
	default: // KindI64, KindU64, KindNum
		return codegen.TypeI64
	}
}

// inferKind guesses a `let` binding's type from its initializer's literal
// shape when no explicit `: type` annotation is present. Only literal
// shapes are considered; anything else (an arithmetic expression, a call)
// defaults to num, the language's default integer width.
func inferKind(n *ast.Node) types.Kind {
	if n == nil {
		return types.KindNum
	}
	target := unwrapParens(n)
	switch target.Kind {
	case ast.KindString:
		return types.KindStr
	case ast.KindBoolean:
		return types.KindBool
	default:
		return types.KindNum
	}
}

// zeroValue produces a kind's default-initialized constant, used for a
// `let` binding or contract member with no initializer.
func (c *Context) zeroValue(k types.Kind) codegen.Value {
	switch k {
	case types.KindStr, types.KindAddress:
		return c.B.ConstString("")
	case types.KindBool:
		return c.B.ConstInt(0, codegen.TypeI1)
	default:
		return c.B.ConstInt(0, codegenTypeFor(k))
	}
}

// unwrapParens strips any number of redundant Parentheses wrappers so
// lowering logic keyed on an expression's concrete shape (identifier,
// literal, member access) isn't fooled by `(x)`.
func unwrapParens(n *ast.Node) *ast.Node {
	for n.Kind == ast.Parentheses && len(n.Children) == 1 {
		n = n.Children[0]
	}
	return n
}
