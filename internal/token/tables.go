package token

import "sort"

type stringifiedToken struct {
	str string
	kind Kind
}

// keywords and operators are built unsorted here and sorted once in init,
// mirroring the compile-time `sort(std::array{...})` the original tokenizer
// uses to build a table searchable by std::equal_range.
var keywords = []stringifiedToken{
	{"False", KwFalse}, {"None", KwNone}, {"True", KwTrue},
	{"address", KwAddress}, {"and", KwAnd}, {"array", KwArray}, {"as", KwAs},
	{"assert", KwAssert}, {"bool", KwBool}, {"break", KwBreak}, {"class", KwClass},
	{"continue", KwContinue}, {"contract", KwContract}, {"def", KwDef}, {"del", KwDel},
	{"elif", KwElif}, {"else", KwElse}, {"except", KwExcept}, {"finally", KwFinally},
	{"for", KwFor}, {"from", KwFrom}, {"global", KwGlobal}, {"if", KwIf},
	{"import", KwImport}, {"in", KwIn}, {"is", KwIs},
	{"i8", KwI8}, {"i16", KwI16}, {"i32", KwI32}, {"i64", KwI64},
	{"lambda", KwLambda}, {"let", KwLet}, {"map", KwMap}, {"non", KwNon},
	{"nonlocal", KwNonLocal}, {"not", KwNot}, {"num", KwNum}, {"or", KwOr},
	{"pass", KwPass}, {"raise", KwRaise}, {"return", KwReturn}, {"str", KwStr},
	{"try", KwTry}, {"u8", KwU8}, {"u16", KwU16}, {"u32", KwU32}, {"u64", KwU64},
	{"while", KwWhile}, {"with", KwWith}, {"yield", KwYield},
}

var operators = []stringifiedToken{
	{"!", OpLogicalNot}, {"!=", OpNotEqual},
	{"%", OpMod}, {"%=", OpAssignMod},
	{"&", OpBitwiseAnd}, {"&&", OpLogicalAnd}, {"&=", OpAssignBitwiseAnd},
	{"(", OpParenthesisOpen}, {")", OpParenthesisClose},
	{"*", OpMul}, {"**", OpExp}, {"**=", OpAssignExp}, {"*=", OpAssignMul},
	{"+", OpAdd}, {"+=", OpAssignAdd},
	{",", OpComma},
	{"-", OpSub}, {"-=", OpAssignSub}, {"->", OpArrow},
	{".", OpDot},
	{"/", OpDiv}, {"//", OpFloorDiv}, {"//=", OpAssignFloorDiv}, {"/=", OpAssignDiv},
	{":", OpColon},
	{"<", OpLessThan}, {"<<", OpBitwiseLeftShift}, {"<<=", OpAssignBitwiseLeftShift}, {"<=", OpLessThanEqual},
	{"=", OpAssign}, {"==", OpEqual},
	{">", OpGreaterThan}, {">=", OpGreaterThanEqual}, {">>", OpBitwiseRightShift}, {">>=", OpAssignBitwiseRightShift},
	{"[", OpSubscriptOpen}, {"]", OpSubscriptClose},
	{"^", OpBitwiseXor}, {"^=", OpAssignBitwiseXor},
	{"|", OpBitwiseOr}, {"|=", OpAssignBitwiseOr}, {"||", OpLogicalOr},
	{"~", OpBitwiseNot},
}

func init() {
	sort.Slice(keywords, func(i, j int) bool { return keywords[i].str < keywords[j].str })
	sort.Slice(operators, func(i, j int) bool { return operators[i].str < operators[j].str })
}

// LookupKeyword returns the keyword Kind for word, or Unknown if word isn't
// reserved. word may be any length; a sorted binary search over keywords
// finds an exact match or nothing (unlike operator matching, keywords need
// no maximal munch — identifiers are delimited by the scanner already).
func LookupKeyword(word string) Kind {
	i := sort.Search(len(keywords), func(i int) bool { return keywords[i].str >= word })
	if i < len(keywords) && keywords[i].str == word {
		return keywords[i].kind
	}
	return Unknown
}
