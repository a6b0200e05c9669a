package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		word string
		want Kind
	}{
		{"def", KwDef},
		{"contract", KwContract},
		{"True", KwTrue},
		{"False", KwFalse},
		{"None", KwNone},
		{"let", KwLet},
		{"notakeyword", Unknown},
		{"", Unknown},
		{"i64", KwI64},
	}
	for _, tt := range tests {
		if got := LookupKeyword(tt.word); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestTablesAreSortedAndUnique(t *testing.T) {
	for i := 1; i < len(keywords); i++ {
		if keywords[i-1].str >= keywords[i].str {
			t.Fatalf("keywords not strictly sorted at %d: %q >= %q", i, keywords[i-1].str, keywords[i].str)
		}
	}
	for i := 1; i < len(operators); i++ {
		if operators[i-1].str >= operators[i].str {
			t.Fatalf("operators not strictly sorted at %d: %q >= %q", i, operators[i-1].str, operators[i].str)
		}
	}
}

func TestIsTypeSpecifier(t *testing.T) {
	for _, k := range []Kind{KwAddress, KwBool, KwNum, KwStr, KwI8, KwU8, KwI64, KwU64} {
		if !k.IsTypeSpecifier() {
			t.Errorf("%v.IsTypeSpecifier() = false, want true", k)
		}
	}
	for _, k := range []Kind{KwDef, KwIf, KwLet, Identifier} {
		if k.IsTypeSpecifier() {
			t.Errorf("%v.IsTypeSpecifier() = true, want false", k)
		}
	}
}
