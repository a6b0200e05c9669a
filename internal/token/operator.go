package token

import (
	"sort"

	"aoc/internal/source"
)

// MatchOperator performs maximal-munch matching of an operator starting at
// the stream's current position: it narrows the sorted operators table one
// byte at a time via binary search (the Go analogue of std::equal_range),
// remembering the longest prefix that exactly matched a table entry, then
// pushes back whatever bytes weren't part of that longest match.
//
// It mirrors ReservedToken.cpp's getOperator(Stream&) byte for byte rather
// than reimplementing maximal munch some other way, since the exact
// backtracking behavior (push back the unconsumed suffix) is what makes
// "<<=" win over "<<" and "<" without a hand-rolled state machine per op.
func MatchOperator(s *source.Stream) Kind {
	lo, hi := 0, len(operators)
	result := Unknown

	var popped []byte
	matchSize := 0

	for idx := 0; lo < hi; idx++ {
		b, ok := s.Pop()
		if !ok {
			break
		}
		popped = append(popped, b)

		lo, hi = equalRange(lo, hi, idx, b)

		if lo < hi && len(operators[lo].str) == idx+1 {
			matchSize = idx + 1
			result = operators[lo].kind
		}
	}

	for len(popped) > matchSize {
		last := popped[len(popped)-1]
		popped = popped[:len(popped)-1]
		s.Push(last)
	}

	return result
}

// equalRange narrows [lo, hi) to the entries whose byte at position idx
// equals b, within a slice already sorted lexicographically. Entries
// shorter than idx+1 bytes sort before b (they can never match further).
func equalRange(lo, hi, idx int, b byte) (int, int) {
	newLo := sort.Search(hi-lo, func(i int) bool {
		t := operators[lo+i]
		return len(t.str) > idx && t.str[idx] >= b
	}) + lo
	newHi := sort.Search(hi-newLo, func(i int) bool {
		t := operators[newLo+i]
		return len(t.str) <= idx || t.str[idx] > b
	}) + newLo
	return newLo, newHi
}
