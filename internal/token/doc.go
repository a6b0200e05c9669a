// Package token is the C2 "Reserved-Token Table" component: a closed set
// of keyword and operator spellings, each looked up in O(log n) against a
// sorted table rather than a runtime map, so the table's shape is fixed at
// compile time the same way the original tokenizer's constexpr array is.
package token
