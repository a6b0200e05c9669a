// Package types is the C8 "Type Registry" component: it interns a stable
// handle for every primitive type the language defines, and registers a
// struct-shaped layout descriptor for each user-defined contract type the
// lowering visitor encounters.
//
// Grounded on the teacher's own internal/types/interner.go for the
// interning mechanism (a flat slice plus a lookup index keyed by a
// structural descriptor), cut down to the much smaller closed primitive
// set spec.md §3/§4.7 names.
package types
