// Package symbols is the C9 "Symbol Table" component: flat maps keyed by
// mangled name (see spec.md §3's mangling rule), plus the current
// contract/function bookkeeping the mangler consults and the prefix-scan
// scope exit spec.md §4.8 describes.
//
// Grounded on the teacher's internal/symbols.Table shape (one struct
// aggregating several named lookup tables) but deliberately built to the
// much simpler flat-map design spec.md calls for, rather than the
// teacher's own scope-graph resolver — see DESIGN.md's "Mutable
// pointer-graph symbol tables" redesign note.
package symbols
