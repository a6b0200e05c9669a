// Package ast is the C5/C6 node model: a closed set of node kinds (leaves
// for identifiers, literals, and type references; internal nodes for every
// operator, statement, and definition form) plus the precedence,
// associativity, and operand-arity tables the parser's Shunting-Yard
// algorithm consults.
//
// A Node is immutable once built: Children is populated at construction
// and never mutated afterward, and there are no parent links.
package ast
