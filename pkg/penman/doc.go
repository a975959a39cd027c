// Package penman parses AMR penman notation into an abstract parse record.
//
// A [Record] is four parallel sequences describing the graph in the order
// its nodes appear in the text: node variables, their concepts, their
// constant-valued attributes, and their relations to other nodes. This is
// the narrow shape consumed by graph conversion; any parser producing it is
// substitutable.
//
// # Grammar
//
//	node  := '(' var '/' concept (role value)* ')'
//	value := node | '"' string '"' | atom
//	role  := ':' name
//
// An atom that names a variable defined anywhere in the graph is a
// reentrancy and becomes a relation; every other atom and every quoted
// string becomes an attribute. Quotes are stripped from attribute values.
// The root node additionally receives the attribute ("TOP", concept).
package penman
