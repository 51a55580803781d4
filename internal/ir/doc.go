// Package ir builds the canonical intermediate representation of a contract
// interface: one ContractDescriptor per interface file, one FunctionDescriptor
// per function entry.
//
// The raw schema entries carry declared names and wire types verbatim, and
// neither is directly usable in generated Go: declared parameter names may be
// empty, collide with Go keywords, or collide with the two
// transaction-metadata parameters every mutating call wrapper takes (sender
// and value). The descriptor resolves all of that once, deterministically, so
// the templates never have to reason about naming.
package ir
