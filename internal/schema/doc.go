// Package schema defines the raw contract interface description model and
// loads it from JSON ABI files.
//
// The schema layer is deliberately dumb: it decodes the external document,
// checks that each entry is structurally usable, and hands the entries to the
// ir package untouched. All naming and type resolution happens there.
package schema
