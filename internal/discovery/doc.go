// Package discovery walks a directory of generated contract modules and
// assembles the action registry for one run.
//
// The primary source of metadata is the structured actions.json manifest each
// module carries; discovery never re-derives required parameters from
// generated source. Handler files are still parsed (syntactically, via
// go/parser) for one purpose: hand-annotated @constraint doc-comment markers,
// which are merged into the manifest's metadata. Every per-module failure is
// logged and skipped so one malformed module never aborts the run.
package discovery
