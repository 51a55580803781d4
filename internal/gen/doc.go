// Package gen renders contract descriptors into generated artifacts: a typed
// client, per-action handlers, and the structured action manifest, plus the
// action catalogue emitted after discovery.
//
// Rendered Go text goes through a best-effort gofmt pass on the way to disk.
// Formatting is an enhancement, never a gate: when it fails the raw rendered
// text is persisted and a warning is logged.
package gen
