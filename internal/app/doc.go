// Package app wires the pipeline together for one invocation: it owns the
// configuration, the isolated logger, and the orchestration of a generation
// or discovery/validation run.
package app
