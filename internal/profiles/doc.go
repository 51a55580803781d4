// Package profiles loads declarative agent-profile configuration documents
// and validates their action references against a discovered registry.
//
// Validation happens in two passes. A structural pass checks the document
// against an embedded JSON schema, catching shape errors (missing action
// keys, wrong collection types) with precise messages. The semantic pass then
// checks every referenced action, required parameter, and constraint against
// the registry, accumulating findings across all profiles rather than
// stopping at the first.
package profiles
