package schema

import (
	"encoding/json"
	"fmt"
	"os"
)

// Mutability classifications from the ABI spec.
const (
	MutabilityPure       = "pure"
	MutabilityView       = "view"
	MutabilityNonPayable = "nonpayable"
	MutabilityPayable    = "payable"
)

// Param is one named, typed parameter of an interface entry.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Entry is one raw entry of a contract interface description. Entries whose
// Type is not "function" (events, constructors, errors) are carried through
// decoding but ignored by the IR builder.
type Entry struct {
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	Inputs          []Param `json:"inputs"`
	Outputs         []Param `json:"outputs"`
	StateMutability string  `json:"stateMutability"`
}

// IsFunction reports whether this entry describes a callable function.
func (e *Entry) IsFunction() bool {
	return e.Type == "function"
}

// IsView reports whether the entry is a read-only query (view or pure).
func (e *Entry) IsView() bool {
	return e.StateMutability == MutabilityPure || e.StateMutability == MutabilityView
}

// Error describes a malformed interface description. Index is the offending
// entry's position within the document, or -1 when the document as a whole is
// unusable.
type Error struct {
	Path  string
	Index int
	Msg   string
}

func (e *Error) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("schema %s: %s", e.Path, e.Msg)
	}
	return fmt.Sprintf("schema %s: entry %d: %s", e.Path, e.Index, e.Msg)
}

// Load reads and validates a JSON ABI file. The load is atomic: any malformed
// entry fails the whole file and no entries are returned.
func Load(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Index: -1, Msg: err.Error()}
	}
	return Parse(path, raw)
}

// Parse decodes a JSON ABI document. The path is used for error reporting
// only. Entries are decoded one by one so a malformed entry is reported with
// its index rather than as an opaque document-level failure.
func Parse(path string, raw []byte) ([]Entry, error) {
	var rawEntries []json.RawMessage
	if err := json.Unmarshal(raw, &rawEntries); err != nil {
		return nil, &Error{Path: path, Index: -1, Msg: fmt.Sprintf("not a JSON array of entries: %v", err)}
	}

	entries := make([]Entry, 0, len(rawEntries))
	for i, rawEntry := range rawEntries {
		var entry Entry
		if err := json.Unmarshal(rawEntry, &entry); err != nil {
			return nil, &Error{Path: path, Index: i, Msg: err.Error()}
		}
		if err := checkEntry(path, i, &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func checkEntry(path string, index int, entry *Entry) error {
	if entry.Type == "" {
		return &Error{Path: path, Index: index, Msg: "missing type"}
	}
	if !entry.IsFunction() {
		return nil
	}
	if entry.Name == "" {
		return &Error{Path: path, Index: index, Msg: "function entry missing name"}
	}
	return nil
}
