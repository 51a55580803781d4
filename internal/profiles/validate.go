package profiles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vk/abiforge/internal/registry"
)

// Finding is the accumulated errors for one (profile, action) pair.
type Finding struct {
	Profile string
	Action  string
	Errors  []string
}

// Report is the outcome of validating one document. An empty report means
// the document is valid.
type Report struct {
	Findings []Finding
}

// Empty reports whether validation found no errors.
func (r *Report) Empty() bool {
	return len(r.Findings) == 0
}

// ErrorCount is the total number of accumulated errors.
func (r *Report) ErrorCount() int {
	n := 0
	for _, f := range r.Findings {
		n += len(f.Errors)
	}
	return n
}

// String formats the report for user output, one finding per block.
func (r *Report) String() string {
	var b strings.Builder
	for _, f := range r.Findings {
		fmt.Fprintf(&b, "profile %s, action %s:\n", f.Profile, f.Action)
		for _, e := range f.Errors {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
	}
	return b.String()
}

// Validate checks every profile's action references against the registry.
// Errors accumulate across all profiles and actions; nothing fails fast. The
// report is ordered by profile name, then action name, so output is
// deterministic regardless of how the document or registry was assembled.
func Validate(reg *registry.Registry, doc *Document) *Report {
	report := &Report{}

	profileNames := make([]string, 0, len(doc.Profiles))
	for name := range doc.Profiles {
		profileNames = append(profileNames, name)
	}
	sort.Strings(profileNames)

	for _, profileName := range profileNames {
		profile := doc.Profiles[profileName]
		for _, entry := range profile.AvailableActions {
			errs := validateEntry(reg, &entry)
			if len(errs) > 0 {
				report.Findings = append(report.Findings, Finding{
					Profile: profileName,
					Action:  entry.Action,
					Errors:  errs,
				})
			}
		}
	}

	sort.SliceStable(report.Findings, func(i, j int) bool {
		if report.Findings[i].Profile != report.Findings[j].Profile {
			return report.Findings[i].Profile < report.Findings[j].Profile
		}
		return report.Findings[i].Action < report.Findings[j].Action
	})
	return report
}

func validateEntry(reg *registry.Registry, entry *ActionEntry) []string {
	meta, ok := reg.Get(entry.Action)
	if !ok {
		return []string{fmt.Sprintf("unknown action: %s", entry.Action)}
	}

	var errs []string
	for _, param := range meta.RequiredParams {
		if !entry.HasParam(param) {
			errs = append(errs, fmt.Sprintf("missing required parameter: %s", param))
		}
	}

	constraintNames := make([]string, 0, len(entry.Constraints))
	for name := range entry.Constraints {
		constraintNames = append(constraintNames, name)
	}
	sort.Strings(constraintNames)
	for _, name := range constraintNames {
		if !meta.HasConstraint(name) {
			errs = append(errs, fmt.Sprintf("invalid constraint: %s", name))
		}
	}
	return errs
}
