package profiles

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is a declarative agent-profile configuration.
type Document struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile is one named role and the actions it may perform.
type Profile struct {
	AvailableActions []ActionEntry `yaml:"available_actions"`
}

// ActionEntry is one action reference inside a profile: the action id, the
// constraint set the profile wants applied, and any number of free-form
// parameter values alongside.
type ActionEntry struct {
	Action      string
	Constraints map[string]any
	Params      map[string]any
}

// UnmarshalYAML splits an entry's mapping into the fixed keys (action,
// constraints) and the free-form parameter values.
func (e *ActionEntry) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}

	e.Params = make(map[string]any)
	for key, val := range raw {
		switch key {
		case "action":
			s, ok := val.(string)
			if !ok {
				return fmt.Errorf("line %d: action must be a string", node.Line)
			}
			e.Action = s
		case "constraints":
			m, ok := val.(map[string]any)
			if !ok && val != nil {
				return fmt.Errorf("line %d: constraints must be a mapping", node.Line)
			}
			e.Constraints = m
		default:
			e.Params[key] = val
		}
	}
	return nil
}

// HasParam reports whether the entry supplies the named parameter.
func (e *ActionEntry) HasParam(name string) bool {
	_, ok := e.Params[name]
	return ok
}
