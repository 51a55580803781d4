package app

import "errors"

// Commands an App can run.
const (
	CommandGenerate = "generate"
	CommandActions  = "actions"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command string

	// generate
	ABIPath      string // single interface file, mutually exclusive with ProjectPath
	ProjectPath  string // HCL project file driving batch generation
	Root         string // project root receiving interfaces/<contract>/
	TemplatesDir string // optional template override directory

	// actions
	ProtocolsDir  string // root of generated contract modules
	CataloguePath string // where the action catalogue source file goes; empty means <protocols>/actions_catalogue.go
	CataloguePkg  string // package name for the catalogue file
	ConfigPath    string // profile document to validate; empty skips validation

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config for the selected command.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command {
	case CommandGenerate:
		if cfg.ABIPath == "" && cfg.ProjectPath == "" {
			return nil, errors.New("generate requires an interface file or a project file")
		}
		if cfg.ABIPath != "" && cfg.ProjectPath != "" {
			return nil, errors.New("generate takes either an interface file or a project file, not both")
		}
	case CommandActions:
		if cfg.ProtocolsDir == "" {
			return nil, errors.New("actions requires a protocols directory")
		}
		if cfg.CataloguePkg == "" {
			cfg.CataloguePkg = "actions"
		}
	default:
		return nil, errors.New("unknown command: " + cfg.Command)
	}
	return &cfg, nil
}
