// Package cli parses command-line arguments into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/abiforge/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usage = `abiforge - contract interface code generator and action catalogue.

Usage:
  abiforge generate [options]   Generate client, handler, and manifest artifacts.
  abiforge actions  [options]   Discover generated actions, emit the catalogue,
                                and optionally validate a profile configuration.

Run 'abiforge <command> -h' for command options.
`

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	if len(args) == 0 {
		fmt.Fprint(output, usage)
		return nil, true, nil
	}

	switch args[0] {
	case "generate":
		return parseGenerate(args[1:], output)
	case "actions":
		return parseActions(args[1:], output)
	case "-h", "--help", "help":
		fmt.Fprint(output, usage)
		return nil, true, nil
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", args[0])}
	}
}

func parseGenerate(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("abiforge generate", flag.ContinueOnError)
	flagSet.SetOutput(output)

	abiFlag := flagSet.String("abi", "", "Path to a contract interface JSON file.")
	projectFlag := flagSet.String("project", "", "Path to an HCL project file listing contracts.")
	rootFlag := flagSet.String("root", "", "Project root receiving interfaces/<contract>/.")
	templatesFlag := flagSet.String("templates", "", "Directory of override templates.")
	logFormat, logLevel := logFlags(flagSet)

	if shouldExit, err := parseFlags(flagSet, args); shouldExit || err != nil {
		return nil, shouldExit, err
	}
	if err := validateLogFlags(*logFormat, *logLevel); err != nil {
		return nil, false, err
	}

	config, err := app.NewConfig(app.Config{
		Command:      app.CommandGenerate,
		ABIPath:      *abiFlag,
		ProjectPath:  *projectFlag,
		Root:         *rootFlag,
		TemplatesDir: *templatesFlag,
		LogFormat:    *logFormat,
		LogLevel:     *logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}

func parseActions(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("abiforge actions", flag.ContinueOnError)
	flagSet.SetOutput(output)

	protocolsFlag := flagSet.String("protocols", "", "Root directory of generated contract modules.")
	catalogueFlag := flagSet.String("catalogue", "", "Output path for the action catalogue source file.")
	cataloguePkgFlag := flagSet.String("catalogue-pkg", "actions", "Package name for the catalogue file.")
	configFlag := flagSet.String("config", "", "Profile configuration document to validate.")
	logFormat, logLevel := logFlags(flagSet)

	if shouldExit, err := parseFlags(flagSet, args); shouldExit || err != nil {
		return nil, shouldExit, err
	}
	if err := validateLogFlags(*logFormat, *logLevel); err != nil {
		return nil, false, err
	}

	config, err := app.NewConfig(app.Config{
		Command:       app.CommandActions,
		ProtocolsDir:  *protocolsFlag,
		CataloguePath: *catalogueFlag,
		CataloguePkg:  *cataloguePkgFlag,
		ConfigPath:    *configFlag,
		LogFormat:     *logFormat,
		LogLevel:      *logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}

func logFlags(flagSet *flag.FlagSet) (format, level *string) {
	format = flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	level = flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	return format, level
}

func parseFlags(flagSet *flag.FlagSet, args []string) (bool, error) {
	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return true, nil
		}
		return false, &ExitError{Code: 2, Message: err.Error()}
	}
	return false, nil
}

func validateLogFlags(format, level string) error {
	switch strings.ToLower(format) {
	case "text", "json":
	default:
		return &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
	default:
		return &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	return nil
}
