package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/gradeadvisor/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags left unset fall back to GRADEADVISOR_* environment variables.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("gradeadvisor", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
GradeAdvisor - An interactive GPA check-in for a five-grade semester.

Usage:
  gradeadvisor [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	scaleFlag := flagSet.String("scale", "", "Path to a grading-scale .hcl file or directory.")
	sFlag := flagSet.String("s", "", "Path to a grading-scale .hcl file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	scalePath := *scaleFlag
	if scalePath == "" {
		scalePath = *sFlag
	}
	if scalePath == "" {
		scalePath = os.Getenv("GRADEADVISOR_SCALE")
	}

	logFormat := strings.ToLower(fallback(*logFormatFlag, "GRADEADVISOR_LOG_FORMAT", "text"))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(fallback(*logLevelFlag, "GRADEADVISOR_LOG_LEVEL", "warn"))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		ScalePath: scalePath,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}

// fallback returns the flag value, the environment value, or the default, in
// that order of preference.
func fallback(flagVal, envKey, def string) string {
	if flagVal != "" {
		return flagVal
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return def
}
