package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/langtags/internal/app"
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
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("langtags", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
langtags - a localization string-table toolkit.

Usage:
  langtags [options] INPUT_CSV OUTPUT_FILE
  langtags [options] -pipeline PATH

Arguments:
  INPUT_CSV
    Path to a string-table CSV file whose first record is the header row.
  OUTPUT_FILE
    Path the newline-delimited language tag list is written to.

Options:
`)
		flagSet.PrintDefaults()
	}

	pipelineFlag := flagSet.String("pipeline", "", "Path to a pipeline manifest: a single .hcl file or a directory of .hcl files.")
	pFlag := flagSet.String("p", "", "Path to a pipeline manifest (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	pipelinePath := *pipelineFlag
	if pipelinePath == "" {
		pipelinePath = *pFlag
	}

	if pipelinePath == "" && flagSet.NArg() == 0 {
		slog.Debug("No arguments provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if pipelinePath != "" && flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: "positional arguments cannot be combined with -pipeline"}
	}

	var inputPath, outputPath string
	if pipelinePath == "" {
		if flagSet.NArg() < 2 {
			return nil, false, &ExitError{Code: 2, Message: "both an input file and an output file are required"}
		}
		if flagSet.NArg() > 2 {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(2))}
		}
		inputPath = flagSet.Arg(0)
		outputPath = flagSet.Arg(1)
	}
	slog.Debug("Operation mode determined.", "pipeline", pipelinePath, "input", inputPath, "output", outputPath)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		InputPath:    inputPath,
		OutputPath:   outputPath,
		PipelinePath: pipelinePath,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
