// Package cli parses the command line of the hybridastar tool.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command line.
type Config struct {
	ScenarioPath string
	LogFormat    string
	LogLevel     string
	OutputFormat string
	Timeout      time.Duration
	ShowMap      bool
}

// Parse processes command-line arguments. It returns the parsed Config, a
// boolean telling the caller to exit cleanly, or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("hybridastar", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
hybridastar - heuristic path search over continuous poses.

Usage:
  hybridastar [options] SCENARIO_PATH

Arguments:
  SCENARIO_PATH
    Path to an .hcl scenario file.

Options:
`)
		flagSet.PrintDefaults()
	}

	scenarioFlag := flagSet.String("scenario", "", "Path to the scenario file.")
	sFlag := flagSet.String("s", "", "Path to the scenario file (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	formatFlag := flagSet.String("format", "text", "Result output format. Options: 'text' or 'json'.")
	timeoutFlag := flagSet.Duration("timeout", 0, "Stop the search after this long. Overrides the scenario timeout; 0 keeps it.")
	mapFlag := flagSet.Bool("map", true, "Print the map with the path overlaid (text format only).")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *scenarioFlag != "" {
		path = *scenarioFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		slog.Debug("No scenario path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	outputFormat := strings.ToLower(*formatFlag)
	if outputFormat != "text" && outputFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'text' or 'json'"}
	}

	if *timeoutFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid timeout: must not be negative"}
	}

	config := &Config{
		ScenarioPath: path,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		OutputFormat: outputFormat,
		Timeout:      *timeoutFlag,
		ShowMap:      *mapFlag,
	}
	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// NewLogger builds the process logger from the parsed level and format.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}
	return slog.New(handler)
}
