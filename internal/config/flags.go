package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-form form definition file (YAML or JSON)
//	-copy copy the submission id to the clipboard after saving
//	-submit-timeout database save timeout (e.g., "5s")
//	-d database DSN
//	-log-level log level
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig

	fs := flag.NewFlagSet("formguard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.App.FormFile, "form", "", "Form definition file")
	fs.BoolVar(&cfg.App.CopyOnSubmit, "copy", false, "Copy the submission id to the clipboard")
	fs.DurationVar(&cfg.App.SubmitTimeout, "submit-timeout", 0, "Save timeout (e.g., 5s)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &cfg, nil
}
