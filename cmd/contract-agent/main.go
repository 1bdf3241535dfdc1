// contract-agent CLI - configuration tooling for the contract agent
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kbukum/contract-agent/config"
	"github.com/kbukum/contract-agent/logger"
	"github.com/kbukum/contract-agent/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		printUsage()
		return nil
	}
	switch args[0] {
	case "check":
		return runCheck(args[1:])
	case "init":
		return runInit(args[1:])
	case "version", "--version", "-v":
		fmt.Printf("contract-agent %s\n", version.Short())
		return nil
	case "help", "--help", "-h":
		printUsage()
		return nil
	default:
		return fmt.Errorf("unknown command: %s\n\nRun 'contract-agent help' for usage", args[0])
	}
}

// runCheck loads and validates the configuration and prints a redacted
// summary. A ConfigError propagates to main, which reports it and exits
// non-zero.
func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	envFile := fs.String("env", "", "Path to env file (default: .env if present)")
	noEnv := fs.Bool("no-env", false, "Ignore the process environment")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	var opts []config.Option
	switch {
	case *envFile != "":
		opts = append(opts, config.WithEnvFile(*envFile))
	default:
		if _, err := os.Stat(".env"); err == nil {
			opts = append(opts, config.WithEnvFile(".env"))
		}
	}
	if *noEnv {
		opts = append(opts, config.WithoutProcessEnv())
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}

	logger.Init(logger.Config{Level: cfg.LogLevel, Format: "console"})
	logger.Info("configuration OK")

	// Secret fields render masked through their fmt.Formatter.
	fmt.Printf("Drive folder:          %s\n", cfg.DriveFolderID)
	fmt.Printf("Drive credentials:     %s (token: %s)\n", cfg.DriveCredentialsFile, cfg.DriveTokenFile)
	fmt.Printf("Google AI key:         %v\n", cfg.GoogleAIAPIKey)
	fmt.Printf("ERPNext:               %s (key: %v)\n", cfg.ERPNextURL, cfg.ERPNextAPIKey)
	fmt.Printf("Processing interval:   %s\n", cfg.Interval())
	fmt.Printf("Log level:             %s\n", cfg.LogLevel)
	fmt.Printf("Extraction threshold:  %g\n", cfg.ExtractionConfidenceThreshold)
	fmt.Printf("Fuzzy match threshold: %g\n", cfg.FuzzyMatchThreshold)
	fmt.Printf("Alert periods (days):  %v\n", cfg.AlertPeriods)
	return nil
}

// runInit writes a commented .env template.
func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	out := fs.String("o", ".env", "Output path for the template")
	force := fs.Bool("force", false, "Overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if !*force {
		if _, err := os.Stat(*out); err == nil {
			return fmt.Errorf("%s already exists (use -force to overwrite)", *out)
		}
	}
	if err := os.WriteFile(*out, []byte(config.Template()), 0o600); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	fmt.Printf("Wrote configuration template to %s\n", *out)
	return nil
}

func printUsage() {
	fmt.Print(`contract-agent - configuration tooling for the contract agent

Usage:
  contract-agent <command> [flags]

Commands:
  check      Load and validate the configuration, print a redacted summary
  init       Write a commented .env template
  version    Show version information
  help       Show this help message

Flags for check:
  -env <path>   Env file to load (default: .env if present)
  -no-env       Ignore the process environment

Flags for init:
  -o <path>     Output path (default: .env)
  -force        Overwrite an existing file

Examples:
  # Seed a new deployment
  contract-agent init -o .env

  # Validate before starting the agent
  contract-agent check -env .env
`)
}
