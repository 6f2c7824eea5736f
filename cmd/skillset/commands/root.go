// Package commands implements the CLI commands for skillset.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillset/cmd"
	"github.com/thoreinstein/skillset/internal/config"
	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/logging"
	"github.com/thoreinstein/skillset/internal/paths"
)

// userScope holds the value of the --user flag.
var userScope bool

// configPath holds the value of the --config flag.
var configPath string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// assumeYes holds the value of the -y/--yes flag.
var assumeYes bool

// logCloser closes the --log-file sink once the command has run.
var logCloser io.Closer

func init() {
	rootCmd.PersistentFlags().BoolVar(&userScope, "user", false,
		"use the user-level skill store instead of the workspace")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: $XDG_CONFIG_HOME/skillset/config.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false,
		"answer yes to overwrite and remove prompts")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("skillset version {{.Version}}\n")

	// Errors are printed by main with their suggestions.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "skillset",
	Short: "Manage and sync AI agent skills across multiple tools",
	Long: `skillset keeps one canonical directory of agent skills and copies it
into every AI tool that reads skills: Cursor, Claude Code, Windsurf, Codex,
OpenCode, Gemini and GitHub Copilot.

A skill is a directory containing a SKILL.md file. Skills live in
.skillset/skills of the current workspace, or in ~/.skillset/skills when
--user is given. Packages of skills can be installed from git repositories
or local directories.`,
	Example: `  # Create a skill and copy it to every configured tool
  skillset add code-review
  skillset sync

  # Install skills published in a GitHub repository
  skillset install anthropics/skills --skill pdf

  # Show which tools have which skills
  skillset list

  See Also: skillset config, skillset doc`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("--quiet and --verbose are mutually exclusive"),
			"cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// Flags win over the environment.
		if v == 0 {
			if val, ok := os.LookupEnv("SKILLSET_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = logging.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	var fileHandler slog.Handler
	if logFile != "" {
		closeLogFile()
		h, c, err := logging.OpenFileSink(paths.ExpandHome(logFile), level)
		if err != nil {
			return errors.NewUserError(err, "Check that the --log-file directory exists and is writable")
		}
		fileHandler, logCloser = h, c
	}

	handler := logging.Tee(primaryHandler, fileHandler)
	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// configFile returns the config file in effect for this invocation.
func configFile() string {
	if configPath != "" {
		return paths.ExpandHome(configPath)
	}
	return config.DefaultConfigPath()
}

// loadConfig reads the config file, creating it with defaults on first use.
// Creation and migration are reported on the command's error stream so they
// never mix with command output.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configFile()
	cfg, state, err := config.LoadOrCreate(path)
	if err != nil {
		return nil, errors.NewConfigError(err)
	}

	switch state {
	case config.StateCreated:
		fmt.Fprintf(cmd.ErrOrStderr(), "Config created at: %s\n", path)
	case config.StateMigrated:
		fmt.Fprintf(cmd.ErrOrStderr(), "Config migrated to source %s: %s\n", cfg.Source, path)
	case config.StateLoaded:
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() error {
	defer closeLogFile()
	return rootCmd.Execute()
}

func closeLogFile() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}
