package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/skillset/internal/config"
	"github.com/thoreinstein/skillset/internal/editor"
	"github.com/thoreinstein/skillset/internal/errors"
)

// configFormat holds the value of the --format flag.
var configFormat string

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "yaml",
		"output format: yaml, json, toml")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage skillset configuration",
	Long: `Manage the skillset configuration file.

The file lists the source directories and the targets skills are synced
to. It is created with every supported tool as a target on first use.
Without a subcommand, shows the configuration.`,
	Example: `  # Show the configuration
  skillset config

  # Show it as JSON
  skillset config show --format json

  See Also: skillset list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configShowCmd.RunE(cmd, args)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults and SKILLSET_* environment
overrides have been applied.`,
	Example: `  # Print as TOML
  skillset config show --format toml

  See Also: skillset config path`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runConfigShowWithIO(cfg, configFormat, cmd.OutOrStdout())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configFile())
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your default editor.

Uses $EDITOR, then $VISUAL, then nano or vi. The file is created
with defaults first if it does not exist, and validated after the editor
exits.`,
	Example: `  # Open config in default editor
  skillset config edit

  # Open with specific editor
  EDITOR=nano skillset config edit

  See Also: skillset config show`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := loadConfig(cmd); err != nil {
			return err
		}
		s := editor.Session{Stdin: cmd.InOrStdin(), Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
		return runConfigEdit(cmd.Context(), s, configFile())
	},
}

func runConfigShowWithIO(cfg *config.Config, format string, w io.Writer) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml", "yml":
		data, err = yaml.Marshal(cfg)
	case "json":
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		return errors.NewUserError(
			errors.Newf("unknown format %q", format),
			"Use --format yaml, json or toml")
	}
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	_, err = w.Write(data)
	return err
}

func runConfigEdit(ctx context.Context, s editor.Session, path string) error {
	if err := s.Open(ctx, path); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to an installed editor")
	}

	if _, err := config.Load(path); err != nil {
		return errors.NewConfigError(err)
	}
	return nil
}
