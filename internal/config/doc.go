// Package config provides configuration management for the skillset CLI.
//
// # Configuration File
//
// The default configuration file location is
// $XDG_CONFIG_HOME/skillset/config.yaml (~/.config/skillset/config.yaml on
// most systems). It is created with defaults on first use:
//
//	version: 1
//	source: .skillset/skills
//	user_source: ~/.skillset/skills
//	targets:
//	  - label: Cursor
//	    path: ~/.cursor/skills
//	  - label: Claude Code
//	    path: ~/.claude/skills
//	install:
//	  use_ssh: false
//	  host: github.com
//	  skill_dirs:
//	    - .claude/skills
//	    - skills
//
// Relative target paths, such as .github/skills, are resolved against the
// working directory. A leading "~/" expands to the home directory.
//
// # Loading Configuration
//
// Use [LoadOrCreate] from commands; it writes defaults when the file is
// missing and saves legacy values it rewrote:
//
//	cfg, state, err := config.LoadOrCreate(config.DefaultConfigPath())
//	if err != nil {
//		return err
//	}
//	if state == config.StateCreated {
//		fmt.Println("Config created")
//	}
//
// Environment variables prefixed with SKILLSET_ override scalar keys, with
// dots replaced by underscores (SKILLSET_INSTALL_USE_SSH=true).
//
// # Validation
//
// Loaded and saved configurations are validated with [Validate], which
// returns every problem found rather than stopping at the first.
package config
