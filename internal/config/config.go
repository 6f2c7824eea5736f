// Package config provides configuration management for skillset using Viper.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/paths"
	"github.com/thoreinstein/skillset/pkg/fileutil"
)

// EnvPrefix is the prefix for environment overrides, e.g. SKILLSET_SOURCE.
const EnvPrefix = "SKILLSET"

// CurrentVersion is written to new configuration files.
const CurrentVersion = 1

// MaxConfigSize bounds the config file read by Load. A few targets fit in
// well under a kilobyte.
const MaxConfigSize = 64 << 10

// Default locations of the canonical skill trees.
const (
	DefaultSource     = ".skillset/skills"
	DefaultUserSource = "~/.skillset/skills"
)

// Legacy locations rewritten on load.
const (
	legacySource     = ".ai/skills"
	legacyUserSource = "~/.ai/skills"
)

// ErrNotFound is returned by Load when the file does not exist.
var ErrNotFound = errors.New("config file not found")

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version" json:"version" toml:"version"`

	// Source is the workspace skill tree, relative to the working directory
	// unless absolute.
	Source string `mapstructure:"source" yaml:"source" json:"source" toml:"source"`

	// UserSource is the skill tree used with --user.
	UserSource string `mapstructure:"user_source" yaml:"user_source" json:"user_source" toml:"user_source"`

	Targets []Target      `mapstructure:"targets" yaml:"targets" json:"targets" toml:"targets"`
	Install InstallConfig `mapstructure:"install" yaml:"install" json:"install" toml:"install"`
}

// Target is a tool's skills directory.
type Target struct {
	Label string `mapstructure:"label" yaml:"label" json:"label" toml:"label"`
	Path  string `mapstructure:"path" yaml:"path" json:"path" toml:"path"`
}

// InstallConfig controls package installs.
type InstallConfig struct {
	// UseSSH clones owner/repo packages over SSH.
	UseSSH bool `mapstructure:"use_ssh" yaml:"use_ssh" json:"use_ssh" toml:"use_ssh"`

	// Host is the git host owner/repo packages expand against.
	Host string `mapstructure:"host" yaml:"host" json:"host" toml:"host"`

	// SkillDirs are probed in order inside a package.
	SkillDirs []string `mapstructure:"skill_dirs" yaml:"skill_dirs" json:"skill_dirs" toml:"skill_dirs"`
}

// SupportedTools returns the tools known to read SKILL.md bundles, in the
// order they are synced by default.
func SupportedTools() []Target {
	return []Target{
		{Label: "Cursor", Path: "~/.cursor/skills"},
		{Label: "Claude Code", Path: "~/.claude/skills"},
		{Label: "Windsurf", Path: "~/.windsurf/skills"},
		{Label: "Codex", Path: "~/.codex/skills"},
		{Label: "OpenCode", Path: "~/.opencode/skills"},
		{Label: "Gemini", Path: "~/.gemini/skills"},
		{Label: "GitHub Copilot (project)", Path: ".github/skills"},
		{Label: "GitHub Copilot (personal)", Path: "~/.copilot/skills"},
	}
}

// DefaultSkillDirs are the package directories probed when none are
// configured.
func DefaultSkillDirs() []string {
	return []string{".claude/skills", "skills"}
}

// Default returns a configuration with every supported tool as a target.
func Default() *Config {
	return &Config{
		Version:    CurrentVersion,
		Source:     DefaultSource,
		UserSource: DefaultUserSource,
		Targets:    SupportedTools(),
		Install: InstallConfig{
			Host:      "github.com",
			SkillDirs: DefaultSkillDirs(),
		},
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	return paths.ConfigPath()
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("version", d.Version)
	v.SetDefault("source", d.Source)
	v.SetDefault("user_source", d.UserSource)
	v.SetDefault("targets", d.Targets)
	v.SetDefault("install.use_ssh", d.Install.UseSSH)
	v.SetDefault("install.host", d.Install.Host)
	v.SetDefault("install.skill_dirs", d.Install.SkillDirs)
	return v
}

// Load reads and validates the configuration file at path. Keys missing from
// the file take their default values, and SKILLSET_* environment variables
// override both. Legacy source locations are rewritten in memory.
func Load(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, false, errors.Wrapf(ErrNotFound, "%s", path)
	}
	data, err := fileutil.ReadFileWithLimit(path, MaxConfigSize)
	if err != nil {
		return nil, false, errors.Wrapf(err, "reading config file %s", path)
	}

	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, false, errors.Mark(errors.Wrapf(err, "parsing config file %s", path), errors.ErrInvalidConfig)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, false, errors.Mark(errors.Wrapf(err, "decoding config file %s", path), errors.ErrInvalidConfig)
	}

	migrated := migrate(&cfg)

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, false, errors.Mark(
			errors.Wrapf(errors.Join(errs...), "config file %s", path),
			errors.ErrInvalidConfig)
	}

	return &cfg, migrated, nil
}

// migrate rewrites legacy values and reports whether anything changed.
func migrate(cfg *Config) bool {
	changed := false
	if cfg.Source == legacySource {
		cfg.Source = DefaultSource
		changed = true
	}
	if cfg.UserSource == legacyUserSource {
		cfg.UserSource = DefaultUserSource
		changed = true
	}
	return changed
}

// State says what LoadOrCreate did.
type State int

const (
	// StateLoaded means an existing file was read unchanged.
	StateLoaded State = iota
	// StateCreated means defaults were written to a new file.
	StateCreated
	// StateMigrated means legacy values were rewritten and saved.
	StateMigrated
)

// LoadOrCreate loads path, writing the defaults there first when the file
// does not exist. A migrated configuration is saved back.
func LoadOrCreate(path string) (*Config, State, error) {
	cfg, migrated, err := load(path)
	switch {
	case err == nil && migrated:
		if err := Save(path, cfg); err != nil {
			return nil, StateLoaded, err
		}
		return cfg, StateMigrated, nil
	case err == nil:
		return cfg, StateLoaded, nil
	case !errors.Is(err, ErrNotFound):
		return nil, StateLoaded, err
	}

	if err := Save(path, Default()); err != nil {
		return nil, StateLoaded, err
	}
	// Re-read so environment overrides apply to a fresh file too.
	cfg, err = Load(path)
	if err != nil {
		return nil, StateLoaded, err
	}
	return cfg, StateCreated, nil
}

// Save writes cfg to path atomically, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if errs := Validate(cfg); len(errs) > 0 {
		return errors.Mark(errors.Join(errs...), errors.ErrInvalidConfig)
	}
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrapf(err, "creating config directory %s", filepath.Dir(path))
	}
	if err := fileutil.AtomicWriteYAML(path, cfg); err != nil {
		return errors.Wrapf(err, "writing config file %s", path)
	}
	return nil
}
