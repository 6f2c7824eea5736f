package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/skillset/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrMissingLabel indicates a target without a label.
	ErrMissingLabel = errors.New("target label is required")

	// ErrDuplicateLabel indicates two targets sharing a label.
	ErrDuplicateLabel = errors.New("duplicate target label")

	// ErrMissingHost indicates an empty install.host.
	ErrMissingHost = errors.New("install host is required")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if err := validatePath(cfg.Source); err != nil {
		errs = append(errs, &PathError{Field: "source", Path: cfg.Source, Err: err})
	}
	if err := validatePath(cfg.UserSource); err != nil {
		errs = append(errs, &PathError{Field: "user_source", Path: cfg.UserSource, Err: err})
	}

	seen := make(map[string]bool, len(cfg.Targets))
	for i, t := range cfg.Targets {
		field := fmt.Sprintf("targets[%d]", i)
		label := strings.TrimSpace(t.Label)
		switch {
		case label == "":
			errs = append(errs, &FieldError{Field: field + ".label", Err: ErrMissingLabel})
		case seen[label]:
			errs = append(errs, &FieldError{Field: field + ".label", Value: label, Err: ErrDuplicateLabel})
		default:
			seen[label] = true
		}
		if err := validatePath(t.Path); err != nil {
			errs = append(errs, &PathError{Field: field + ".path", Path: t.Path, Err: err})
		}
	}

	if strings.TrimSpace(cfg.Install.Host) == "" {
		errs = append(errs, &FieldError{Field: "install.host", Err: ErrMissingHost})
	}
	for i, dir := range cfg.Install.SkillDirs {
		if err := validateRelative(dir); err != nil {
			errs = append(errs, &PathError{Field: fmt.Sprintf("install.skill_dirs[%d]", i), Path: dir, Err: err})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return ErrInvalidPath
	}

	// Null bytes are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// validateRelative additionally requires a path that stays inside the
// directory it is joined to.
func validateRelative(path string) error {
	if err := validatePath(path); err != nil {
		return err
	}
	cleaned := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return ErrInvalidPath
	}
	return nil
}

// FieldError represents an error for a specific field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return e.Field + ": " + e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
