// Package errors provides error handling conventions for the skillset CLI.
//
// It re-exports the constructors of github.com/cockroachdb/errors so that
// packages depend on a single import for wrapping, details, and sentinel
// matching, and it defines the ExitError type used by the CLI to choose a
// process exit code.
//
// # Sentinel Errors
//
// Domain packages declare their own sentinels and callers match them with
// [Is]:
//
//	if errors.Is(err, repo.ErrCloneFailed) {
//	    // report the network problem
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, git, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := errors.NewUserError(skill.ErrInvalidName, "Use letters, digits, '-' or '_'")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
