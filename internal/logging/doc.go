// Package logging provides structured logging for the skillset CLI using slog.
//
// The package supports both text and JSON output formats, configurable log
// levels, and helpers for testing. All loggers are based on the standard
// library's [log/slog] package.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("starting", "version", "1.0.0")
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
//
// # Context
//
// Commands store their configured logger in the command context with
// [NewContext]; library code retrieves it with [FromContext] and falls back
// to slog.Default.
//
// # Redaction
//
// The text handler and [NewJSONHandler] mask attribute values whose key
// looks secret or whose value is a token or a URL with embedded credentials,
// since package URLs may carry access tokens.
//
// # Log Files
//
// [OpenFileSink] appends JSON records to a file only its owner can read, and
// [Tee] sends each record to both the terminal and the file, each with its
// own level.
//
// # Quiet Mode
//
// Use [NewDiscard] when log output should be suppressed entirely:
//
//	logger := logging.NewDiscard()
package logging
