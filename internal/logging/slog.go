package logging

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"path/filepath"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation = "operation"
	KeyService   = "service"
	KeyTool      = "tool"
	KeyPath      = "path"
	KeyDatabase  = "database"
	KeyPathHash  = "path_hash"
	KeyDuration  = "duration"
	KeyStatus    = "status"
	KeyError     = "error"
)

// Status values for consistent logging.
// Note: These are intentionally duplicated from instrumentation package
// to avoid circular dependencies (instrumentation imports logging).
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// WithTool returns a logger with the tool attribute set.
func WithTool(logger *slog.Logger, tool string) *slog.Logger {
	return logger.With(slog.String(KeyTool, tool))
}

// WithService returns a logger with the service attribute set.
func WithService(logger *slog.Logger, service string) *slog.Logger {
	return logger.With(slog.String(KeyService, service))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Service returns a slog attribute for the service name.
func Service(svc string) slog.Attr {
	return slog.String(KeyService, svc)
}

// Tool returns a slog attribute for the tool name.
func Tool(tool string) slog.Attr {
	return slog.String(KeyTool, tool)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Path returns a slog attribute for a filesystem path.
func Path(path string) slog.Attr {
	return slog.String(KeyPath, path)
}

// Database returns a slog attribute for a Notion database id.
func Database(id string) slog.Attr {
	return slog.String(KeyDatabase, id)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from output.
// This allows safely passing Err(maybeNilErr) without adding empty attributes.
//
// Usage:
//
//	logger.Info("operation", logging.Err(err))  // Safe even if err is nil
func Err(err error) slog.Attr {
	if err == nil {
		// Return an empty Group that slog will omit from output
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// AnonymizePath returns a hashed representation of a filesystem path for
// logging purposes. This allows correlation of log entries without exposing
// directory layouts or user names embedded in paths.
func AnonymizePath(path string) string {
	if path == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(path))
	return "path:" + hex.EncodeToString(hash[:8])
}

// PathHash returns a slog attribute with the anonymized path. This is a
// convenience function to reduce repetition in logging calls and ensure
// consistent attribute naming across the codebase.
func PathHash(path string) slog.Attr {
	return slog.String(KeyPathHash, AnonymizePath(path))
}

// SanitizeToken returns a masked version of a token for logging.
// It returns a length indicator without exposing any token content,
// as even partial token prefixes can aid attacks.
func SanitizeToken(token string) string {
	if token == "" {
		return "<empty>"
	}
	return fmt.Sprintf("[token:%d chars]", len(token))
}

// Basename returns only the final element of a path. This is useful for
// lower-cardinality logging where the full path would create too many
// unique values.
func Basename(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

// File returns a slog attribute for the file's base name (lower cardinality
// than the full path).
func File(path string) slog.Attr {
	return slog.String("file", Basename(path))
}
