// Package logging provides structured logging utilities for the filenotion application.
//
// It standardizes attribute keys (tool, operation, path, status, error) so
// log entries stay consistent and queryable across packages, and offers
// privacy helpers for values that should not appear verbatim in logs:
// AnonymizePath hashes filesystem paths, Basename strips directories, and
// SanitizeToken masks API tokens entirely.
//
// The package also defines the minimal Logger interface used where
// components accept an injected logger, with SlogAdapter bridging it to
// log/slog.
package logging
