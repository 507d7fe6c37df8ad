package instrumentation

import (
	"path/filepath"
	"strings"
)

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics derived from file paths.

// ExtractFileExtension extracts the lower-cased extension from a file path.
// This reduces cardinality by using the extension instead of the full path.
//
// Example:
//
//	ExtractFileExtension("/data/report.CSV")  // ".csv"
//	ExtractFileExtension("notes.txt")         // ".txt"
//	ExtractFileExtension("Makefile")          // "none"
//	ExtractFileExtension("")                  // "none"
func ExtractFileExtension(path string) string {
	if path == "" {
		return "none"
	}

	ext := filepath.Ext(path)
	if ext == "" || ext == "." {
		return "none"
	}

	return strings.ToLower(ext)
}

// Common operation types for filesystem and Notion API metrics.
// Status and Service constants are defined in config.go.
const (
	OperationReadText = "read_text"
	OperationReadJSON = "read_json"
	OperationReadCSV  = "read_csv"
	OperationList     = "list"
	OperationCreate   = "create_page"
	OperationSearch   = "search_databases"
)
