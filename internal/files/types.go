package files

import "fmt"

// Content type tags for FileContent envelopes.
const (
	TypeText = "text"
	TypeJSON = "json"
	TypeCSV  = "csv"
)

// DefaultEncoding is the encoding used for all file reads.
const DefaultEncoding = "utf-8"

// FileContent is the uniform envelope returned by every reader.
type FileContent struct {
	// Filename is the base name of the file (no directory components)
	Filename string `json:"filename"`

	// ContentType is one of TypeText, TypeJSON, TypeCSV
	ContentType string `json:"content_type"`

	// Content holds a string for text files, the decoded value for JSON
	// files, or a []Record for CSV files
	Content any `json:"content"`

	// Size is the length of the decoded text for text and JSON files,
	// and the on-disk byte length for CSV files
	Size int64 `json:"size"`

	// Encoding is the text encoding of the source file
	Encoding string `json:"encoding"`

	// Headers preserves the CSV header order for rendering. Maps lose
	// column order, so it is carried separately; it is not part of the
	// envelope callers receive.
	Headers []string `json:"-"`
}

// Record is a single delimited-file row keyed by header name.
type Record map[string]string

// DirectoryListing describes the regular files directly inside a directory.
type DirectoryListing struct {
	Directory  string   `json:"directory"`
	Files      []string `json:"files"`
	TotalCount int      `json:"total_count"`
}

// ErrorKind classifies file reader failures.
type ErrorKind string

const (
	// KindNotFound means the path does not exist
	KindNotFound ErrorKind = "not_found"

	// KindInvalidInput means the path exists but has the wrong type
	// (e.g. a directory where a regular file is required)
	KindInvalidInput ErrorKind = "invalid_input"

	// KindInvalidFormat means the file content could not be parsed
	KindInvalidFormat ErrorKind = "invalid_format"
)

// FileError represents an error that occurred during a file operation
type FileError struct {
	// Op is the operation that failed (e.g. "read_text", "read_json")
	Op string

	// Path is the filesystem path the operation was given
	Path string

	// Kind classifies the failure
	Kind ErrorKind

	// Err is the underlying error
	Err error
}

// Error implements the error interface
func (e *FileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("files %s (path: %s): %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("files %s: %v", e.Op, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *FileError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a FileError with KindNotFound.
func IsNotFound(err error) bool {
	fe, ok := err.(*FileError)
	return ok && fe.Kind == KindNotFound
}

// IsInvalidFormat reports whether err is a FileError with KindInvalidFormat.
func IsInvalidFormat(err error) bool {
	fe, ok := err.(*FileError)
	return ok && fe.Kind == KindInvalidFormat
}
