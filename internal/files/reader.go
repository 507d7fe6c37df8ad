package files

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadText reads the entire file at path as UTF-8 text.
// The envelope's Size is the length of the loaded text.
func ReadText(path string) (*FileContent, error) {
	if err := checkRegularFile("read_text", path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "read_text", Path: path, Kind: KindInvalidInput, Err: err}
	}

	content := string(data)
	return &FileContent{
		Filename:    filepath.Base(path),
		ContentType: TypeText,
		Content:     content,
		Size:        int64(len(content)),
		Encoding:    DefaultEncoding,
	}, nil
}

// ReadJSON reads the file at path and parses it as JSON.
// The envelope's Size is the length of the raw text, not the parsed value.
func ReadJSON(path string) (*FileContent, error) {
	if err := checkRegularFile("read_json", path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: "read_json", Path: path, Kind: KindInvalidInput, Err: err}
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, &FileError{
			Op:   "read_json",
			Path: path,
			Kind: KindInvalidFormat,
			Err:  fmt.Errorf("invalid JSON format: %w", err),
		}
	}

	return &FileContent{
		Filename:    filepath.Base(path),
		ContentType: TypeJSON,
		Content:     value,
		Size:        int64(len(data)),
		Encoding:    DefaultEncoding,
	}, nil
}

// ReadCSV reads the file at path as delimited text. The first row is the
// header; every following row becomes a Record keyed by header name. Rows
// whose column count differs from the header are rejected with
// KindInvalidFormat. maxRows limits the number of data records returned
// when positive; zero or negative means unlimited.
//
// The envelope's Size is the file's byte length on disk, not the length of
// the parsed content.
func ReadCSV(path string, delimiter string, maxRows int) (*FileContent, error) {
	if err := checkRegularFile("read_csv", path); err != nil {
		return nil, err
	}

	if delimiter == "" {
		delimiter = ","
	}
	runes := []rune(delimiter)
	if len(runes) != 1 {
		return nil, &FileError{
			Op:   "read_csv",
			Path: path,
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("delimiter must be a single character, got %q", delimiter),
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: "read_csv", Path: path, Kind: KindInvalidInput, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = runes[0]

	rows, err := reader.ReadAll()
	if err != nil {
		// encoding/csv rejects rows with inconsistent column counts;
		// that surfaces here as a parse error with line information
		return nil, &FileError{
			Op:   "read_csv",
			Path: path,
			Kind: KindInvalidFormat,
			Err:  fmt.Errorf("invalid CSV format: %w", err),
		}
	}

	records := []Record{}
	var header []string
	if len(rows) > 0 {
		header = rows[0]
		for _, row := range rows[1:] {
			if maxRows > 0 && len(records) >= maxRows {
				break
			}
			record := make(Record, len(header))
			for i, name := range header {
				record[name] = row[i]
			}
			records = append(records, record)
		}
	}

	info, err := f.Stat()
	if err != nil {
		return nil, &FileError{Op: "read_csv", Path: path, Kind: KindInvalidInput, Err: err}
	}

	return &FileContent{
		Filename:    filepath.Base(path),
		ContentType: TypeCSV,
		Content:     records,
		Size:        info.Size(),
		Encoding:    DefaultEncoding,
		Headers:     header,
	}, nil
}

// ListDirectory lists the regular files directly inside path, without
// recursing. A nil extensions slice means no filter; a non-nil slice keeps
// only files whose suffix matches one of the given extensions
// (case-insensitively), so an explicitly empty filter matches nothing.
// Extensions may be given with or without a leading dot. The returned file
// names are full paths in the enumeration order of os.ReadDir, which sorts
// by filename.
func ListDirectory(path string, extensions []string) (*DirectoryListing, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &FileError{
				Op:   "list_directory",
				Path: path,
				Kind: KindNotFound,
				Err:  fmt.Errorf("directory not found: %s", path),
			}
		}
		return nil, &FileError{Op: "list_directory", Path: path, Kind: KindInvalidInput, Err: err}
	}
	if !info.IsDir() {
		return nil, &FileError{
			Op:   "list_directory",
			Path: path,
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("path is not a directory: %s", path),
		}
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &FileError{Op: "list_directory", Path: path, Kind: KindInvalidInput, Err: err}
	}

	filtered := extensions != nil
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}

	listed := []string{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if filtered && !matchesExtension(entry.Name(), normalized) {
			continue
		}
		listed = append(listed, filepath.Join(path, entry.Name()))
	}

	return &DirectoryListing{
		Directory:  path,
		Files:      listed,
		TotalCount: len(listed),
	}, nil
}

// matchesExtension reports whether name's suffix case-insensitively matches
// one of the normalized extensions.
func matchesExtension(name string, extensions []string) bool {
	suffix := filepath.Ext(name)
	for _, ext := range extensions {
		if strings.EqualFold(suffix, ext) {
			return true
		}
	}
	return false
}

// checkRegularFile verifies that path exists and names a regular file.
func checkRegularFile(op, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileError{
				Op:   op,
				Path: path,
				Kind: KindNotFound,
				Err:  fmt.Errorf("file not found: %s", path),
			}
		}
		return &FileError{Op: op, Path: path, Kind: KindInvalidInput, Err: err}
	}
	if !info.Mode().IsRegular() {
		return &FileError{
			Op:   op,
			Path: path,
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("path is not a file: %s", path),
		}
	}
	return nil
}
