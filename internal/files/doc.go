// Package files provides readers for local files in several formats.
//
// This package implements the file access layer used by the MCP tools:
//   - Reading plain text files (.txt, .md, source code, etc.)
//   - Reading and parsing JSON files
//   - Reading and parsing delimited (CSV-style) files
//   - Listing regular files in a directory with extension filters
//
// Every read returns a FileContent envelope describing the file name, a
// content type tag, the parsed content, the size, and the encoding. The
// shape of the Content field is determined solely by the ContentType tag:
// "text" carries a string, "json" carries the decoded JSON value, and "csv"
// carries an ordered slice of header-keyed records.
//
// Size semantics differ by content type: text and JSON readers report the
// length of the decoded text, while the CSV reader reports the file's byte
// length on disk. This matches the historical behavior of the service and
// is relied upon by callers that summarize files.
//
// Errors are reported as *FileError values carrying an operation name, the
// offending path, and a kind (KindNotFound, KindInvalidInput,
// KindInvalidFormat) so that callers can map failures onto their own error
// envelopes without string matching.
package files
