// Package file_tools provides MCP tools for reading local files.
//
// Available tools:
//   - read_text_file: Read a file as UTF-8 text
//   - read_json_file: Read and parse a JSON file
//   - read_csv_file: Read a delimited file into header-keyed records
//   - list_files_in_directory: List regular files in a directory,
//     optionally filtered by extension
//
// All tools are read-only. Results are returned as an indented JSON
// rendering of the reader envelope; failures surface the reader's error
// message in the tool error result.
package file_tools
