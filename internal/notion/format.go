package notion

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/filenotion/filenotion/internal/files"
)

// maxRenderedRows is the number of CSV records rendered into a page body
// before the remainder is summarized.
const maxRenderedRows = 10

// emptyCSVBody is the body used for delimited files with no data rows.
const emptyCSVBody = "Empty CSV file"

// FormatFileBody renders a file envelope into a single text body suitable
// for a page paragraph. JSON content is pretty-printed, CSV content becomes
// a pipe-separated table capped at maxRenderedRows rows, and anything else
// is passed through verbatim.
func FormatFileBody(fc *files.FileContent) (string, error) {
	switch fc.ContentType {
	case files.TypeJSON:
		return formatJSONBody(fc.Content)
	case files.TypeCSV:
		records, ok := fc.Content.([]files.Record)
		if !ok {
			return "", fmt.Errorf("csv envelope carries %T, want []files.Record", fc.Content)
		}
		return formatCSVBody(fc.Headers, records), nil
	default:
		text, ok := fc.Content.(string)
		if !ok {
			return "", fmt.Errorf("text envelope carries %T, want string", fc.Content)
		}
		return text, nil
	}
}

// formatJSONBody re-serializes a parsed JSON value with indentation.
func formatJSONBody(value any) (string, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render JSON body: %w", err)
	}
	return string(data), nil
}

// formatCSVBody renders records as a header line, a dashes separator, and
// up to maxRenderedRows pipe-joined rows. When more rows exist, a trailing
// line states how many were omitted.
func formatCSVBody(headers []string, records []files.Record) string {
	if len(records) == 0 {
		return emptyCSVBody
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CSV Data (%d rows):\n\n", len(records))

	b.WriteString(strings.Join(headers, " | "))
	b.WriteString("\n")

	dashes := make([]string, len(headers))
	for i := range dashes {
		dashes[i] = "---"
	}
	b.WriteString(strings.Join(dashes, " | "))
	b.WriteString("\n")

	rendered := records
	if len(rendered) > maxRenderedRows {
		rendered = rendered[:maxRenderedRows]
	}
	for _, record := range rendered {
		cells := make([]string, len(headers))
		for i, h := range headers {
			cells[i] = record[h]
		}
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString("\n")
	}

	if omitted := len(records) - maxRenderedRows; omitted > 0 {
		fmt.Fprintf(&b, "\n... and %d more rows", omitted)
	}

	return b.String()
}
