package notion

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filenotion/filenotion/internal/files"
)

func TestFormatFileBodyText(t *testing.T) {
	body, err := FormatFileBody(&files.FileContent{
		ContentType: files.TypeText,
		Content:     "plain text passes through\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "plain text passes through\n", body)
}

func TestFormatFileBodyJSONRoundTrips(t *testing.T) {
	source := map[string]any{
		"name":  "widget",
		"count": float64(3),
		"tags":  []any{"a", "b"},
	}

	body, err := FormatFileBody(&files.FileContent{
		ContentType: files.TypeJSON,
		Content:     source,
	})
	require.NoError(t, err)

	// The rendered body is valid JSON equal to the source value
	var reparsed any
	require.NoError(t, json.Unmarshal([]byte(body), &reparsed))
	assert.Equal(t, source, reparsed)

	// And it is indented, not compact
	assert.Contains(t, body, "\n  ")
}

func TestFormatFileBodyCSV(t *testing.T) {
	records := []files.Record{
		{"name": "alice", "city": "berlin"},
		{"name": "bob", "city": "paris"},
	}

	body, err := FormatFileBody(&files.FileContent{
		ContentType: files.TypeCSV,
		Content:     records,
		Headers:     []string{"name", "city"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "CSV Data (2 rows):", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "name | city", lines[2])
	assert.Equal(t, "--- | ---", lines[3])
}

func TestFormatFileBodyCSVTruncation(t *testing.T) {
	records := make([]files.Record, 15)
	for i := range records {
		records[i] = files.Record{"id": fmt.Sprintf("%d", i)}
	}

	body, err := FormatFileBody(&files.FileContent{
		ContentType: files.TypeCSV,
		Content:     records,
		Headers:     []string{"id"},
	})
	require.NoError(t, err)

	// Exactly 10 data rows are rendered, plus a summary of the rest
	dataRows := 0
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "CSV Data") ||
			strings.HasPrefix(line, "---") || line == "id" ||
			strings.HasPrefix(line, "...") {
			continue
		}
		dataRows++
	}
	assert.Equal(t, 10, dataRows)
	assert.Contains(t, body, "... and 5 more rows")
}

func TestFormatFileBodyEmptyCSV(t *testing.T) {
	body, err := FormatFileBody(&files.FileContent{
		ContentType: files.TypeCSV,
		Content:     []files.Record{},
		Headers:     []string{"a", "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Empty CSV file", body)
}
