package instrumentation

import "testing"

func TestExtractFileExtension(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"lowercase extension", "/data/notes.txt", ".txt"},
		{"uppercase extension", "/data/report.CSV", ".csv"},
		{"mixed case extension", "config.Json", ".json"},
		{"no extension", "Makefile", "none"},
		{"trailing dot", "archive.", "none"},
		{"hidden file with extension", "/home/user/.config.yaml", ".yaml"},
		{"empty path", "", "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractFileExtension(tt.path); got != tt.want {
				t.Errorf("ExtractFileExtension(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
