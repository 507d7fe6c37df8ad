package common

import (
	"reflect"
	"testing"
)

func TestStringArg(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		key      string
		expected string
	}{
		{
			name:     "present string",
			args:     map[string]interface{}{"file_path": "/tmp/a.txt"},
			key:      "file_path",
			expected: "/tmp/a.txt",
		},
		{
			name:     "absent key",
			args:     map[string]interface{}{},
			key:      "file_path",
			expected: "",
		},
		{
			name:     "nil args",
			args:     nil,
			key:      "file_path",
			expected: "",
		},
		{
			name:     "non-string value",
			args:     map[string]interface{}{"file_path": 42},
			key:      "file_path",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringArg(tt.args, tt.key); got != tt.expected {
				t.Errorf("StringArg() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestIntArg(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		expected int
	}{
		{
			name:     "json number arrives as float64",
			args:     map[string]interface{}{"max_rows": float64(10)},
			expected: 10,
		},
		{
			name:     "plain int",
			args:     map[string]interface{}{"max_rows": 5},
			expected: 5,
		},
		{
			name:     "absent",
			args:     map[string]interface{}{},
			expected: 0,
		},
		{
			name:     "wrong type",
			args:     map[string]interface{}{"max_rows": "ten"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntArg(tt.args, "max_rows"); got != tt.expected {
				t.Errorf("IntArg() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestStringSliceArg(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		expected []string
	}{
		{
			name:     "json array of strings",
			args:     map[string]interface{}{"file_extensions": []interface{}{".json", ".csv"}},
			expected: []string{".json", ".csv"},
		},
		{
			name:     "mixed types skips non-strings",
			args:     map[string]interface{}{"file_extensions": []interface{}{".json", 42}},
			expected: []string{".json"},
		},
		{
			name:     "absent returns nil",
			args:     map[string]interface{}{},
			expected: nil,
		},
		{
			name:     "non-list returns nil",
			args:     map[string]interface{}{"file_extensions": ".json"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringSliceArg(tt.args, "file_extensions")
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("StringSliceArg() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestPathFromArgs(t *testing.T) {
	if got := PathFromArgs(map[string]interface{}{"file_path": "/a"}); got != "/a" {
		t.Errorf("PathFromArgs() = %q, expected %q", got, "/a")
	}
	if got := PathFromArgs(map[string]interface{}{"directory_path": "/b"}); got != "/b" {
		t.Errorf("PathFromArgs() = %q, expected %q", got, "/b")
	}
	if got := PathFromArgs(map[string]interface{}{}); got != "" {
		t.Errorf("PathFromArgs() = %q, expected empty", got)
	}
}

func TestDatabaseFromArgs(t *testing.T) {
	if got := DatabaseFromArgs(map[string]interface{}{"database_id": "db-1"}); got != "db-1" {
		t.Errorf("DatabaseFromArgs() = %q, expected %q", got, "db-1")
	}
}
