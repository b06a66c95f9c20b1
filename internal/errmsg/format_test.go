//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConfigLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpConfigLoad,
			err:      errors.New("file not found"),
			expected: "Failed to load configuration: file not found",
		},
		{
			name:     "catalog operation",
			op:       OpCatalogLoad,
			err:      errors.New("duplicate template"),
			expected: "Failed to load template catalog: duplicate template",
		},
		{
			name:     "state operation",
			op:       OpStateSave,
			err:      errors.New("database is locked"),
			expected: "Failed to save state: database is locked",
		},
		{
			name:     "initialize operation",
			op:       OpInitialize,
			err:      errors.New("no templates"),
			expected: "Failed to initialize carousel: no templates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpCatalogLoad,
			context:  "themes.yaml",
			err:      nil,
			expected: "",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpCatalogLoad,
			context:  "",
			err:      errors.New("bad yaml"),
			expected: "Failed to load template catalog: bad yaml",
		},
		{
			name:     "includes context",
			op:       OpStateRestore,
			context:  "Ocean",
			err:      errors.New("not in catalog"),
			expected: "Failed to restore focused template 'Ocean': not in catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
