//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionScrollLeft, []string{"h", "left"}, "Scroll left", "carousel"},
		{ActionScrollRight, []string{"l", "right"}, "Scroll right", "carousel"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"h", ActionScrollLeft},
		{"left", ActionScrollLeft},
		{"l", ActionScrollRight},
		{"right", ActionScrollRight},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		action   Action
		expected []string
	}{
		{ActionQuit, []string{"q", "ctrl+c"}},
		{ActionHelp, []string{"?"}},
		{ActionScrollLeft, []string{"h", "left"}},
		{Action("unknown"), nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			result := r.KeysFor(tt.action)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("KeysFor(%q) = %v, want nil", tt.action, result)
				}
				return
			}

			if len(result) != len(tt.expected) {
				t.Errorf("KeysFor(%q) = %v, want %v", tt.action, result, tt.expected)
				return
			}

			for _, key := range tt.expected {
				if !slices.Contains(result, key) {
					t.Errorf("KeysFor(%q) missing key %q, got %v", tt.action, key, result)
				}
			}
		})
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	// Same action defined in multiple contexts with overlapping keys
	bindings := []Binding{
		{ActionScrollLeft, []string{"h", "left"}, "Scroll left", "carousel"},
		{ActionScrollLeft, []string{"h"}, "Scroll left", "global"},
	}

	r := NewResolver(bindings)

	count := 0
	for _, k := range r.KeysFor(ActionScrollLeft) {
		if k == "h" {
			count++
		}
	}

	if count != 1 {
		t.Errorf("expected 'h' to appear once after deduplication, got %d", count)
	}
}

func TestResolver_Help(t *testing.T) {
	r := NewResolver(All)
	h := r.Help()

	if got := len(h.ShortHelp()); got != len(All) {
		t.Errorf("ShortHelp() has %d bindings, want %d", got, len(All))
	}

	full := h.FullHelp()
	if len(full) != 2 {
		t.Fatalf("FullHelp() has %d columns, want 2 (carousel, global)", len(full))
	}
	if got := full[0][0].Help().Desc; got != "Scroll left" {
		t.Errorf("first full help entry = %q, want %q", got, "Scroll left")
	}
	if got := len(full[1]); got != 2 {
		t.Errorf("global column has %d bindings, want 2", got)
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "no duplicates",
			input:    []string{"a", "b", "c"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "with duplicates",
			input:    []string{"a", "b", "a", "c", "b"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := dedupe(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver([]Binding{})

	if action := r.Resolve("q"); action != "" {
		t.Errorf("Resolve on empty resolver should return empty, got %q", action)
	}

	if keys := r.KeysFor(ActionQuit); keys != nil {
		t.Errorf("KeysFor on empty resolver should return nil, got %v", keys)
	}
}
