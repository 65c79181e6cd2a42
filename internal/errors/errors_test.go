package errors

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      fmt.Errorf("something went wrong"),
			expected: "Error: something went wrong",
		},
		{
			name:     "wrapped error",
			err:      fmt.Errorf("outer: %w", fmt.Errorf("inner")),
			expected: "Error: outer: inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.err)
			if got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []interface{}
		expected string
	}{
		{
			name:     "no args",
			format:   "plain message",
			args:     nil,
			expected: "Error: plain message",
		},
		{
			name:     "with args",
			format:   "failed to open %s: attempt %d",
			args:     []interface{}{"newlife.json", 2},
			expected: "Error: failed to open newlife.json: attempt 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Formatf(tt.format, tt.args...)
			if got != tt.expected {
				t.Errorf("Formatf() = %q, want %q", got, tt.expected)
			}
		})
	}
}
