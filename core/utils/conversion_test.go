package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected int
	}{
		{"string amount", "1", 1},
		{"string large id", "2000", 2000},
		{"unparseable string", "abc", 0},
		{"int passthrough", 5, 5},
		{"int64", int64(7), 7},
		{"json float", float64(3), 3},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToInt(tt.input))
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected bool
	}{
		{"tradable flag set", 1, true},
		{"tradable flag unset", 0, false},
		{"string one", "1", true},
		{"string true", "true", true},
		{"string false", "false", false},
		{"bool passthrough", true, true},
		{"json float flag", float64(1), true},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToBool(tt.input))
		})
	}
}
