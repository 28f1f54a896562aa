package handlers

import (
	"testing"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		def      int
		max      int
		expected int
	}{
		{"empty uses default", "", 20, 100, 20},
		{"valid value", "35", 20, 100, 35},
		{"zero uses default", "0", 20, 100, 20},
		{"negative uses default", "-5", 20, 100, 20},
		{"not a number uses default", "lots", 20, 100, 20},
		{"above ceiling clamps", "5000", 20, 100, 100},
		{"exactly the ceiling", "100", 20, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseLimit(tt.raw, tt.def, tt.max)
			if result != tt.expected {
				t.Errorf("parseLimit(%q, %d, %d) = %d, want %d", tt.raw, tt.def, tt.max, result, tt.expected)
			}
		})
	}
}
