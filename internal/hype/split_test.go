package hype

import (
	"testing"
)

func TestComputeSplit(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		burned   int64
		platform int64
		creator  int64
	}{
		{"one hype goes entirely to the creator", 1, 0, 0, 1},
		{"small amount below rounding threshold", 6, 0, 0, 6},
		{"exact percentage boundary", 10, 1, 1, 8},
		{"twenty", 20, 3, 3, 14},
		{"hundred", 100, 15, 15, 70},
		{"odd amount rounds down both cuts", 13, 1, 1, 11},
		{"large amount", 1000000, 150000, 150000, 700000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := ComputeSplit(tt.amount, 15, 15)
			if split.Burned != tt.burned {
				t.Errorf("ComputeSplit(%d).Burned = %d, want %d", tt.amount, split.Burned, tt.burned)
			}
			if split.Platform != tt.platform {
				t.Errorf("ComputeSplit(%d).Platform = %d, want %d", tt.amount, split.Platform, tt.platform)
			}
			if split.Creator != tt.creator {
				t.Errorf("ComputeSplit(%d).Creator = %d, want %d", tt.amount, split.Creator, tt.creator)
			}
		})
	}
}

func TestComputeSplitConservation(t *testing.T) {
	// The three shares must always reassemble the full amount, and the
	// creator share can never go negative.
	for amount := int64(1); amount <= 500; amount++ {
		split := ComputeSplit(amount, 15, 15)
		if split.Burned+split.Platform+split.Creator != amount {
			t.Fatalf("split of %d does not conserve: %+v", amount, split)
		}
		if split.Creator < 0 {
			t.Fatalf("split of %d has negative creator share: %+v", amount, split)
		}
		if split.Burned != split.Platform {
			t.Fatalf("burn and platform cuts use the same rounding rule, got %+v for %d", split, amount)
		}
	}
}

func TestComputeSplitCustomPercentages(t *testing.T) {
	split := ComputeSplit(100, 10, 20)
	if split.Burned != 10 || split.Platform != 20 || split.Creator != 70 {
		t.Errorf("ComputeSplit(100, 10, 20) = %+v", split)
	}

	// Zero percentages pass everything through
	split = ComputeSplit(37, 0, 0)
	if split.Creator != 37 || split.Burned != 0 || split.Platform != 0 {
		t.Errorf("ComputeSplit(37, 0, 0) = %+v", split)
	}
}
