package hype

import (
	"testing"
	"time"

	"github.com/hypechain/hypechain/pkg/config"
)

var testEconomy = config.EconomyConfig{
	BurnPercent:     15,
	PlatformPercent: 15,
	BaseReward:      10,
	StreakBonusStep: 2,
	StreakBonusCap:  7,
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextStreak(t *testing.T) {
	today := date(2026, time.March, 10)

	tests := []struct {
		name       string
		lastReward *time.Time
		current    int64
		expected   int64
	}{
		{"first ever claim", nil, 0, 1},
		{"claimed yesterday continues streak", timePtr(date(2026, time.March, 9)), 4, 5},
		{"two day gap resets", timePtr(date(2026, time.March, 8)), 4, 1},
		{"long gap resets", timePtr(date(2026, time.January, 1)), 30, 1},
		{"yesterday with time-of-day noise", timePtr(time.Date(2026, time.March, 9, 23, 59, 59, 0, time.UTC)), 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NextStreak(tt.lastReward, today, tt.current)
			if result != tt.expected {
				t.Errorf("NextStreak() = %d, want %d", result, tt.expected)
			}
		})
	}
}

func TestRewardAmount(t *testing.T) {
	tests := []struct {
		streak int64
		total  int64
		bonus  int64
	}{
		{1, 10, 0},
		{2, 12, 2},
		{3, 14, 4},
		{4, 16, 6},
		{5, 18, 8},
		{6, 20, 10},
		{7, 22, 12},
		{8, 22, 12},
		{100, 22, 12},
	}

	for _, tt := range tests {
		total, base, bonus := RewardAmount(tt.streak, testEconomy)
		if total != tt.total {
			t.Errorf("RewardAmount(%d) total = %d, want %d", tt.streak, total, tt.total)
		}
		if base != 10 {
			t.Errorf("RewardAmount(%d) base = %d, want 10", tt.streak, base)
		}
		if bonus != tt.bonus {
			t.Errorf("RewardAmount(%d) bonus = %d, want %d", tt.streak, bonus, tt.bonus)
		}
	}
}

func TestRewardAmountMonotonicUpToCap(t *testing.T) {
	prev := int64(0)
	for streak := int64(1); streak <= 20; streak++ {
		total, _, _ := RewardAmount(streak, testEconomy)
		if total < prev {
			t.Fatalf("reward decreased at streak %d: %d < %d", streak, total, prev)
		}
		if streak >= int64(testEconomy.StreakBonusCap) && total != 22 {
			t.Fatalf("reward past the cap should stay at 22, got %d at streak %d", total, streak)
		}
		prev = total
	}
}

func TestDay(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "midnight unchanged",
			input:    date(2026, time.March, 10),
			expected: date(2026, time.March, 10),
		},
		{
			name:     "afternoon truncated",
			input:    time.Date(2026, time.March, 10, 15, 42, 7, 0, time.UTC),
			expected: date(2026, time.March, 10),
		},
		{
			name:     "non-UTC zone converted before truncation",
			input:    time.Date(2026, time.March, 10, 23, 0, 0, 0, time.FixedZone("UTC+3", 3*3600)),
			expected: date(2026, time.March, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Day(tt.input); !result.Equal(tt.expected) {
				t.Errorf("Day(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
