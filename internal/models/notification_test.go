package models

import "testing"

func TestNotifyTypeName(t *testing.T) {
	tests := []struct {
		typeID int16
		want   string
	}{
		{NotifyTypeHypeReceived, "hype_received"},
		{NotifyTypeComment, "comment"},
		{NotifyTypeRewardClaimed, "reward_claimed"},
		{0, "unknown"},
		{99, "unknown"},
	}

	for _, tt := range tests {
		if got := NotifyTypeName(tt.typeID); got != tt.want {
			t.Errorf("NotifyTypeName(%d) = %q, want %q", tt.typeID, got, tt.want)
		}
	}
}
