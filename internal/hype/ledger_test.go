package hype

import (
	"context"
	"errors"
	"testing"
)

// Validation runs before any database access, so a bare Ledger is
// enough to exercise it.
func TestGiveHypeValidation(t *testing.T) {
	ledger := &Ledger{economy: testEconomy}

	tests := []struct {
		name     string
		actorID  string
		postID   string
		toUserID string
		amount   int64
		expected error
	}{
		{"zero amount", "u1", "p1", "u2", 0, ErrInvalidAmount},
		{"negative amount", "u1", "p1", "u2", -3, ErrInvalidAmount},
		{"large negative amount", "u1", "p1", "u2", -1000000, ErrInvalidAmount},
		{"transfer to own post", "u1", "p1", "u1", 10, ErrSelfTransfer},
		{"self transfer with zero amount fails on amount first", "u1", "p1", "u1", 0, ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := ledger.GiveHype(context.Background(), tt.actorID, tt.postID, tt.toUserID, tt.amount)
			if !errors.Is(err, tt.expected) {
				t.Errorf("GiveHype() error = %v, want %v", err, tt.expected)
			}
			if split != nil {
				t.Errorf("GiveHype() split = %+v, want nil", split)
			}
			if !IsUserError(err) {
				t.Errorf("GiveHype() error %v should be a user error", err)
			}
		})
	}
}
