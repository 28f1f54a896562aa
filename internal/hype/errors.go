package hype

import "errors"

// Errors surfaced by the ledger and reward engines. Handlers map these
// to 400-class responses; anything else is a dependency failure.
var (
	ErrInvalidAmount       = errors.New("amount must be a positive integer")
	ErrSelfTransfer        = errors.New("you cannot give HYPE to your own posts")
	ErrInsufficientBalance = errors.New("insufficient HYPE balance")
	ErrAlreadyClaimed      = errors.New("daily reward already claimed today")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrPostNotFound        = errors.New("post not found")
)

// IsUserError reports whether err is a request error rather than a
// dependency failure
func IsUserError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrSelfTransfer) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrAlreadyClaimed) ||
		errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrPostNotFound)
}
