package hype

// Split is the three-way division of one HYPE transfer. The burned and
// platform cuts leave circulation; only the creator share is credited
// to a balance. Burned + Platform + Creator always equals Amount.
type Split struct {
	Amount   int64 `json:"amount"`
	Burned   int64 `json:"burned"`
	Platform int64 `json:"platform"`
	Creator  int64 `json:"creator"`
}

// ComputeSplit divides amount using integer percentages. Both cuts
// round down, so the creator share absorbs the remainder; for small
// amounts the cuts can be zero and the creator receives everything.
func ComputeSplit(amount int64, burnPercent, platformPercent int) Split {
	burned := amount * int64(burnPercent) / 100
	platform := amount * int64(platformPercent) / 100
	return Split{
		Amount:   amount,
		Burned:   burned,
		Platform: platform,
		Creator:  amount - burned - platform,
	}
}
