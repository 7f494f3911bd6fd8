package models

// Options controls how spins behave
type Options struct {
	// UniqueWinner deactivates a participant after they win
	UniqueWinner bool `json:"uniqueWinner"`

	// NoRepeatPrize avoids drawing the previous prize when an alternative exists
	NoRepeatPrize bool `json:"noRepeatPrize"`

	// WeightedByStock draws prizes proportionally to their remaining stock
	WeightedByStock bool `json:"weightedByStock"`
}

// DefaultOptions returns the options used for a new raffle
func DefaultOptions() Options {
	return Options{
		UniqueWinner:    true,
		NoRepeatPrize:   false,
		WeightedByStock: true,
	}
}
