// Package selection decides which prize a spin lands on.
package selection

import (
	"errors"

	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/rng"
)

// ErrNoCandidates is returned when there is nothing to select from
var ErrNoCandidates = errors.New("no prizes to select from")

// SelectPrize picks one of the given in-stock prizes and returns its index
// in prizes. With noRepeatPrize the prize matching lastPrizeID is left out
// of the pool unless it is the only one. With weightedByStock every
// candidate is weighted by its remaining stock (at least 1), otherwise the
// draw is uniform over the whole list.
func SelectPrize(prizes []*models.Prize, lastPrizeID string, noRepeatPrize, weightedByStock bool, src rng.Source) (int, error) {
	if len(prizes) == 0 {
		return 0, ErrNoCandidates
	}
	if len(prizes) == 1 {
		return 0, nil
	}
	if src == nil {
		src = rng.New(nil)
	}

	// pool holds indexes into prizes
	pool := make([]int, 0, len(prizes))
	for i, p := range prizes {
		if noRepeatPrize && lastPrizeID != "" && p.ID == lastPrizeID {
			continue
		}
		pool = append(pool, i)
	}
	if len(pool) == 0 {
		for i := range prizes {
			pool = append(pool, i)
		}
	}

	if weightedByStock {
		if idx, ok := weightedPick(prizes, pool, src); ok {
			return idx, nil
		}
	}

	return src.IntN(len(prizes)), nil
}

// weightedPick runs a cumulative roulette over the pool with a single draw
func weightedPick(prizes []*models.Prize, pool []int, src rng.Source) (int, bool) {
	weights := make([]float64, len(pool))
	total := 0.0
	for i, idx := range pool {
		weights[i] = float64(Weight(prizes[idx]))
		total += weights[i]
	}

	roll := src.Float64() * total
	for i, idx := range pool {
		roll -= weights[i]
		if roll <= 0 {
			return idx, true
		}
	}
	return 0, false
}

// Weight is the selection weight of a prize when drawing by stock
func Weight(p *models.Prize) int {
	if p.Remaining < 1 {
		return 1
	}
	return p.Remaining
}
