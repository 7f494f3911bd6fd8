package snapshot

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// Validate checks the structural invariants of a decoded state
func Validate(state *models.RaffleState) error {
	prizeIDs := make(map[string]struct{}, len(state.Prizes))
	for i, p := range state.Prizes {
		if p.ID == "" {
			return fmt.Errorf("%w: prize %d has no id", ErrMalformedSnapshot, i)
		}
		if _, dup := prizeIDs[p.ID]; dup {
			return fmt.Errorf("%w: duplicate prize id %q", ErrMalformedSnapshot, p.ID)
		}
		prizeIDs[p.ID] = struct{}{}

		if p.Qty < 0 || p.Remaining < 0 || p.Remaining > p.Qty {
			return fmt.Errorf("%w: prize %q has stock %d/%d", ErrMalformedSnapshot, p.Name, p.Remaining, p.Qty)
		}
	}

	participantIDs := make(map[string]struct{}, len(state.Participants))
	for i, p := range state.Participants {
		if p.ID == "" {
			return fmt.Errorf("%w: participant %d has no id", ErrMalformedSnapshot, i)
		}
		if _, dup := participantIDs[p.ID]; dup {
			return fmt.Errorf("%w: duplicate participant id %q", ErrMalformedSnapshot, p.ID)
		}
		participantIDs[p.ID] = struct{}{}

		// names are unique ignoring case
		for _, other := range state.Participants[:i] {
			if strings.EqualFold(other.Name, p.Name) {
				return fmt.Errorf("%w: duplicate participant name %q", ErrMalformedSnapshot, p.Name)
			}
		}

		for name, count := range p.Wins {
			if count < 0 {
				return fmt.Errorf("%w: participant %q has %d wins of %q", ErrMalformedSnapshot, p.Name, count, name)
			}
		}
	}

	return nil
}
