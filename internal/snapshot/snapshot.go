// Package snapshot reads and writes the JSON document a raffle is persisted,
// exported and imported as.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// ErrMalformedSnapshot is returned when a document cannot be parsed or has the wrong shape
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// ExportFileName is the file name used when a snapshot is downloaded
const ExportFileName = "ruleta-loot-data.json"

type wireOptions struct {
	UniqueWinner    *bool `json:"uniqueWinner"`
	NoRepeatPrize   *bool `json:"noRepeatPrize"`
	WeightedByStock *bool `json:"weightedByStock"`
}

type wireParticipant struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Active bool            `json:"active"`
	Wins   json.RawMessage `json:"wins"`
}

type wireState struct {
	Prizes       []*models.Prize        `json:"prizes"`
	Participants []*wireParticipant     `json:"participants"`
	History      []*models.HistoryEntry `json:"history"`
	Options      *wireOptions           `json:"options"`
	LastPrizeID  *string                `json:"lastPrizeId"`
}

// Decode parses, normalizes and validates a snapshot document. Legacy
// documents whose wins are lists of prize names are converted to counts and
// missing options take their defaults.
func Decode(data []byte) (*models.RaffleState, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: document must be a JSON object", ErrMalformedSnapshot)
	}

	var wire wireState
	if err := json.Unmarshal(trimmed, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	state := models.NewRaffleState()
	state.Options = normalizeOptions(wire.Options)
	if wire.LastPrizeID != nil {
		state.LastPrizeID = *wire.LastPrizeID
	}

	for _, p := range wire.Prizes {
		if p != nil {
			state.Prizes = append(state.Prizes, p)
		}
	}

	for _, p := range wire.Participants {
		if p == nil {
			continue
		}
		wins, err := NormalizeWins(p.Wins)
		if err != nil {
			return nil, fmt.Errorf("%w: participant %q: %v", ErrMalformedSnapshot, p.Name, err)
		}
		state.Participants = append(state.Participants, &models.Participant{
			ID:     p.ID,
			Name:   p.Name,
			Active: p.Active,
			Wins:   wins,
		})
	}

	for _, h := range wire.History {
		if h != nil {
			state.History = append(state.History, h)
		}
	}

	if err := Validate(state); err != nil {
		return nil, err
	}

	return state, nil
}

// Encode renders the state as an indented snapshot document
func Encode(state *models.RaffleState) ([]byte, error) {
	if state == nil {
		return nil, errors.New("state cannot be nil")
	}

	wire := struct {
		Prizes       []*models.Prize        `json:"prizes"`
		Participants []*models.Participant  `json:"participants"`
		History      []*models.HistoryEntry `json:"history"`
		Options      models.Options         `json:"options"`
		LastPrizeID  *string                `json:"lastPrizeId"`
	}{
		Prizes:       nonNil(state.Prizes),
		Participants: make([]*models.Participant, 0, len(state.Participants)),
		History:      nonNil(state.History),
		Options:      state.Options,
	}

	for _, p := range state.Participants {
		cp := *p
		if cp.Wins == nil {
			cp.Wins = models.Wins{}
		}
		wire.Participants = append(wire.Participants, &cp)
	}

	if state.LastPrizeID != "" {
		id := state.LastPrizeID
		wire.LastPrizeID = &id
	}

	data, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// NormalizeWins converts any stored form of a participant's wins to counts.
// An object is taken as is, a list counts repeated names, anything else is
// treated as no wins. Normalizing an already normalized value changes nothing.
func NormalizeWins(raw json.RawMessage) (models.Wins, error) {
	trimmed := bytes.TrimSpace(raw)
	wins := models.Wins{}
	if len(trimmed) == 0 {
		return wins, nil
	}

	switch trimmed[0] {
	case '{':
		if err := json.Unmarshal(trimmed, &wins); err != nil {
			return nil, fmt.Errorf("wins: %w", err)
		}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("wins: %w", err)
		}
		for _, item := range items {
			wins[winKey(item)]++
		}
	}

	return wins, nil
}

// winKey returns the prize name for one legacy list element. Non-string
// elements are keyed by their JSON text.
func winKey(item json.RawMessage) string {
	raw := bytes.TrimSpace(item)
	if bytes.Equal(raw, []byte("null")) {
		return "null"
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return name
	}
	return string(raw)
}

func normalizeOptions(wire *wireOptions) models.Options {
	opts := models.DefaultOptions()
	if wire == nil {
		return opts
	}
	if wire.UniqueWinner != nil {
		opts.UniqueWinner = *wire.UniqueWinner
	}
	if wire.NoRepeatPrize != nil {
		opts.NoRepeatPrize = *wire.NoRepeatPrize
	}
	if wire.WeightedByStock != nil {
		opts.WeightedByStock = *wire.WeightedByStock
	}
	return opts
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
