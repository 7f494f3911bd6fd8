package models

import "strings"

// RaffleState is the aggregate of everything a raffle persists
type RaffleState struct {
	// Prizes in insertion order, which is also wheel render order
	Prizes []*Prize `json:"prizes"`

	// Participants in insertion order
	Participants []*Participant `json:"participants"`

	// History is the append-only log of awarded prizes
	History []*HistoryEntry `json:"history"`

	// Options for spins
	Options Options `json:"options"`

	// LastPrizeID is the prize awarded by the most recent spin, empty if none
	LastPrizeID string `json:"lastPrizeId"`
}

// NewRaffleState returns an empty state with default options
func NewRaffleState() *RaffleState {
	return &RaffleState{
		Prizes:       []*Prize{},
		Participants: []*Participant{},
		History:      []*HistoryEntry{},
		Options:      DefaultOptions(),
	}
}

// AvailablePrizes returns the prizes with remaining stock, in render order
func (s *RaffleState) AvailablePrizes() []*Prize {
	prizes := make([]*Prize, 0, len(s.Prizes))
	for _, p := range s.Prizes {
		if p.InStock() {
			prizes = append(prizes, p)
		}
	}
	return prizes
}

// ActiveParticipants returns the participants still eligible to spin
func (s *RaffleState) ActiveParticipants() []*Participant {
	participants := make([]*Participant, 0, len(s.Participants))
	for _, p := range s.Participants {
		if p.Active {
			participants = append(participants, p)
		}
	}
	return participants
}

// FindPrize returns the prize with the given ID or nil
func (s *RaffleState) FindPrize(id string) *Prize {
	for _, p := range s.Prizes {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindPrizeByName returns the prize with the given name ignoring case, or nil
func (s *RaffleState) FindPrizeByName(name string) *Prize {
	for _, p := range s.Prizes {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// FindParticipant returns the participant with the given ID or nil
func (s *RaffleState) FindParticipant(id string) *Participant {
	for _, p := range s.Participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindParticipantByName returns the participant with the given name ignoring case, or nil
func (s *RaffleState) FindParticipantByName(name string) *Participant {
	for _, p := range s.Participants {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// RemovePrize deletes a prize by ID and reports whether it existed
func (s *RaffleState) RemovePrize(id string) bool {
	for i, p := range s.Prizes {
		if p.ID == id {
			s.Prizes = append(s.Prizes[:i], s.Prizes[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveParticipant deletes a participant by ID and reports whether it existed
func (s *RaffleState) RemoveParticipant(id string) bool {
	for i, p := range s.Participants {
		if p.ID == id {
			s.Participants = append(s.Participants[:i], s.Participants[i+1:]...)
			return true
		}
	}
	return false
}

// RecentHistory returns up to limit entries, most recent first.
// A limit <= 0 returns the whole history.
func (s *RaffleState) RecentHistory(limit int) []*HistoryEntry {
	n := len(s.History)
	if limit > 0 && limit < n {
		n = limit
	}

	entries := make([]*HistoryEntry, 0, n)
	for i := len(s.History) - 1; i >= 0 && len(entries) < n; i-- {
		entries = append(entries, s.History[i])
	}
	return entries
}
