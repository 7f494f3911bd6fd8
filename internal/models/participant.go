package models

import (
	"fmt"
	"sort"
	"strings"
)

// Wins maps a prize name to the number of times it was won
type Wins map[string]int

// Total returns the number of wins across all prizes
func (w Wins) Total() int {
	total := 0
	for _, count := range w {
		total += count
	}
	return total
}

// Format renders the non-zero wins as "name xN", most won first
func (w Wins) Format() string {
	type entry struct {
		name  string
		count int
	}

	entries := make([]entry, 0, len(w))
	for name, count := range w {
		if count > 0 {
			entries = append(entries, entry{name: name, count: count})
		}
	}
	if len(entries) == 0 {
		return "—"
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s x%d", e.name, e.count)
	}
	return strings.Join(parts, ", ")
}

// Participant is an entrant in the raffle
type Participant struct {
	// ID is the unique identifier for the participant
	ID string `json:"id"`

	// Name is the display name, unique ignoring case
	Name string `json:"name"`

	// Active indicates the participant may still spin
	Active bool `json:"active"`

	// Wins counts the prizes won by this participant
	Wins Wins `json:"wins"`
}

// RecordWin increments the win counter for a prize
func (p *Participant) RecordWin(prizeName string) {
	if p.Wins == nil {
		p.Wins = Wins{}
	}
	p.Wins[prizeName]++
}
