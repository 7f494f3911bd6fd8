package models

import "time"

// HistoryEntry records one awarded prize
type HistoryEntry struct {
	// Timestamp is when the prize was awarded, in Unix milliseconds
	Timestamp int64 `json:"ts"`

	// ParticipantName is the name of the winner at the time of the spin
	ParticipantName string `json:"participantName"`

	// PrizeName is the name of the prize at the time of the spin
	PrizeName string `json:"prizeName"`
}

// Time returns the entry timestamp as a time.Time
func (h *HistoryEntry) Time() time.Time {
	return time.UnixMilli(h.Timestamp)
}
