package raffle

import (
	"github.com/KirkDiggler/lootwheel/internal/common/clock"
	"github.com/KirkDiggler/lootwheel/internal/common/uuid"
	"github.com/KirkDiggler/lootwheel/internal/models"
	raffleRepo "github.com/KirkDiggler/lootwheel/internal/repositories/raffle"
	"github.com/KirkDiggler/lootwheel/internal/rng"
	"github.com/KirkDiggler/lootwheel/internal/wheel"
)

// DefaultHistoryLimit is how many history entries are listed by default
const DefaultHistoryLimit = 80

// Config holds configuration for the raffle service
type Config struct {
	// Number of history entries returned when no limit is given
	HistoryLimit int

	// Repository dependencies
	Repository raffleRepo.Repository

	// Optional view of the raffles, defaults to NopRenderer
	Renderer Renderer

	// Optional wheel animator, defaults to the stock settings
	Animator *wheel.Animator

	// Service dependencies
	Random        rng.Source
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// GetStateInput contains parameters for reading a raffle
type GetStateInput struct {
	RaffleID string
}

// GetStateOutput contains the current raffle
type GetStateOutput struct {
	State *models.RaffleState

	// Spinning indicates a spin is in flight
	Spinning bool

	// WheelAngle is the current rotation of the wheel
	WheelAngle float64
}

// AddPrizeInput contains parameters for adding a prize
type AddPrizeInput struct {
	RaffleID string

	// Name of the prize, merged with an existing prize ignoring case
	Name string

	// Qty is the number of units to add
	Qty int
}

// AddPrizeOutput contains the created or updated prize
type AddPrizeOutput struct {
	Prize *models.Prize

	// Merged indicates the quantity was added to an existing prize
	Merged bool
}

// PrizeInput identifies a prize
type PrizeInput struct {
	RaffleID string
	PrizeID  string
}

// PrizeOutput contains the prize after the action
type PrizeOutput struct {
	Prize *models.Prize
}

// AddParticipantInput contains parameters for adding a participant
type AddParticipantInput struct {
	RaffleID string
	Name     string
}

// AddParticipantOutput contains the created participant
type AddParticipantOutput struct {
	Participant *models.Participant
}

// AddParticipantsBulkInput contains one participant name per line
type AddParticipantsBulkInput struct {
	RaffleID string
	Text     string
}

// AddParticipantsBulkOutput contains the result of a bulk add
type AddParticipantsBulkOutput struct {
	Added []*models.Participant

	// Skipped holds the names rejected as duplicates
	Skipped []string
}

// ParticipantInput identifies a participant
type ParticipantInput struct {
	RaffleID      string
	ParticipantID string
}

// ParticipantOutput contains the participant after the action
type ParticipantOutput struct {
	Participant *models.Participant
}

// NextParticipantInput contains parameters for skipping to the next participant
type NextParticipantInput struct {
	RaffleID string

	// AfterID is the currently selected participant, may be empty
	AfterID string
}

// NextParticipantOutput contains the next active participant
type NextParticipantOutput struct {
	Participant *models.Participant
}

// SetOptionsInput contains the options to change. Nil fields are left as they are.
type SetOptionsInput struct {
	RaffleID        string
	UniqueWinner    *bool
	NoRepeatPrize   *bool
	WeightedByStock *bool
}

// SetOptionsOutput contains the options after the update
type SetOptionsOutput struct {
	Options models.Options
}

// SpinInput contains parameters for a spin
type SpinInput struct {
	RaffleID      string
	ParticipantID string
}

// SpinOutput contains the result of a spin
type SpinOutput struct {
	// Prize as it is after the award
	Prize *models.Prize

	// Participant as they are after the award
	Participant *models.Participant

	// Entry is the history entry recorded for the award
	Entry *models.HistoryEntry

	// PrizeIndex is the slice the wheel landed on
	PrizeIndex int

	// Slices is the number of slices on the wheel during the spin
	Slices int

	// LandingAngle is the wheel angle before the return to rest
	LandingAngle float64
}

// GetHistoryInput contains parameters for listing the history
type GetHistoryInput struct {
	RaffleID string

	// Limit of entries, DefaultHistoryLimit when zero, everything when negative
	Limit int
}

// GetHistoryOutput contains history entries, most recent first
type GetHistoryOutput struct {
	Entries []*models.HistoryEntry

	// Total is the number of stored entries
	Total int
}

// ClearHistoryInput identifies the raffle whose history is cleared
type ClearHistoryInput struct {
	RaffleID string
}

// ClearHistoryOutput contains the state after the clear
type ClearHistoryOutput struct {
	State *models.RaffleState
}

// ResetInput identifies the raffle to reset
type ResetInput struct {
	RaffleID string
}

// ResetOutput is empty
type ResetOutput struct {
}

// ListRafflesInput contains parameters for listing raffles
type ListRafflesInput struct{}

// ListRafflesOutput contains the IDs of every stored raffle
type ListRafflesOutput struct {
	RaffleIDs []string
}

// ExportInput identifies the raffle to export
type ExportInput struct {
	RaffleID string
}

// ExportOutput contains the exported document
type ExportOutput struct {
	Data     []byte
	FileName string
}

// ImportInput contains a snapshot document to import
type ImportInput struct {
	RaffleID string
	Data     []byte
}

// ImportOutput contains the imported state
type ImportOutput struct {
	State *models.RaffleState
}
