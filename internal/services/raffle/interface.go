package raffle

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/lootwheel/internal/services/raffle Service

// Service defines the interface for raffle operations
type Service interface {
	// ListRaffles returns the IDs of every stored raffle
	ListRaffles(ctx context.Context, input *ListRafflesInput) (*ListRafflesOutput, error)

	// GetState returns the current state of a raffle
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// AddPrize adds stock to a prize, creating it if no prize has that name
	AddPrize(ctx context.Context, input *AddPrizeInput) (*AddPrizeOutput, error)

	// IncrementPrize grants one more unit of a prize
	IncrementPrize(ctx context.Context, input *PrizeInput) (*PrizeOutput, error)

	// DecrementPrize removes one unit of remaining stock
	DecrementPrize(ctx context.Context, input *PrizeInput) (*PrizeOutput, error)

	// RemovePrize deletes a prize
	RemovePrize(ctx context.Context, input *PrizeInput) (*PrizeOutput, error)

	// AddParticipant adds an active participant
	AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error)

	// AddParticipantsBulk adds one participant per line of text
	AddParticipantsBulk(ctx context.Context, input *AddParticipantsBulkInput) (*AddParticipantsBulkOutput, error)

	// ToggleParticipant flips whether a participant is active
	ToggleParticipant(ctx context.Context, input *ParticipantInput) (*ParticipantOutput, error)

	// RemoveParticipant deletes a participant
	RemoveParticipant(ctx context.Context, input *ParticipantInput) (*ParticipantOutput, error)

	// NextParticipant returns the active participant after a given one
	NextParticipant(ctx context.Context, input *NextParticipantInput) (*NextParticipantOutput, error)

	// SetOptions updates any of the spin options
	SetOptions(ctx context.Context, input *SetOptionsInput) (*SetOptionsOutput, error)

	// Spin draws a prize for a participant and animates the wheel
	Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error)

	// GetHistory returns the most recent awarded prizes
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// ClearHistory empties the history and every participant's wins
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)

	// Reset removes everything stored for a raffle
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// Export renders the raffle as a snapshot document
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)

	// Import replaces the raffle with a snapshot document
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
}
