package raffle

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/lootwheel/internal/repositories/raffle Repository

import (
	"context"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// Repository defines the interface for raffle state persistence
type Repository interface {
	// SaveState persists the whole state of a raffle
	SaveState(ctx context.Context, input *SaveStateInput) error

	// GetState retrieves the state of a raffle
	GetState(ctx context.Context, input *GetStateInput) (*models.RaffleState, error)

	// DeleteState removes everything stored for a raffle
	DeleteState(ctx context.Context, input *DeleteStateInput) error

	// ListRaffles returns the IDs of all stored raffles
	ListRaffles(ctx context.Context, input *ListRafflesInput) (*ListRafflesOutput, error)
}
