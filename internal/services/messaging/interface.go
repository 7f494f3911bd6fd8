package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/lootwheel/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetWinMessage returns the announcement for a spin result
	GetWinMessage(ctx context.Context, input *GetWinMessageInput) (*GetWinMessageOutput, error)

	// GetAdvisoryMessage returns a user-friendly explanation of a failed action
	GetAdvisoryMessage(ctx context.Context, input *GetAdvisoryMessageInput) (*GetAdvisoryMessageOutput, error)

	// GetActionMessage returns the confirmation of a successful action
	GetActionMessage(ctx context.Context, input *GetActionMessageInput) (*GetActionMessageOutput, error)
}
