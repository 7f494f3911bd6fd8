package raffle

import "github.com/KirkDiggler/lootwheel/internal/models"

type SaveStateInput struct {
	RaffleID string
	State    *models.RaffleState
}

type GetStateInput struct {
	RaffleID string
}

type DeleteStateInput struct {
	RaffleID string
}

type ListRafflesInput struct {
}

type ListRafflesOutput struct {
	RaffleIDs []string
}
