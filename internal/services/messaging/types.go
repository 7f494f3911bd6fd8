package messaging

import (
	"github.com/KirkDiggler/lootwheel/internal/rng"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ActionType names a raffle action that gets a confirmation message
type ActionType string

const (
	ActionPrizeAdded       ActionType = "prize_added"
	ActionPrizeMerged      ActionType = "prize_merged"
	ActionParticipantAdded ActionType = "participant_added"
	ActionBulkAdded        ActionType = "bulk_added"
	ActionImported         ActionType = "imported"
	ActionHistoryCleared   ActionType = "history_cleared"
	ActionReset            ActionType = "reset"
)

// Config contains configuration for the messaging service
type Config struct {
	// Random picks between message variants, defaults to a time-seeded source
	Random rng.Source
}

// GetWinMessageInput contains parameters for announcing a spin result
type GetWinMessageInput struct {
	ParticipantName string
	PrizeName       string

	// Remaining is what is left of the prize after the award
	Remaining int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetWinMessageOutput contains the announcement of a spin result
type GetWinMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetAdvisoryMessageInput contains an error to explain to the user
type GetAdvisoryMessageInput struct {
	Err error

	// Name is the prize or participant the action was about (optional)
	Name string
}

// GetAdvisoryMessageOutput contains the user-facing explanation
type GetAdvisoryMessageOutput struct {
	Message string

	// Warn is false for infrastructure failures the user cannot fix
	Warn bool
}

// GetActionMessageInput contains parameters for confirming an action
type GetActionMessageInput struct {
	Action ActionType

	// Name of the prize or participant (optional)
	Name string

	// Count is the quantity or number of entries involved (optional)
	Count int

	// Skipped are names a bulk add left out (optional)
	Skipped []string
}

// GetActionMessageOutput contains the confirmation text
type GetActionMessageOutput struct {
	Message string
}
