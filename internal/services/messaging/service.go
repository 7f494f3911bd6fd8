package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/lootwheel/internal/rng"
	"github.com/KirkDiggler/lootwheel/internal/services/raffle"
)

// service implements the Service interface
type service struct {
	// Random source for selecting random messages
	random rng.Source
}

// NewService creates a new messaging service
func NewService(cfg *Config) (*service, error) {
	var random rng.Source
	if cfg != nil {
		random = cfg.Random
	}
	if random == nil {
		random = rng.New(nil)
	}

	return &service{
		random: random,
	}, nil
}

func (s *service) pick(messages []string) string {
	if len(messages) == 1 {
		return messages[0]
	}
	return messages[s.random.IntN(len(messages))]
}

// GetWinMessage returns the announcement for a spin result
func (s *service) GetWinMessage(ctx context.Context, input *GetWinMessageInput) (*GetWinMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneCelebration
	}

	name, prize := input.ParticipantName, input.PrizeName

	var messages []string
	switch tone {
	case ToneNeutral:
		messages = []string{
			fmt.Sprintf("%s won: %s", name, prize),
		}
	case ToneFunny:
		messages = []string{
			fmt.Sprintf("%s walks away with %s. Try not to lose it in the next dungeon.", name, prize),
			fmt.Sprintf("The wheel has a favorite today and it is %s. Enjoy the %s!", name, prize),
			fmt.Sprintf("%s rolled need on %s and nobody could stop it.", name, prize),
		}
	default:
		messages = []string{
			fmt.Sprintf("🎉 %s won: %s", name, prize),
			fmt.Sprintf("🎉 %s takes home %s!", name, prize),
			fmt.Sprintf("🎉 The wheel has spoken: %s goes to %s!", prize, name),
		}
	}

	title := "Loot!"
	if input.Remaining == 0 {
		title = fmt.Sprintf("Loot! That was the last %s", prize)
	}

	return &GetWinMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetAdvisoryMessage returns a user-friendly explanation of a failed action
func (s *service) GetAdvisoryMessage(ctx context.Context, input *GetAdvisoryMessageInput) (*GetAdvisoryMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input error cannot be nil")
	}

	var re raffle.RaffleError
	if !errors.As(input.Err, &re) || !raffle.IsAdvisory(re) {
		return &GetAdvisoryMessageOutput{
			Message: s.pick([]string{
				"Something went wrong on our side. Try again in a moment.",
				"The loot vault is not answering right now. Try again in a moment.",
			}),
			Warn: false,
		}, nil
	}

	var messages []string
	switch re {
	case raffle.ErrNoStock:
		messages = []string{
			"No loot with stock left.",
			"The loot table is empty. Add some prizes before spinning.",
		}
	case raffle.ErrNoActiveParticipant:
		messages = []string{
			"Pick an active player first.",
			"Nobody active is selected. Pick a player who has not won yet.",
		}
	case raffle.ErrSpinInProgress:
		messages = []string{
			"Hold on, the wheel is still spinning.",
			"One spin at a time! Wait for the wheel to stop.",
		}
	case raffle.ErrInvalidPrize:
		messages = []string{
			"Please enter a valid name and quantity for the loot.",
		}
	case raffle.ErrInvalidParticipant:
		messages = []string{
			"Please enter a name for the player.",
		}
	case raffle.ErrDuplicateParticipant:
		if input.Name != "" {
			messages = []string{
				fmt.Sprintf("The player %q is already on the list.", input.Name),
			}
		} else {
			messages = []string{
				"That player is already on the list.",
			}
		}
	case raffle.ErrPrizeNotFound:
		messages = []string{
			"That loot is no longer on the list.",
		}
	case raffle.ErrParticipantNotFound:
		messages = []string{
			"That player is no longer on the list.",
		}
	case raffle.ErrMalformedImport:
		messages = []string{
			"Could not import the JSON.",
		}
	default:
		messages = []string{
			capitalize(re.Error()) + ".",
		}
	}

	return &GetAdvisoryMessageOutput{
		Message: s.pick(messages),
		Warn:    true,
	}, nil
}

// GetActionMessage returns the confirmation of a successful action
func (s *service) GetActionMessage(ctx context.Context, input *GetActionMessageInput) (*GetActionMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch input.Action {
	case ActionPrizeAdded:
		message = fmt.Sprintf("Loot %q added (x%d)", input.Name, input.Count)
	case ActionPrizeMerged:
		message = fmt.Sprintf("Loot %q restocked (+%d)", input.Name, input.Count)
	case ActionParticipantAdded:
		message = fmt.Sprintf("Player %q joined the raid.", input.Name)
	case ActionBulkAdded:
		message = fmt.Sprintf("Loaded %d players.", input.Count)
		if len(input.Skipped) > 0 {
			message += fmt.Sprintf(" Already on the list: %s.", strings.Join(input.Skipped, ", "))
		}
	case ActionImported:
		message = "Imported successfully."
	case ActionHistoryCleared:
		message = "History cleared. New instance ready."
	case ActionReset:
		message = "Everything was erased: loot, players and history."
	default:
		return nil, fmt.Errorf("unknown action %q", input.Action)
	}

	return &GetActionMessageOutput{
		Message: message,
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
