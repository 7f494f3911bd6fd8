package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/lootwheel/internal/services/messaging"
	"github.com/KirkDiggler/lootwheel/internal/services/raffle"
	"github.com/bwmarrin/discordgo"
	"github.com/google/logger"
)

// LootCommand handles the /loot command. Every channel runs its own raffle.
type LootCommand struct {
	BaseCommand
	raffleService    raffle.Service
	messagingService messaging.Service
}

// NewLootCommand creates a new loot command handler
func NewLootCommand(raffleService raffle.Service, messagingService messaging.Service) *LootCommand {
	minQty := 1.0

	return &LootCommand{
		BaseCommand: BaseCommand{
			Name:        "loot",
			Description: "Loot wheel raffle commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "spin",
					Description: "Spin the wheel for a player",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "player",
							Description: "Player to spin for, the first active player when empty",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "prize",
					Description: "Add loot to the wheel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Name of the loot",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "qty",
							Description: "How many",
							Required:    true,
							MinValue:    &minQty,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "player",
					Description: "Add a player to the raid",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Name of the player",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "bulk",
					Description: "Add several players at once",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "names",
							Description: "Names separated by commas",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show loot, players and options",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show who won what",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "limit",
							Description: "How many entries to show",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "options",
					Description: "Change how the wheel picks loot",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "unique",
							Description: "Players leave the wheel after winning",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "norepeat",
							Description: "Avoid the same loot twice in a row",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "weighted",
							Description: "Loot with more stock comes up more often",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clear",
					Description: "Clear the history and every player's wins, keeping the loot",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "export",
					Description: "Download the raffle as JSON",
				},
			},
		},
		raffleService:    raffleService,
		messagingService: messagingService,
	}
}

// Handle processes a Discord interaction for the loot command
func (c *LootCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	raffleID := i.ChannelID
	sub := data.Options[0]
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "spin":
		return c.handleSpin(ctx, s, i, raffleID, stringOption(opts, "player"))
	case "prize":
		return c.handlePrize(ctx, s, i, raffleID, stringOption(opts, "name"), int(intOption(opts, "qty")))
	case "player":
		return c.handlePlayer(ctx, s, i, raffleID, stringOption(opts, "name"))
	case "bulk":
		return c.handleBulk(ctx, s, i, raffleID, stringOption(opts, "names"))
	case "status":
		return c.handleStatus(ctx, s, i, raffleID)
	case "history":
		return c.handleHistory(ctx, s, i, raffleID, int(intOption(opts, "limit")))
	case "options":
		return c.handleOptions(ctx, s, i, raffleID, opts)
	case "clear":
		return c.handleClear(ctx, s, i, raffleID)
	case "export":
		return c.handleExport(ctx, s, i, raffleID)
	default:
		return errors.New("unknown subcommand")
	}
}

type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	m := make(options, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func stringOption(opts options, name string) string {
	if o, ok := opts[name]; ok {
		return o.StringValue()
	}
	return ""
}

func intOption(opts options, name string) int64 {
	if o, ok := opts[name]; ok {
		return o.IntValue()
	}
	return 0
}

func boolOption(opts options, name string) *bool {
	if o, ok := opts[name]; ok {
		v := o.BoolValue()
		return &v
	}
	return nil
}

// respondError tells the user why an action failed
func (c *LootCommand) respondError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error, name string) error {
	if !raffle.IsAdvisory(err) {
		logger.Errorf("Loot command in channel %s failed: %v", i.ChannelID, err)
	}

	msg, msgErr := c.messagingService.GetAdvisoryMessage(ctx, &messaging.GetAdvisoryMessageInput{
		Err:  err,
		Name: name,
	})
	if msgErr != nil {
		return RespondWithEphemeralEmbed(s, i, &discordgo.MessageEmbed{Title: "Error", Description: err.Error(), Color: colorRed})
	}
	return RespondWithEphemeralEmbed(s, i, renderAdvisoryEmbed(msg))
}

// respondAction confirms a successful action
func (c *LootCommand) respondAction(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, input *messaging.GetActionMessageInput) error {
	msg, err := c.messagingService.GetActionMessage(ctx, input)
	if err != nil {
		return err
	}
	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Description: msg.Message,
		Color:       colorGreen,
	})
}

// resolveParticipant finds the participant to spin for. An empty name picks
// the next active participant after afterID.
func (c *LootCommand) resolveParticipant(ctx context.Context, raffleID, name, afterID string) (string, error) {
	if name == "" {
		next, err := c.raffleService.NextParticipant(ctx, &raffle.NextParticipantInput{
			RaffleID: raffleID,
			AfterID:  afterID,
		})
		if err != nil {
			return "", err
		}
		return next.Participant.ID, nil
	}

	state, err := c.raffleService.GetState(ctx, &raffle.GetStateInput{RaffleID: raffleID})
	if err != nil {
		return "", err
	}

	p := state.State.FindParticipantByName(name)
	if p == nil {
		return "", raffle.ErrParticipantNotFound
	}
	return p.ID, nil
}

func (c *LootCommand) handleSpin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, raffleID, name string) error {
	participantID, err := c.resolveParticipant(ctx, raffleID, name, "")
	if err != nil {
		return c.respondError(ctx, s, i, err, name)
	}

	return c.spin(ctx, s, i, raffleID, participantID)
}

// spin runs a spin behind a deferred response, which is edited with the result
func (c *LootCommand) spin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, raffleID, participantID string) error {
	if err := DeferResponse(s, i); err != nil {
		return fmt.Errorf("failed to defer spin response: %w", err)
	}

	output, err := c.raffleService.Spin(ctx, &raffle.SpinInput{
		RaffleID:      raffleID,
		ParticipantID: participantID,
	})
	if err != nil {
		if !raffle.IsAdvisory(err) {
			logger.Errorf("Spin in channel %s failed: %v", raffleID, err)
		}
		msg, msgErr := c.messagingService.GetAdvisoryMessage(ctx, &messaging.GetAdvisoryMessageInput{Err: err})
		if msgErr != nil {
			return msgErr
		}
		return EditResponse(s, i, renderAdvisoryEmbed(msg), nil)
	}

	msg, err := c.messagingService.GetWinMessage(ctx, &messaging.GetWinMessageInput{
		ParticipantName: output.Participant.Name,
		PrizeName:       output.Prize.Name,
		Remaining:       output.Prize.Remaining,
	})
	if err != nil {
		return err
	}

	return EditResponse(s, i, renderWinEmbed(output, msg), renderSpinNextButton(output.Participant.ID))
}

// HandleSpinNext spins for the player after the last winner
func (c *LootCommand) HandleSpinNext(s *discordgo.Session, i *discordgo.InteractionCreate, lastWinnerID string) error {
	ctx := context.Background()

	participantID, err := c.resolveParticipant(ctx, i.ChannelID, "", lastWinnerID)
	if err != nil {
		return c.respondError(ctx, s, i, err, "")
	}

	return c.spin(ctx, s, i, i.ChannelID, participantID)
}

func (c *LootCommand) handlePrize(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, raffleID, name string, qty int) error {
	output, err := c.raffleService.AddPrize(ctx, &raffle.AddPrizeInput{
		RaffleID: raffleID,
		Name:     name,
		Qty:      qty,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err, name)
	}

	action := messaging.ActionPrizeAdded
	if output.Merged {
		action = messaging.ActionPrizeMerged
	}
	return c.respondAction(ctx, s, i, &messaging.GetActionMessageInput{
		Action: action,
		Name:   output.Prize.Name,
		Count:  qty,
	})
}

func (c *LootCommand) handlePlayer(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, raffleID, name string) error {
	output, err := c.raffleService.AddParticipant(ctx, &raffle.AddParticipantInput{
		RaffleID: raffleID,
		Name:     name,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err, name)
	}

	logger.Infof("%s added %s to the raffle of channel %s", userName(i), output.Participant.Name, raffleID)
	return c.respondAction(ctx, s, i, &messaging.GetActionMessageInput{
		Action: messaging.ActionParticipantAdded,
		Name:   output.Participant.Name,
	})
}

func (c *LootCommand) handleBulk(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, raffleID, names string) error {
	output, err := c.raffleService.AddParticipantsBulk(ctx, &raffle.AddParticipantsBulkInput{
		RaffleID: raffleID,
		Text:     splitNames(names),
	})
	if err != nil {
		return c.respondError(ctx, s, i, err, "")
	}

	return c.respondAction(ctx, s, i, &messaging.GetActionMessageInput{
		Action:  messaging.ActionBulkAdded,
		Count:   len(output.Added),
		Skipped: output.Skipped,
	})
}

func (c *LootCommand) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, raffleID string) error {
	output, err := c.raffleService.GetState(ctx, &raffle.GetStateInput{RaffleID: raffleID})
	if err != nil {
		return c.respondError(ctx, s, i, err, "")
	}

	return RespondWithEmbed(s, i, renderStateEmbed(output.State, output.Spinning))
}

func (c *LootCommand) handleHistory(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, raffleID string, limit int) error {
	output, err := c.raffleService.GetHistory(ctx, &raffle.GetHistoryInput{
		RaffleID: raffleID,
		Limit:    limit,
	})
	if err != nil {
		return c.respondError(ctx, s, i, err, "")
	}

	return RespondWithEmbed(s, i, renderHistoryEmbed(output.Entries, output.Total))
}

func (c *LootCommand) handleOptions(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, raffleID string, opts options) error {
	output, err := c.raffleService.SetOptions(ctx, &raffle.SetOptionsInput{
		RaffleID:        raffleID,
		UniqueWinner:    boolOption(opts, "unique"),
		NoRepeatPrize:   boolOption(opts, "norepeat"),
		WeightedByStock: boolOption(opts, "weighted"),
	})
	if err != nil {
		return c.respondError(ctx, s, i, err, "")
	}

	return RespondWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Options",
		Description: renderOptions(output.Options),
		Color:       colorGreen,
	})
}

func (c *LootCommand) handleClear(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, raffleID string) error {
	_, err := c.raffleService.ClearHistory(ctx, &raffle.ClearHistoryInput{RaffleID: raffleID})
	if err != nil {
		return c.respondError(ctx, s, i, err, "")
	}

	return c.respondAction(ctx, s, i, &messaging.GetActionMessageInput{
		Action: messaging.ActionHistoryCleared,
	})
}

func (c *LootCommand) handleExport(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, raffleID string) error {
	output, err := c.raffleService.Export(ctx, &raffle.ExportInput{RaffleID: raffleID})
	if err != nil {
		return c.respondError(ctx, s, i, err, "")
	}

	return RespondWithFile(s, i, "Here is the raffle.", output.FileName, "application/json", output.Data)
}
