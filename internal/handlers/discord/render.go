package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/services/messaging"
	"github.com/KirkDiggler/lootwheel/internal/services/raffle"
	"github.com/bwmarrin/discordgo"
)

const (
	colorGreen   = 0x00ff00
	colorGold    = 0xf1c40f
	colorRed     = 0xff0000
	colorNeutral = 0x5865f2

	// maxFieldValue is Discord's limit for an embed field value
	maxFieldValue = 1024

	// ButtonSpinNextPrefix starts the custom ID of the "spin next" button.
	// The ID of the last winner follows it.
	ButtonSpinNextPrefix = "loot_spin_next:"
)

// truncateField keeps lines that fit in an embed field
func truncateField(lines []string, empty string) string {
	if len(lines) == 0 {
		return empty
	}

	var b strings.Builder
	for i, line := range lines {
		more := fmt.Sprintf("… and %d more", len(lines)-i)
		if b.Len()+len(line)+1 > maxFieldValue-len(more)-1 {
			b.WriteString(more)
			break
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderStateEmbed renders prizes, participants and options of a raffle
func renderStateEmbed(state *models.RaffleState, spinning bool) *discordgo.MessageEmbed {
	prizeLines := make([]string, 0, len(state.Prizes))
	for _, p := range state.Prizes {
		marker := "🎁"
		if !p.InStock() {
			marker = "▫️"
		}
		prizeLines = append(prizeLines, fmt.Sprintf("%s **%s** %d/%d", marker, p.Name, p.Remaining, p.Qty))
	}

	participantLines := make([]string, 0, len(state.Participants))
	for _, p := range state.Participants {
		marker := "✅"
		if !p.Active {
			marker = "💤"
		}
		participantLines = append(participantLines, fmt.Sprintf("%s **%s**: %s", marker, p.Name, p.Wins.Format()))
	}

	description := fmt.Sprintf("%d awarded so far", len(state.History))
	if spinning {
		description = "🎡 The wheel is spinning..."
	}

	return &discordgo.MessageEmbed{
		Title:       "Loot Wheel",
		Description: description,
		Color:       colorNeutral,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Loot",
				Value: truncateField(prizeLines, "No loot yet. Use `/loot prize`."),
			},
			{
				Name:  "Players",
				Value: truncateField(participantLines, "No players yet. Use `/loot player`."),
			},
			{
				Name:  "Options",
				Value: renderOptions(state.Options),
			},
		},
	}
}

func renderOptions(o models.Options) string {
	flag := func(on bool) string {
		if on {
			return "on"
		}
		return "off"
	}
	return fmt.Sprintf("Unique winner: %s\nNo repeat loot: %s\nWeighted by stock: %s",
		flag(o.UniqueWinner), flag(o.NoRepeatPrize), flag(o.WeightedByStock))
}

// renderHistoryEmbed renders history entries, most recent first
func renderHistoryEmbed(entries []*models.HistoryEntry, total int) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("<t:%d:t> **%s** won %s", e.Time().Unix(), e.ParticipantName, e.PrizeName))
	}

	return &discordgo.MessageEmbed{
		Title:       "Loot History",
		Description: truncateField(lines, "Nothing awarded yet."),
		Color:       colorNeutral,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Showing %d of %d", len(entries), total),
		},
	}
}

// renderWinEmbed renders the result of a spin
func renderWinEmbed(output *raffle.SpinOutput, msg *messaging.GetWinMessageOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Left",
				Value:  fmt.Sprintf("%d/%d", output.Prize.Remaining, output.Prize.Qty),
				Inline: true,
			},
			{
				Name:   output.Participant.Name,
				Value:  output.Participant.Wins.Format(),
				Inline: true,
			},
		},
	}
}

// renderSpinNextButton renders the button spinning for the next active player
func renderSpinNextButton(lastWinnerID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Spin next player",
					Style:    discordgo.PrimaryButton,
					CustomID: ButtonSpinNextPrefix + lastWinnerID,
					Emoji: &discordgo.ComponentEmoji{
						Name: "🎡",
					},
				},
			},
		},
	}
}

// renderAdvisoryEmbed renders a failed action
func renderAdvisoryEmbed(msg *messaging.GetAdvisoryMessageOutput) *discordgo.MessageEmbed {
	color := colorGold
	if !msg.Warn {
		color = colorRed
	}
	return &discordgo.MessageEmbed{
		Title:       "Hold on",
		Description: msg.Message,
		Color:       color,
	}
}

// splitNames turns a comma, semicolon or newline separated list into one
// name per line
func splitNames(raw string) string {
	return strings.NewReplacer(",", "\n", ";", "\n").Replace(raw)
}
