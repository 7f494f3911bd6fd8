package discord

import (
	"strings"
	"testing"

	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/services/messaging"
	"github.com/KirkDiggler/lootwheel/internal/services/raffle"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStateEmbed(t *testing.T) {
	state := models.NewRaffleState()
	state.Prizes = []*models.Prize{
		{ID: "gem", Name: "Gem", Qty: 3, Remaining: 1},
		{ID: "map", Name: "Map", Qty: 1, Remaining: 0},
	}
	state.Participants = []*models.Participant{
		{ID: "a", Name: "Ana", Active: false, Wins: models.Wins{"Gem": 2}},
		{ID: "b", Name: "Bo", Active: true},
	}

	embed := renderStateEmbed(state, false)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "🎁 **Gem** 1/3\n▫️ **Map** 0/1", embed.Fields[0].Value)
	assert.Equal(t, "💤 **Ana**: Gem x2\n✅ **Bo**: —", embed.Fields[1].Value)
	assert.Contains(t, embed.Fields[2].Value, "Unique winner: on")
	assert.Contains(t, embed.Fields[2].Value, "No repeat loot: off")

	assert.Contains(t, renderStateEmbed(state, true).Description, "spinning")
}

func TestRenderStateEmbedEmpty(t *testing.T) {
	embed := renderStateEmbed(models.NewRaffleState(), false)
	assert.Contains(t, embed.Fields[0].Value, "/loot prize")
	assert.Contains(t, embed.Fields[1].Value, "/loot player")
}

func TestTruncateFieldStaysUnderLimit(t *testing.T) {
	lines := make([]string, 200)
	for i := range lines {
		lines[i] = strings.Repeat("x", 30)
	}

	value := truncateField(lines, "")
	assert.LessOrEqual(t, len(value), maxFieldValue)
	assert.Contains(t, value, "more")
}

func TestRenderHistoryEmbed(t *testing.T) {
	embed := renderHistoryEmbed([]*models.HistoryEntry{
		{Timestamp: 1700000000123, ParticipantName: "Ana", PrizeName: "Gem"},
	}, 4)

	assert.Equal(t, "<t:1700000000:t> **Ana** won Gem", embed.Description)
	assert.Equal(t, "Showing 1 of 4", embed.Footer.Text)
}

func TestRenderWinEmbedAndButton(t *testing.T) {
	output := &raffle.SpinOutput{
		Prize:       &models.Prize{ID: "gem", Name: "Gem", Qty: 3, Remaining: 2},
		Participant: &models.Participant{ID: "ana", Name: "Ana", Wins: models.Wins{"Gem": 1}},
	}

	embed := renderWinEmbed(output, &messaging.GetWinMessageOutput{Title: "Loot!", Message: "🎉 Ana won: Gem"})
	assert.Equal(t, "Loot!", embed.Title)
	assert.Equal(t, "2/3", embed.Fields[0].Value)
	assert.Equal(t, "Gem x1", embed.Fields[1].Value)

	row := renderSpinNextButton("ana")[0].(discordgo.ActionsRow)
	button := row.Components[0].(discordgo.Button)
	assert.Equal(t, ButtonSpinNextPrefix+"ana", button.CustomID)
}

func TestSplitNames(t *testing.T) {
	assert.Equal(t, "Ana\n Bo\nCy", splitNames("Ana, Bo;Cy"))
}

func TestLootCommandDefinition(t *testing.T) {
	cmd := NewLootCommand(nil, nil).GetCommand()
	assert.Equal(t, "loot", cmd.Name)

	var names []string
	for _, o := range cmd.Options {
		names = append(names, o.Name)
	}
	assert.Equal(t, []string{"spin", "prize", "player", "bulk", "status", "history", "options", "clear", "export"}, names)
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{})
	assert.Error(t, err)

	_, err = New(&Config{Token: "token"})
	assert.Error(t, err)
}
