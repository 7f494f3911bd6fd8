package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLegacyWinsList(t *testing.T) {
	doc := `{
		"prizes": [{"id": "g", "name": "Gem", "qty": 3, "remaining": 1}],
		"participants": [{"id": "p1", "name": "Alice", "active": true, "wins": ["Gem", "Gem", "Coin"]}],
		"history": [],
		"lastPrizeId": null
	}`

	state, err := Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, state.Participants, 1)
	assert.Equal(t, models.Wins{"Gem": 2, "Coin": 1}, state.Participants[0].Wins)
	assert.Empty(t, state.LastPrizeID)
}

func TestDecodeDefaultsMissingOptions(t *testing.T) {
	state, err := Decode([]byte(`{"prizes": []}`))
	require.NoError(t, err)
	assert.Equal(t, models.DefaultOptions(), state.Options)

	state, err = Decode([]byte(`{"options": {"noRepeatPrize": true, "weightedByStock": false}}`))
	require.NoError(t, err)
	assert.Equal(t, models.Options{UniqueWinner: true, NoRepeatPrize: true, WeightedByStock: false}, state.Options)

	state, err = Decode([]byte(`{"options": {"uniqueWinner": null}}`))
	require.NoError(t, err)
	assert.True(t, state.Options.UniqueWinner)
}

func TestDecodeMissingCollectionsAreEmpty(t *testing.T) {
	state, err := Decode([]byte(`{}`))
	require.NoError(t, err)
	assert.NotNil(t, state.Prizes)
	assert.NotNil(t, state.Participants)
	assert.NotNil(t, state.History)
}

func TestDecodeRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty", doc: ""},
		{name: "not json", doc: "hello"},
		{name: "null", doc: "null"},
		{name: "array", doc: "[]"},
		{name: "string", doc: `"state"`},
		{name: "truncated", doc: `{"prizes": [`},
		{name: "prizes not a list", doc: `{"prizes": {"id": "a"}}`},
		{name: "qty not a number", doc: `{"prizes": [{"id": "a", "name": "A", "qty": "two", "remaining": 1}]}`},
		{name: "prize without id", doc: `{"prizes": [{"name": "A", "qty": 1, "remaining": 1}]}`},
		{name: "remaining above qty", doc: `{"prizes": [{"id": "a", "name": "A", "qty": 1, "remaining": 2}]}`},
		{name: "negative remaining", doc: `{"prizes": [{"id": "a", "name": "A", "qty": 1, "remaining": -1}]}`},
		{name: "duplicate prize ids", doc: `{"prizes": [{"id": "a", "qty": 1, "remaining": 1}, {"id": "a", "qty": 1, "remaining": 1}]}`},
		{name: "participant without id", doc: `{"participants": [{"name": "Alice", "active": true}]}`},
		{name: "duplicate participant names", doc: `{"participants": [{"id": "p1", "name": "Alice"}, {"id": "p2", "name": "ALICE"}]}`},
		{name: "negative wins", doc: `{"participants": [{"id": "p", "name": "Alice", "wins": {"Gem": -1}}]}`},
		{name: "fractional wins", doc: `{"participants": [{"id": "p", "name": "Alice", "wins": {"Gem": 1.5}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := Decode([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrMalformedSnapshot)
			assert.Nil(t, state)
		})
	}
}

func TestNormalizeWins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.Wins
	}{
		{name: "missing", raw: "", want: models.Wins{}},
		{name: "null", raw: "null", want: models.Wins{}},
		{name: "number", raw: "3", want: models.Wins{}},
		{name: "object", raw: `{"Gem": 2}`, want: models.Wins{"Gem": 2}},
		{name: "list", raw: `["Gem", "Gem", "Coin"]`, want: models.Wins{"Gem": 2, "Coin": 1}},
		{name: "list with non strings", raw: `["Gem", 5, true]`, want: models.Wins{"Gem": 1, "5": 1, "true": 1}},
		{name: "list with null", raw: `["Gem", null, null]`, want: models.Wins{"Gem": 1, "null": 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeWins(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeWinsIsIdempotent(t *testing.T) {
	inputs := []string{`["Gem", "Gem", "Coin"]`, `{"Gem": 2}`, `null`, `[]`}

	for _, in := range inputs {
		once, err := NormalizeWins(json.RawMessage(in))
		require.NoError(t, err)

		encoded, err := json.Marshal(once)
		require.NoError(t, err)

		twice, err := NormalizeWins(encoded)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %s", in)
	}
}

func TestDecodeIsIdempotentThroughEncode(t *testing.T) {
	doc := `{
		"prizes": [{"id": "s", "name": "Sword", "qty": 2, "remaining": 1}],
		"participants": [
			{"id": "p1", "name": "Alice", "active": false, "wins": ["Sword"]},
			{"id": "p2", "name": "Bob", "active": true}
		],
		"history": [{"ts": 1700000000000, "participantName": "Alice", "prizeName": "Sword"}],
		"options": {"uniqueWinner": true},
		"lastPrizeId": "s"
	}`

	first, err := Decode([]byte(doc))
	require.NoError(t, err)

	encoded, err := Encode(first)
	require.NoError(t, err)

	second, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeShape(t *testing.T) {
	state := models.NewRaffleState()
	state.Participants = []*models.Participant{{ID: "p1", Name: "Alice", Active: true}}

	data, err := Encode(state)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Nil(t, doc["lastPrizeId"])
	assert.Equal(t, []any{}, doc["prizes"])
	assert.Equal(t, []any{}, doc["history"])

	participants := doc["participants"].([]any)
	assert.Equal(t, map[string]any{}, participants[0].(map[string]any)["wins"])

	options := doc["options"].(map[string]any)
	assert.Equal(t, true, options["uniqueWinner"])
	assert.Equal(t, false, options["noRepeatPrize"])
	assert.Equal(t, true, options["weightedByStock"])

	// encoding does not touch the caller's state
	assert.Nil(t, state.Participants[0].Wins)
}
