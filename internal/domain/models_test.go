package domain

import (
	"encoding/json"
	"testing"

	"rift-scout/internal/riot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveGameEncodesUpstreamWithEnrichment(t *testing.T) {
	var game riot.ActiveGame
	require.NoError(t, json.Unmarshal([]byte(`{
		"gameId": 9,
		"gameMode": "CLASSIC",
		"observers": {"encryptionKey": "k"},
		"participants": [{"puuid": "p-1", "championId": 103, "lastSelectedSkinIndex": 2}]
	}`), &game))

	live := LiveGame{
		ActiveGame: game,
		Participants: []LiveParticipant{
			{ActiveParticipant: game.Participants[0], Rank: "GOLD II", Tags: []string{"SMURF"}, Mastery: 1200},
		},
	}

	out, err := json.Marshal(live)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"gameId": 9,
		"gameMode": "CLASSIC",
		"observers": {"encryptionKey": "k"},
		"participants": [{
			"puuid": "p-1",
			"championId": 103,
			"lastSelectedSkinIndex": 2,
			"rank": "GOLD II",
			"tags": ["SMURF"],
			"mastery": 1200
		}]
	}`, string(out))

	var decoded LiveGame
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, int64(9), decoded.GameID)
	require.Len(t, decoded.Participants, 1)
	assert.Equal(t, "p-1", decoded.Participants[0].Puuid)
	assert.Equal(t, "GOLD II", decoded.Participants[0].Rank)
	assert.Equal(t, []string{"SMURF"}, decoded.Participants[0].Tags)
	assert.Equal(t, 1200, decoded.Participants[0].Mastery)
}

func TestLiveParticipantWithoutUpstreamBody(t *testing.T) {
	out, err := json.Marshal(LiveParticipant{
		ActiveParticipant: riot.ActiveParticipant{Puuid: "p-2"},
		Rank:              "Unranked",
		Tags:              []string{},
	})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(out, &fields))
	assert.Equal(t, "p-2", fields["puuid"])
	assert.Equal(t, "Unranked", fields["rank"])
	assert.Equal(t, []any{}, fields["tags"])
	assert.Equal(t, float64(0), fields["mastery"])
}
