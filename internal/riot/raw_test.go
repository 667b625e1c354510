package riot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const upstreamTimeline = `{"metadata":{"matchId":"NA1_1"},"info":{"frames":[{"timestamp":60000,"events":[{"type":"CHAMPION_KILL","killerId":0,"victimId":3,"killType":"KILL_FIRST_BLOOD","position":{"x":1,"y":2}}],"participantFrames":{"1":{"totalGold":500,"xp":10,"championStats":{"armor":30},"damageStats":{"totalDamageDone":12}}}}]}}`

func TestTimelineKeepsUpstreamBody(t *testing.T) {
	var tl Timeline
	require.NoError(t, json.Unmarshal([]byte(upstreamTimeline), &tl))

	require.Len(t, tl.Info.Frames, 1)
	assert.Equal(t, 3, tl.Info.Frames[0].Events[0].VictimID)
	assert.Equal(t, 500, tl.Info.Frames[0].ParticipantFrames["1"].TotalGold)

	out, err := json.Marshal(&tl)
	require.NoError(t, err)
	assert.JSONEq(t, upstreamTimeline, string(out))
}

func TestMatchWithoutBodyEncodesFields(t *testing.T) {
	out, err := json.Marshal(Match{Metadata: MatchMetadata{MatchID: "NA1_2"}})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"matchId":"NA1_2"`)
}

func TestActiveGameKeepsParticipantBodies(t *testing.T) {
	body := `{"gameId":7,"gameQueueConfigId":420,"participants":[{"puuid":"p-1","championId":103,"lastSelectedSkinIndex":4}]}`

	var game ActiveGame
	require.NoError(t, json.Unmarshal([]byte(body), &game))
	require.Len(t, game.Participants, 1)
	assert.Equal(t, int64(103), game.Participants[0].ChampionID)

	out, err := json.Marshal(game.Participants[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"puuid":"p-1","championId":103,"lastSelectedSkinIndex":4}`, string(out))
}

func TestMergeJSON(t *testing.T) {
	var p ActiveParticipant
	require.NoError(t, json.Unmarshal([]byte(`{"puuid":"p-1","customField":true}`), &p))

	out, err := MergeJSON(p, map[string]any{"rank": "GOLD II", "tags": []string{}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"puuid":"p-1","customField":true,"rank":"GOLD II","tags":[]}`, string(out))
}
