package postgres

import (
	"testing"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/playerstats"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/teamstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestMatchStatSeedArgs(t *testing.T) {
	row := teamstats.NormalizeRow(teamstats.RawRow{
		"matchId":    "m-003",
		"teamId":     "team-lions",
		"matchDate":  "2025-08-23",
		"teamScore":  "1",
		"possession": "n/a",
		"xG":         0.9,
	})

	args := matchStatSeedArgs(row)
	assert.Equal(t, "m-003", args["match_public_id"])
	assert.Equal(t, "team-lions", args["team_public_id"])
	assert.Equal(t, "2025-08-23", args["match_date"])
	assert.Equal(t, null.IntFrom(1), args["team_score"])
	assert.False(t, args["possession"].(null.Float).Valid)
	assert.Equal(t, null.FloatFrom(0.9), args["xg"])
}

func TestMatchStatSeedArgs_MissingDateIsNull(t *testing.T) {
	args := matchStatSeedArgs(teamstats.MatchStatRow{MatchID: "m-x", TeamID: "team-x"})
	assert.Nil(t, args["match_date"])
}

func TestPlayerStatSeedArgs(t *testing.T) {
	rec := playerstats.NormalizeRecord(playerstats.RawRecord{
		"goals": 7,
		"performance_data": []any{
			map[string]any{"period": "Aug", "goals": 5},
		},
	})

	args, err := playerStatSeedArgs("lions-st-9", rec)
	require.NoError(t, err)
	assert.Equal(t, "lions-st-9", args["player_public_id"])
	assert.Equal(t, null.FloatFrom(7), args["goals"])
	assert.JSONEq(t, `[{"period":"Aug","goals":5}]`, args["performance_data"].(string))
}

func TestPlayerStatSeedArgs_NoPerformanceData(t *testing.T) {
	args, err := playerStatSeedArgs("lions-sw-5", playerstats.Record{})
	require.NoError(t, err)
	assert.Nil(t, args["performance_data"])
}
