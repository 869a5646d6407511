package memory

import (
	"context"
	"testing"
	"time"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/teamstats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed(t *testing.T) {
	seed, err := LoadSeed()
	require.NoError(t, err)

	assert.Len(t, seed.Teams, 3)
	assert.NotEmpty(t, seed.Players)
	assert.NotEmpty(t, seed.MatchStats)
	assert.NotEmpty(t, seed.PlayerStats)
}

func TestDecodeSeed_RejectsInvalidTeam(t *testing.T) {
	_, err := decodeSeed([]byte(`{"teams":[{"id":"","name":"No ID"}]}`))
	require.Error(t, err)
}

func TestMatchStatsRepository_ListRowsByTeam(t *testing.T) {
	seed, err := LoadSeed()
	require.NoError(t, err)
	repo := NewMatchStatsRepository(seed.MatchStats)
	ctx := context.Background()

	all, err := repo.ListRowsByTeam(ctx, "team-lions", teamstats.DateRange{})
	require.NoError(t, err)
	assert.Len(t, all, 6)

	august, err := repo.ListRowsByTeam(ctx, "team-lions", teamstats.DateRange{
		Start: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, august, 4)

	missing, err := repo.ListRowsByTeam(ctx, "team-unknown", teamstats.DateRange{})
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestMatchStatsRepository_ReturnsCopies(t *testing.T) {
	repo := NewMatchStatsRepository([]teamstats.RawRow{
		{"match_id": "m-1", "team_id": "t-1", "team_score": 1, "opponent_score": 0},
	})
	ctx := context.Background()

	rows, err := repo.ListRowsByTeam(ctx, "t-1", teamstats.DateRange{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	rows[0]["team_score"] = 99

	again, err := repo.ListRowsByTeam(ctx, "t-1", teamstats.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, 1, again[0]["team_score"])
}

func TestMatchStatsRepository_ListRowsByTeams(t *testing.T) {
	seed, err := LoadSeed()
	require.NoError(t, err)
	repo := NewMatchStatsRepository(seed.MatchStats)

	got, err := repo.ListRowsByTeams(context.Background(), []string{"team-eagles", "team-sharks", "team-eagles", "", "team-unknown"}, teamstats.DateRange{})
	require.NoError(t, err)

	assert.Len(t, got, 2)
	assert.Len(t, got["team-eagles"], 3)
	assert.Len(t, got["team-sharks"], 2)
}

func TestPlayerStatsRepository(t *testing.T) {
	seed, err := LoadSeed()
	require.NoError(t, err)
	repo := NewPlayerStatsRepository(seed.PlayerStats)
	ctx := context.Background()

	raw, ok, err := repo.GetByPlayer(ctx, "lions-st-9")
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 7, raw["goals"])

	_, ok, err = repo.GetByPlayer(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, ok)

	batch, err := repo.ListByPlayers(ctx, []string{"lions-gk-1", "nobody", "lions-gk-1"})
	require.NoError(t, err)
	assert.Len(t, batch, 1)
	assert.Contains(t, batch, "lions-gk-1")
}

func TestPlayerRepository(t *testing.T) {
	seed, err := LoadSeed()
	require.NoError(t, err)
	repo := NewPlayerRepository(seed.Players)
	ctx := context.Background()

	squad, err := repo.ListByTeam(ctx, "team-lions")
	require.NoError(t, err)
	assert.Len(t, squad, 5)

	p, ok, err := repo.GetByID(ctx, "eagles-rw-7")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "RW", p.Position)
}

func TestTeamRepository(t *testing.T) {
	seed, err := LoadSeed()
	require.NoError(t, err)
	repo := NewTeamRepository(seed.Teams)
	ctx := context.Background()

	teams, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 3)
	assert.Equal(t, "Bay Sharks", teams[0].Name)

	_, ok, err := repo.GetByID(ctx, "team-missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
