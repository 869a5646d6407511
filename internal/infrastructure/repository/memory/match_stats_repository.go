package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/teamstats"
	"github.com/samber/lo"
)

type MatchStatsRepository struct {
	mu         sync.RWMutex
	rowsByTeam map[string][]teamstats.RawRow
}

func NewMatchStatsRepository(rows []teamstats.RawRow) *MatchStatsRepository {
	rowsByTeam := make(map[string][]teamstats.RawRow)
	for _, raw := range rows {
		teamID := teamstats.NormalizeRow(raw).TeamID
		rowsByTeam[teamID] = append(rowsByTeam[teamID], maps.Clone(raw))
	}

	return &MatchStatsRepository{rowsByTeam: rowsByTeam}
}

func (r *MatchStatsRepository) ListRowsByTeam(_ context.Context, teamID string, rng teamstats.DateRange) ([]teamstats.RawRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.filter(teamID, rng), nil
}

func (r *MatchStatsRepository) ListRowsByTeams(_ context.Context, teamIDs []string, rng teamstats.DateRange) (map[string][]teamstats.RawRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]teamstats.RawRow, len(teamIDs))
	for _, teamID := range lo.Uniq(lo.Compact(teamIDs)) {
		if rows := r.filter(teamID, rng); len(rows) > 0 {
			out[teamID] = rows
		}
	}

	return out, nil
}

func (r *MatchStatsRepository) filter(teamID string, rng teamstats.DateRange) []teamstats.RawRow {
	rows := r.rowsByTeam[teamID]
	out := make([]teamstats.RawRow, 0, len(rows))
	for _, raw := range rows {
		if !rng.Contains(teamstats.NormalizeRow(raw).PlayedAt) {
			continue
		}
		out = append(out, maps.Clone(raw))
	}

	return out
}
