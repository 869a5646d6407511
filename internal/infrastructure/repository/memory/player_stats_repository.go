package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/playerstats"
	"github.com/samber/lo"
)

type PlayerStatsRepository struct {
	mu       sync.RWMutex
	byPlayer map[string]playerstats.RawRecord
}

// NewPlayerStatsRepository indexes records by their player_id (or playerId) key.
func NewPlayerStatsRepository(records []playerstats.RawRecord) *PlayerStatsRepository {
	byPlayer := make(map[string]playerstats.RawRecord, len(records))
	for _, raw := range records {
		playerID := recordPlayerID(raw)
		if playerID == "" {
			continue
		}
		byPlayer[playerID] = maps.Clone(raw)
	}

	return &PlayerStatsRepository{byPlayer: byPlayer}
}

func (r *PlayerStatsRepository) GetByPlayer(_ context.Context, playerID string) (playerstats.RawRecord, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	raw, ok := r.byPlayer[playerID]
	if !ok {
		return nil, false, nil
	}
	return maps.Clone(raw), true, nil
}

func (r *PlayerStatsRepository) ListByPlayers(_ context.Context, playerIDs []string) (map[string]playerstats.RawRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]playerstats.RawRecord, len(playerIDs))
	for _, playerID := range lo.Uniq(playerIDs) {
		if raw, ok := r.byPlayer[playerID]; ok {
			out[playerID] = maps.Clone(raw)
		}
	}

	return out, nil
}

func recordPlayerID(raw playerstats.RawRecord) string {
	for _, key := range []string{"player_id", "playerId"} {
		if v, ok := raw[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
