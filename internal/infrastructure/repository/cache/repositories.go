package cache

import (
	"context"
	"maps"
	"strings"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/player"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/team"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/teamstats"
	basecache "github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/platform/cache"
	"github.com/samber/lo"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	key := "player:id:" + playerID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayerByID)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	key := "player:team:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

type cachedPlayerByID struct {
	value  player.Player
	exists bool
}

// MatchStatsRepository caches raw rows per (team, range). Summaries are not
// cached, so form and averages are always recomputed from these rows.
type MatchStatsRepository struct {
	next  teamstats.Repository
	cache *basecache.Store
}

func NewMatchStatsRepository(next teamstats.Repository, cache *basecache.Store) *MatchStatsRepository {
	return &MatchStatsRepository{next: next, cache: cache}
}

func (r *MatchStatsRepository) ListRowsByTeam(ctx context.Context, teamID string, rng teamstats.DateRange) ([]teamstats.RawRow, error) {
	rows, err := basecache.Load(ctx, r.cache, matchRowsKey(teamID, rng), func(ctx context.Context) ([]teamstats.RawRow, error) {
		return r.next.ListRowsByTeam(ctx, teamID, rng)
	})
	if err != nil {
		return nil, err
	}

	return cloneRows(rows), nil
}

// ListRowsByTeams serves cached teams from the store and loads the rest with
// one batch call.
func (r *MatchStatsRepository) ListRowsByTeams(ctx context.Context, teamIDs []string, rng teamstats.DateRange) (map[string][]teamstats.RawRow, error) {
	teamIDs = lo.Uniq(lo.Compact(teamIDs))
	out := make(map[string][]teamstats.RawRow, len(teamIDs))

	missing := make([]string, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		v, ok := r.cache.Get(ctx, matchRowsKey(teamID, rng))
		if !ok {
			missing = append(missing, teamID)
			continue
		}
		if rows, _ := v.([]teamstats.RawRow); len(rows) > 0 {
			out[teamID] = cloneRows(rows)
		}
	}
	if len(missing) == 0 {
		return out, nil
	}

	loaded, err := r.next.ListRowsByTeams(ctx, missing, rng)
	if err != nil {
		return nil, err
	}
	for _, teamID := range missing {
		rows := loaded[teamID]
		r.cache.Set(ctx, matchRowsKey(teamID, rng), cloneRows(rows))
		if len(rows) > 0 {
			out[teamID] = cloneRows(rows)
		}
	}

	return out, nil
}

func matchRowsKey(teamID string, rng teamstats.DateRange) string {
	return strings.Join([]string{"match-rows", teamID, rng.Key()}, ":")
}

func cloneRows(rows []teamstats.RawRow) []teamstats.RawRow {
	out := make([]teamstats.RawRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, maps.Clone(row))
	}
	return out
}
