// Package breaker wraps database repositories with a shared circuit breaker so
// a failing store is rejected fast instead of piling up on every request.
package breaker

import (
	"context"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/player"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/playerstats"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/team"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/teamstats"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/platform/resilience"
)

type TeamRepository struct {
	next team.Repository
	cb   *resilience.CircuitBreaker
}

func NewTeamRepository(next team.Repository, cb *resilience.CircuitBreaker) *TeamRepository {
	return &TeamRepository{next: next, cb: cb}
}

func (r *TeamRepository) List(ctx context.Context) (items []team.Team, err error) {
	err = r.cb.Execute(ctx, func(ctx context.Context) error {
		items, err = r.next.List(ctx)
		return err
	})
	return items, err
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (item team.Team, exists bool, err error) {
	err = r.cb.Execute(ctx, func(ctx context.Context) error {
		item, exists, err = r.next.GetByID(ctx, teamID)
		return err
	})
	return item, exists, err
}

type PlayerRepository struct {
	next player.Repository
	cb   *resilience.CircuitBreaker
}

func NewPlayerRepository(next player.Repository, cb *resilience.CircuitBreaker) *PlayerRepository {
	return &PlayerRepository{next: next, cb: cb}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (item player.Player, exists bool, err error) {
	err = r.cb.Execute(ctx, func(ctx context.Context) error {
		item, exists, err = r.next.GetByID(ctx, playerID)
		return err
	})
	return item, exists, err
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) (items []player.Player, err error) {
	err = r.cb.Execute(ctx, func(ctx context.Context) error {
		items, err = r.next.ListByTeam(ctx, teamID)
		return err
	})
	return items, err
}

type MatchStatsRepository struct {
	next teamstats.Repository
	cb   *resilience.CircuitBreaker
}

func NewMatchStatsRepository(next teamstats.Repository, cb *resilience.CircuitBreaker) *MatchStatsRepository {
	return &MatchStatsRepository{next: next, cb: cb}
}

func (r *MatchStatsRepository) ListRowsByTeam(ctx context.Context, teamID string, rng teamstats.DateRange) (rows []teamstats.RawRow, err error) {
	err = r.cb.Execute(ctx, func(ctx context.Context) error {
		rows, err = r.next.ListRowsByTeam(ctx, teamID, rng)
		return err
	})
	return rows, err
}

func (r *MatchStatsRepository) ListRowsByTeams(ctx context.Context, teamIDs []string, rng teamstats.DateRange) (rows map[string][]teamstats.RawRow, err error) {
	err = r.cb.Execute(ctx, func(ctx context.Context) error {
		rows, err = r.next.ListRowsByTeams(ctx, teamIDs, rng)
		return err
	})
	return rows, err
}

type PlayerStatsRepository struct {
	next playerstats.Repository
	cb   *resilience.CircuitBreaker
}

func NewPlayerStatsRepository(next playerstats.Repository, cb *resilience.CircuitBreaker) *PlayerStatsRepository {
	return &PlayerStatsRepository{next: next, cb: cb}
}

func (r *PlayerStatsRepository) GetByPlayer(ctx context.Context, playerID string) (rec playerstats.RawRecord, exists bool, err error) {
	err = r.cb.Execute(ctx, func(ctx context.Context) error {
		rec, exists, err = r.next.GetByPlayer(ctx, playerID)
		return err
	})
	return rec, exists, err
}

func (r *PlayerStatsRepository) ListByPlayers(ctx context.Context, playerIDs []string) (recs map[string]playerstats.RawRecord, err error) {
	err = r.cb.Execute(ctx, func(ctx context.Context) error {
		recs, err = r.next.ListByPlayers(ctx, playerIDs)
		return err
	})
	return recs, err
}
