package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/player"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/playerstats"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/team"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/iter"
	"go.opentelemetry.io/otel/attribute"
)

// StatCard is everything a player profile shows. HasStats is false when no
// stat record exists; the derived stats then show zeros.
type StatCard struct {
	Player          player.Player
	Group           playerstats.PositionGroup
	KeyStats        playerstats.KeyStats
	PositionStats   playerstats.PositionStats
	PerformanceData []playerstats.PerformancePoint
	HasStats        bool
}

type PlayerStatsService struct {
	teamRepo    team.Repository
	playerRepo  player.Repository
	statsRepo   playerstats.Repository
	cardWorkers int
}

func NewPlayerStatsService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	statsRepo playerstats.Repository,
	cardWorkers int,
) *PlayerStatsService {
	if cardWorkers <= 0 {
		cardWorkers = defaultCompareWorkers
	}

	return &PlayerStatsService{
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		statsRepo:   statsRepo,
		cardWorkers: cardWorkers,
	}
}

func (s *PlayerStatsService) GetStatCard(ctx context.Context, playerID string) (StatCard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.GetStatCard", attribute.String("player.id", playerID))
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return StatCard{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return StatCard{}, dependencyError(err, "get player")
	}
	if !exists {
		return StatCard{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	raw, hasStats, err := s.statsRepo.GetByPlayer(ctx, playerID)
	if err != nil {
		return StatCard{}, dependencyError(err, "get player stats")
	}

	return buildStatCard(item, raw, hasStats), nil
}

// ListTeamStatCards builds a card for every player on the team, in squad order.
func (s *PlayerStatsService) ListTeamStatCards(ctx context.Context, teamID string) ([]StatCard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.ListTeamStatCards", attribute.String("team.id", teamID))
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, dependencyError(err, "get team")
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, dependencyError(err, "list players by team")
	}
	if len(players) == 0 {
		return []StatCard{}, nil
	}

	ids := lo.Map(players, func(p player.Player, _ int) string { return p.ID })
	records, err := s.statsRepo.ListByPlayers(ctx, ids)
	if err != nil {
		return nil, dependencyError(err, "list player stats")
	}

	mapper := iter.Mapper[player.Player, StatCard]{MaxGoroutines: s.cardWorkers}
	return mapper.Map(players, func(p *player.Player) StatCard {
		raw, ok := records[p.ID]
		return buildStatCard(*p, raw, ok)
	}), nil
}

func buildStatCard(p player.Player, raw playerstats.RawRecord, hasStats bool) StatCard {
	rec := playerstats.NormalizeRecord(raw)
	group := playerstats.ClassifyPosition(p.Position)

	return StatCard{
		Player:          p,
		Group:           group,
		KeyStats:        playerstats.DeriveKeyStats(rec, group),
		PositionStats:   playerstats.DerivePositionStats(rec, group),
		PerformanceData: rec.PerformanceData,
		HasStats:        hasStats,
	}
}
