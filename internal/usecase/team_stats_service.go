package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/team"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/teamstats"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/platform/logging"
	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultCompareWorkers  = 4
	defaultCompareMaxTeams = 20
)

type TeamStatsConfig struct {
	FormLength      int
	CompareWorkers  int
	CompareMaxTeams int
}

// TeamComparison is one team's line in a comparison report. HasData is false
// when the team has no matches in the range.
type TeamComparison struct {
	Team    team.Team
	Summary teamstats.TeamSummary
	HasData bool
}

type TeamStatsService struct {
	teamRepo  team.Repository
	statsRepo teamstats.Repository
	cfg       TeamStatsConfig
	logger    *logging.Logger
}

func NewTeamStatsService(
	teamRepo team.Repository,
	statsRepo teamstats.Repository,
	cfg TeamStatsConfig,
	logger *logging.Logger,
) *TeamStatsService {
	if cfg.FormLength <= 0 {
		cfg.FormLength = teamstats.DefaultFormLength
	}
	if cfg.CompareWorkers <= 0 {
		cfg.CompareWorkers = defaultCompareWorkers
	}
	if cfg.CompareMaxTeams <= 0 {
		cfg.CompareMaxTeams = defaultCompareMaxTeams
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamStatsService{
		teamRepo:  teamRepo,
		statsRepo: statsRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *TeamStatsService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.ListTeams")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, dependencyError(err, "list teams")
	}

	return items, nil
}

// GetSummary aggregates a team's matches within rng. The bool is false when
// the team exists but has no matches in the range.
func (s *TeamStatsService) GetSummary(ctx context.Context, teamID string, rng teamstats.DateRange) (teamstats.TeamSummary, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.GetSummary", attribute.String("team.id", teamID))
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return teamstats.TeamSummary{}, false, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if err := validateRange(rng); err != nil {
		return teamstats.TeamSummary{}, false, err
	}
	if _, err := s.getTeam(ctx, teamID); err != nil {
		return teamstats.TeamSummary{}, false, err
	}

	raws, err := s.statsRepo.ListRowsByTeam(ctx, teamID, rng)
	if err != nil {
		return teamstats.TeamSummary{}, false, dependencyError(err, "list match rows")
	}

	summary, ok := s.aggregate(raws, rng)
	return summary, ok, nil
}

// CompareTeams builds summaries for several teams, ordered by win percentage,
// then goal difference, then team id. Teams without matches sort last.
func (s *TeamStatsService) CompareTeams(ctx context.Context, teamIDs []string, rng teamstats.DateRange) ([]TeamComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.CompareTeams", attribute.Int("team.count", len(teamIDs)))
	defer span.End()

	teamIDs = lo.Uniq(lo.Compact(lo.Map(teamIDs, func(id string, _ int) string {
		return strings.TrimSpace(id)
	})))
	if len(teamIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one team id is required", ErrInvalidInput)
	}
	if len(teamIDs) > s.cfg.CompareMaxTeams {
		return nil, fmt.Errorf("%w: at most %d teams can be compared", ErrInvalidInput, s.cfg.CompareMaxTeams)
	}
	if err := validateRange(rng); err != nil {
		return nil, err
	}

	rowsByTeam, err := s.statsRepo.ListRowsByTeams(ctx, teamIDs, rng)
	if err != nil {
		return nil, dependencyError(err, "list match rows by teams")
	}

	pool, err := ants.NewPool(min(s.cfg.CompareWorkers, len(teamIDs)))
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	var (
		mu       sync.Mutex
		firstErr error
		out      = make([]TeamComparison, 0, len(teamIDs))
		workers  sync.WaitGroup
	)
	for _, teamID := range teamIDs {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			item, err := s.getTeam(ctx, teamID)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			summary, ok := s.aggregate(rowsByTeam[teamID], rng)

			mu.Lock()
			out = append(out, TeamComparison{Team: item, Summary: summary, HasData: ok})
			mu.Unlock()
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, errors.Wrap(err, "submit task to worker pool")
		}
	}
	workers.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	sortComparisons(out)
	s.logger.DebugContext(ctx, "teams compared", "teams", len(out))
	return out, nil
}

func (s *TeamStatsService) aggregate(raws []teamstats.RawRow, rng teamstats.DateRange) (teamstats.TeamSummary, bool) {
	return teamstats.AggregateTeamSummary(
		teamstats.NormalizeRows(raws),
		teamstats.WithRange(rng),
		teamstats.WithFormLength(s.cfg.FormLength),
	)
}

func (s *TeamStatsService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, dependencyError(err, "get team")
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func sortComparisons(items []TeamComparison) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.HasData != b.HasData {
			return a.HasData
		}
		if a.Summary.WinPercentage != b.Summary.WinPercentage {
			return a.Summary.WinPercentage > b.Summary.WinPercentage
		}
		if a.Summary.GoalDifference != b.Summary.GoalDifference {
			return a.Summary.GoalDifference > b.Summary.GoalDifference
		}
		return a.Team.ID < b.Team.ID
	})
}

func validateRange(rng teamstats.DateRange) error {
	if !rng.Start.IsZero() && !rng.End.IsZero() && rng.End.Before(rng.Start) {
		return fmt.Errorf("%w: end date must not be before start date", ErrInvalidInput)
	}
	return nil
}
