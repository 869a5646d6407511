package postgres

import (
	"context"
	"time"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/teamstats"
	qb "github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/platform/querybuilder"
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/samber/lo"
)

// matchStatColumns aliases storage columns to the keys the normalizer reads.
var matchStatColumns = []string{
	"match_public_id AS match_id",
	"team_public_id AS team_id",
	"match_date",
	"team_score",
	"opponent_score",
	"possession",
	"pass_accuracy",
	"shots",
	"shots_on_target",
	"corners",
	"fouls",
	"offsides",
	"xg",
	"passes",
	"tackles",
	"saves",
}

type MatchStatsRepository struct {
	db *sqlx.DB
}

func NewMatchStatsRepository(db *sqlx.DB) *MatchStatsRepository {
	return &MatchStatsRepository{db: db}
}

func (r *MatchStatsRepository) ListRowsByTeam(ctx context.Context, teamID string, rng teamstats.DateRange) ([]teamstats.RawRow, error) {
	where := append([]qb.Condition{
		qb.Eq("team_public_id", teamID),
		qb.IsNull("deleted_at"),
	}, dateRangeConditions("match_date", rng)...)

	query, args, err := qb.Select(matchStatColumns...).From("match_stats").
		Where(where...).
		OrderBy("match_date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list match stats by team query")
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "list match stats by team id=%s", teamID)
	}

	out, err := scanMaps(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "scan match stats for team id=%s", teamID)
	}

	return out, nil
}

func (r *MatchStatsRepository) ListRowsByTeams(ctx context.Context, teamIDs []string, rng teamstats.DateRange) (map[string][]teamstats.RawRow, error) {
	teamIDs = lo.Uniq(lo.Compact(teamIDs))
	out := make(map[string][]teamstats.RawRow, len(teamIDs))
	if len(teamIDs) == 0 {
		return out, nil
	}

	where := append([]qb.Condition{
		qb.Any("team_public_id", pq.Array(teamIDs)),
		qb.IsNull("deleted_at"),
	}, dateRangeConditions("match_date", rng)...)

	query, args, err := qb.Select(matchStatColumns...).From("match_stats").
		Where(where...).
		OrderBy("team_public_id", "match_date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list match stats by teams query")
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list match stats by teams")
	}

	scanned, err := scanMaps(rows)
	if err != nil {
		return nil, errors.Wrap(err, "scan match stats by teams")
	}

	for _, row := range scanned {
		teamID, _ := row["team_id"].(string)
		out[teamID] = append(out[teamID], row)
	}

	return out, nil
}

func dateRangeConditions(column string, rng teamstats.DateRange) []qb.Condition {
	var out []qb.Condition
	if !rng.Start.IsZero() {
		out = append(out, qb.Gte(column, rng.Start.Format(time.DateOnly)))
	}
	if !rng.End.IsZero() {
		out = append(out, qb.Lte(column, rng.End.Format(time.DateOnly)))
	}
	return out
}
