package postgres

import (
	"context"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/playerstats"
	qb "github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/platform/querybuilder"
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/samber/lo"
)

var playerStatColumns = []string{
	"player_public_id AS player_id",
	"goals",
	"assists",
	"yellow_cards",
	"red_cards",
	"minutes_played",
	"saves",
	"save_percentage",
	"clean_sheets",
	"tackles",
	"interceptions",
	"clearances",
	"pass_completion",
	"shots",
	"shots_on_target",
	"chances_created",
	"dribbles_attempted",
	"dribbles_successful",
	"offsides",
	"performance_data",
}

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) GetByPlayer(ctx context.Context, playerID string) (playerstats.RawRecord, bool, error) {
	query, args, err := qb.Select(playerStatColumns...).From("player_stats").
		Where(
			qb.Eq("player_public_id", playerID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, false, errors.Wrap(err, "build get player stats query")
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, false, errors.Wrapf(err, "get player stats id=%s", playerID)
	}

	scanned, err := scanMaps(rows)
	if err != nil {
		return nil, false, errors.Wrapf(err, "scan player stats id=%s", playerID)
	}
	if len(scanned) == 0 {
		return nil, false, nil
	}

	return decodePlayerStatRow(scanned[0]), true, nil
}

func (r *PlayerStatsRepository) ListByPlayers(ctx context.Context, playerIDs []string) (map[string]playerstats.RawRecord, error) {
	playerIDs = lo.Uniq(lo.Compact(playerIDs))
	out := make(map[string]playerstats.RawRecord, len(playerIDs))
	if len(playerIDs) == 0 {
		return out, nil
	}

	query, args, err := qb.Select(playerStatColumns...).From("player_stats").
		Where(
			qb.Any("player_public_id", pq.Array(playerIDs)),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build list player stats query")
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list player stats")
	}

	scanned, err := scanMaps(rows)
	if err != nil {
		return nil, errors.Wrap(err, "scan player stats")
	}

	for _, row := range scanned {
		playerID, _ := row["player_id"].(string)
		out[playerID] = decodePlayerStatRow(row)
	}

	return out, nil
}

func decodePlayerStatRow(row map[string]any) playerstats.RawRecord {
	if v, ok := row["performance_data"]; ok {
		row["performance_data"] = decodeJSONColumn(v)
	}
	return row
}
