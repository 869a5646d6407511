package postgres

import (
	"context"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/playerstats"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/teamstats"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/infrastructure/repository/memory"
	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
)

// BootstrapSeed loads the demo data set into an empty database. It is a no-op
// once any team exists. Match and player rows are normalised before insert so
// the stored values are numeric or NULL.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, seed memory.Seed) (bool, error) {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams WHERE deleted_at IS NULL`); err != nil {
		return false, errors.Wrap(err, "count teams for bootstrap seed")
	}
	if count > 0 {
		return false, nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, errors.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exec := func(label, query string, arg map[string]any) error {
		sqlQuery, args, err := sqlx.Named(query, arg)
		if err != nil {
			return errors.Wrapf(err, "bind seed %s query", label)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return errors.Wrapf(err, "seed %s", label)
		}
		return nil
	}

	for _, t := range seed.Teams {
		if err := exec("team "+t.ID, `
INSERT INTO teams (public_id, name, short)
VALUES (:public_id, :name, :short)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id": t.ID,
			"name":      t.Name,
			"short":     t.Short,
		}); err != nil {
			return false, err
		}
	}

	for _, p := range seed.Players {
		if err := exec("player "+p.ID, `
INSERT INTO players (public_id, team_public_id, name, position, jersey_number)
VALUES (:public_id, :team_public_id, :name, :position, :jersey_number)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":      p.ID,
			"team_public_id": p.TeamID,
			"name":           p.Name,
			"position":       p.Position,
			"jersey_number":  p.JerseyNumber,
		}); err != nil {
			return false, err
		}
	}

	for _, raw := range seed.MatchStats {
		row := teamstats.NormalizeRow(raw)
		if err := exec("match "+row.MatchID+"/"+row.TeamID, `
INSERT INTO match_stats (
	match_public_id, team_public_id, match_date, team_score, opponent_score,
	possession, pass_accuracy, shots, shots_on_target, corners, fouls,
	offsides, xg, passes, tackles, saves
)
VALUES (
	:match_public_id, :team_public_id, :match_date, :team_score, :opponent_score,
	:possession, :pass_accuracy, :shots, :shots_on_target, :corners, :fouls,
	:offsides, :xg, :passes, :tackles, :saves
)
ON CONFLICT (match_public_id, team_public_id) DO NOTHING`, matchStatSeedArgs(row)); err != nil {
			return false, err
		}
	}

	for _, raw := range seed.PlayerStats {
		playerID, _ := raw["player_id"].(string)
		if playerID == "" {
			playerID, _ = raw["playerId"].(string)
		}
		if playerID == "" {
			continue
		}
		arg, err := playerStatSeedArgs(playerID, playerstats.NormalizeRecord(raw))
		if err != nil {
			return false, err
		}
		if err := exec("player stats "+playerID, `
INSERT INTO player_stats (
	player_public_id, goals, assists, yellow_cards, red_cards, minutes_played,
	saves, save_percentage, clean_sheets, tackles, interceptions, clearances,
	pass_completion, shots, shots_on_target, chances_created,
	dribbles_attempted, dribbles_successful, offsides, performance_data
)
VALUES (
	:player_public_id, :goals, :assists, :yellow_cards, :red_cards, :minutes_played,
	:saves, :save_percentage, :clean_sheets, :tackles, :interceptions, :clearances,
	:pass_completion, :shots, :shots_on_target, :chances_created,
	:dribbles_attempted, :dribbles_successful, :offsides, :performance_data
)
ON CONFLICT (player_public_id) DO NOTHING`, arg); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, errors.Wrap(err, "commit seed tx")
	}

	return true, nil
}

func matchStatSeedArgs(row teamstats.MatchStatRow) map[string]any {
	var matchDate any
	if !row.PlayedAt.IsZero() {
		matchDate = row.PlayedAt.Format("2006-01-02")
	}

	return map[string]any{
		"match_public_id": row.MatchID,
		"team_public_id":  row.TeamID,
		"match_date":      matchDate,
		"team_score":      row.TeamScore,
		"opponent_score":  row.OpponentScore,
		"possession":      row.Possession,
		"pass_accuracy":   row.PassAccuracy,
		"shots":           row.Shots,
		"shots_on_target": row.ShotsOnTarget,
		"corners":         row.Corners,
		"fouls":           row.Fouls,
		"offsides":        row.Offsides,
		"xg":              row.XG,
		"passes":          row.Passes,
		"tackles":         row.Tackles,
		"saves":           row.Saves,
	}
}

func playerStatSeedArgs(playerID string, rec playerstats.Record) (map[string]any, error) {
	var performance any
	if len(rec.PerformanceData) > 0 {
		points := make([]map[string]any, 0, len(rec.PerformanceData))
		for _, p := range rec.PerformanceData {
			point := make(map[string]any, len(p.Values)+1)
			point["period"] = p.Period
			for k, v := range p.Values {
				point[k] = v
			}
			points = append(points, point)
		}
		encoded, err := sonic.Marshal(points)
		if err != nil {
			return nil, errors.Wrapf(err, "encode performance data player=%s", playerID)
		}
		performance = string(encoded)
	}

	return map[string]any{
		"player_public_id":    playerID,
		"goals":               rec.Goals,
		"assists":             rec.Assists,
		"yellow_cards":        rec.YellowCards,
		"red_cards":           rec.RedCards,
		"minutes_played":      rec.MinutesPlayed,
		"saves":               rec.Saves,
		"save_percentage":     rec.SavePercentage,
		"clean_sheets":        rec.CleanSheets,
		"tackles":             rec.Tackles,
		"interceptions":       rec.Interceptions,
		"clearances":          rec.Clearances,
		"pass_completion":     rec.PassCompletion,
		"shots":               rec.Shots,
		"shots_on_target":     rec.ShotsOnTarget,
		"chances_created":     rec.ChancesCreated,
		"dribbles_attempted":  rec.DribblesAttempted,
		"dribbles_successful": rec.DribblesSuccessful,
		"offsides":            rec.Offsides,
		"performance_data":    performance,
	}, nil
}
