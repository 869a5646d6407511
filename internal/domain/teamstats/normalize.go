package teamstats

import (
	"fmt"
	"strings"
	"time"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/metric"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
}

// NormalizeRow turns a raw storage row into a MatchStatRow. Missing,
// malformed and non-finite values become unrecorded; it never fails.
func NormalizeRow(raw RawRow) MatchStatRow {
	return MatchStatRow{
		MatchID:       text(raw, "match_id", "matchId", "id"),
		TeamID:        text(raw, "team_id", "teamId"),
		PlayedAt:      date(raw, "match_date", "matchDate", "played_at", "playedAt", "date"),
		TeamScore:     metric.Int(metric.Field(raw, "team_score", "teamScore")),
		OpponentScore: metric.Int(metric.Field(raw, "opponent_score", "opponentScore")),
		Possession:    metric.Field(raw, "possession"),
		PassAccuracy:  metric.Field(raw, "pass_accuracy", "passAccuracy"),
		Shots:         metric.Field(raw, "shots"),
		ShotsOnTarget: metric.Field(raw, "shots_on_target", "shotsOnTarget"),
		Corners:       metric.Field(raw, "corners"),
		Fouls:         metric.Field(raw, "fouls"),
		Offsides:      metric.Field(raw, "offsides"),
		XG:            metric.Field(raw, "xg", "xG"),
		Passes:        metric.Field(raw, "passes"),
		Tackles:       metric.Field(raw, "tackles"),
		Saves:         metric.Field(raw, "saves"),
	}
}

func NormalizeRows(raws []RawRow) []MatchStatRow {
	out := make([]MatchStatRow, 0, len(raws))
	for _, raw := range raws {
		out = append(out, NormalizeRow(raw))
	}
	return out
}

func text(raw RawRow, keys ...string) string {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case nil:
			continue
		case string:
			return strings.TrimSpace(v)
		case []byte:
			return strings.TrimSpace(string(v))
		case fmt.Stringer:
			return strings.TrimSpace(v.String())
		case int, int32, int64:
			return fmt.Sprint(v)
		}
	}
	return ""
}

func date(raw RawRow, keys ...string) time.Time {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case nil:
			continue
		case time.Time:
			return v
		case *time.Time:
			if v != nil {
				return *v
			}
		case string:
			if t, ok := parseDate(v); ok {
				return t
			}
		case []byte:
			if t, ok := parseDate(string(v)); ok {
				return t
			}
		}
	}
	return time.Time{}
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
