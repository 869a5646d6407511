package playerstats

import (
	"fmt"
	"slices"
	"strings"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/metric"
)

// RawRecord is a player stat row as handed over by storage.
type RawRecord = map[string]any

var periodKeys = []string{"period", "label", "name", "month"}

// NormalizeRecord turns a raw row into a Record. Missing, malformed and
// non-finite values become unrecorded; it never fails.
func NormalizeRecord(raw RawRecord) Record {
	return Record{
		Goals:              metric.Field(raw, "goals"),
		Assists:            metric.Field(raw, "assists"),
		YellowCards:        metric.Field(raw, "yellowCards", "yellow_cards"),
		RedCards:           metric.Field(raw, "redCards", "red_cards"),
		MinutesPlayed:      metric.Field(raw, "minutesPlayed", "minutes_played"),
		Saves:              metric.Field(raw, "saves"),
		SavePercentage:     metric.Field(raw, "savePercentage", "save_percentage"),
		CleanSheets:        metric.Field(raw, "cleansheets", "cleanSheets", "clean_sheets"),
		Tackles:            metric.Field(raw, "tackles"),
		Interceptions:      metric.Field(raw, "interceptions"),
		Clearances:         metric.Field(raw, "clearances"),
		PassCompletion:     metric.Field(raw, "passCompletion", "pass_completion"),
		Shots:              metric.Field(raw, "shots"),
		ShotsOnTarget:      metric.Field(raw, "shotsOnTarget", "shots_on_target"),
		ChancesCreated:     metric.Field(raw, "chancesCreated", "chances_created"),
		DribblesAttempted:  metric.Field(raw, "dribblesAttempted", "dribbles_attempted"),
		DribblesSuccessful: metric.Field(raw, "dribblesSuccessful", "dribbles_successful"),
		Offsides:           metric.Field(raw, "offsides"),
		PerformanceData:    normalizePerformance(firstPresent(raw, "performanceData", "performance_data")),
	}
}

func firstPresent(raw RawRecord, keys ...string) any {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			return v
		}
	}
	return nil
}

func normalizePerformance(v any) []PerformancePoint {
	var items []map[string]any
	switch x := v.(type) {
	case []map[string]any:
		items = x
	case []any:
		items = make([]map[string]any, 0, len(x))
		for _, item := range x {
			if m, ok := item.(map[string]any); ok {
				items = append(items, m)
			}
		}
	default:
		return nil
	}

	out := make([]PerformancePoint, 0, len(items))
	for _, item := range items {
		point := PerformancePoint{Values: make(map[string]float64, len(item))}
		for _, key := range periodKeys {
			if value, ok := item[key]; ok && value != nil && point.Period == "" {
				point.Period = strings.TrimSpace(fmt.Sprint(value))
			}
		}
		for key, value := range item {
			if slices.Contains(periodKeys, key) {
				continue
			}
			if n := metric.Number(value); n.Valid {
				point.Values[key] = n.Float64
			}
		}
		out = append(out, point)
	}
	return out
}
