package playerstats

import (
	"reflect"
	"testing"
)

func TestNormalizeRecord_AliasesAndMalformedValues(t *testing.T) {
	rec := NormalizeRecord(RawRecord{
		"goals":           "12",
		"yellow_cards":    2,
		"clean_sheets":    []byte("5"),
		"passCompletion":  "eighty",
		"minutesPlayed":   true,
		"dribbles_failed": 4,
	})

	if rec.Goals.Float64 != 12 || rec.YellowCards.Float64 != 2 || rec.CleanSheets.Float64 != 5 {
		t.Fatalf("goals/yellow/clean=%v/%v/%v want 12/2/5", rec.Goals.Float64, rec.YellowCards.Float64, rec.CleanSheets.Float64)
	}
	if rec.PassCompletion.Valid {
		t.Fatalf("expected non-numeric passCompletion to be unrecorded")
	}
	if rec.MinutesPlayed.Valid {
		t.Fatalf("expected bool minutesPlayed to be unrecorded")
	}
	if rec.Assists.Valid {
		t.Fatalf("expected missing assists to be unrecorded")
	}
}

func TestNormalizeRecord_NilInput(t *testing.T) {
	rec := NormalizeRecord(nil)
	if rec.Goals.Valid {
		t.Fatalf("expected goals to be unrecorded")
	}
	if rec.PerformanceData != nil {
		t.Fatalf("performanceData=%v want nil", rec.PerformanceData)
	}
}

func TestNormalizeRecord_PerformanceData(t *testing.T) {
	rec := NormalizeRecord(RawRecord{
		"performanceData": []any{
			map[string]any{"month": "Aug", "goals": 2, "assists": "1", "saves": nil},
			"garbage",
			map[string]any{"period": "Sep", "label": "ignored", "goals": 0, "tackles": 3.0},
		},
	})

	want := []PerformancePoint{
		{Period: "Aug", Values: map[string]float64{"goals": 2, "assists": 1}},
		{Period: "Sep", Values: map[string]float64{"goals": 0, "tackles": 3}},
	}
	if !reflect.DeepEqual(rec.PerformanceData, want) {
		t.Fatalf("performanceData=%+v want=%+v", rec.PerformanceData, want)
	}

	if got := NormalizeRecord(RawRecord{"performanceData": "oops"}).PerformanceData; got != nil {
		t.Fatalf("performanceData=%v want nil", got)
	}
}
