package teamstats

import (
	"math"
	"slices"
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustAggregate(t *testing.T, rows []MatchStatRow, opts ...Option) TeamSummary {
	t.Helper()
	summary, ok := AggregateTeamSummary(rows, opts...)
	if !ok {
		t.Fatalf("expected a summary for %d rows", len(rows))
	}
	return summary
}

func TestAggregateTeamSummary_EmptyInput(t *testing.T) {
	summary, ok := AggregateTeamSummary(nil)
	if ok {
		t.Fatalf("expected empty sentinel, got %+v", summary)
	}

	_, ok = AggregateTeamSummary([]MatchStatRow{})
	if ok {
		t.Fatalf("expected empty sentinel for empty slice")
	}
}

func TestAggregateTeamSummary_EndToEnd(t *testing.T) {
	rows := NormalizeRows([]RawRow{
		{"team_score": 2, "opponent_score": 1, "possession": 60, "pass_accuracy": 85, "match_date": "2025-08-01"},
		{"team_score": 1, "opponent_score": 0, "possession": nil, "pass_accuracy": nil, "match_date": "2025-08-08"},
		{"team_score": 0, "opponent_score": 2, "possession": 50, "pass_accuracy": 80, "match_date": "2025-08-15"},
	})

	summary := mustAggregate(t, rows)

	ints := []struct {
		name      string
		got, want int
	}{
		{"totalMatches", summary.TotalMatches, 3},
		{"goalsFor", summary.GoalsFor, 3},
		{"goalsAgainst", summary.GoalsAgainst, 3},
		{"goalDifference", summary.GoalDifference, 0},
		{"wins", summary.Wins, 2},
		{"losses", summary.Losses, 1},
		{"draws", summary.Draws, 0},
		{"winPercentage", summary.WinPercentage, 67},
		{"avg_possession", summary.Average(FieldPossession), 55},
		{"avg_pass_accuracy", summary.Average(FieldPassAccuracy), 83},
	}
	for _, c := range ints {
		if c.got != c.want {
			t.Fatalf("%s=%d want=%d", c.name, c.got, c.want)
		}
	}
	if got := summary.Total(FieldPossession); got != 110 {
		t.Fatalf("total_possession=%v want=110", got)
	}
	if got := summary.Total(FieldPassAccuracy); got != 165 {
		t.Fatalf("total_pass_accuracy=%v want=165", got)
	}
	if want := []Outcome{OutcomeLoss, OutcomeWin, OutcomeWin}; !slices.Equal(summary.Form, want) {
		t.Fatalf("form=%v want=%v", summary.Form, want)
	}
}

func TestAggregateTeamSummary_Invariants(t *testing.T) {
	tests := []struct {
		name string
		rows []MatchStatRow
	}{
		{
			name: "single draw",
			rows: NormalizeRows([]RawRow{{"team_score": 1, "opponent_score": 1}}),
		},
		{
			name: "mixed results",
			rows: NormalizeRows([]RawRow{
				{"team_score": 4, "opponent_score": 0},
				{"team_score": 0, "opponent_score": 3},
				{"team_score": 2, "opponent_score": 2},
				{"team_score": 1, "opponent_score": 5},
			}),
		},
		{
			name: "missing scores count as nil-nil",
			rows: NormalizeRows([]RawRow{{"team_score": nil}, {"opponent_score": "x"}}),
		},
		{
			name: "out of range scores count as nil-nil",
			rows: NormalizeRows([]RawRow{{"team_score": "1e300", "opponent_score": -1e19}}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := mustAggregate(t, tt.rows)
			if summary.GoalDifference != summary.GoalsFor-summary.GoalsAgainst {
				t.Fatalf("goal difference %d != %d - %d", summary.GoalDifference, summary.GoalsFor, summary.GoalsAgainst)
			}
			if summary.TotalMatches != summary.Wins+summary.Draws+summary.Losses {
				t.Fatalf("W/D/L %d/%d/%d do not add up to %d", summary.Wins, summary.Draws, summary.Losses, summary.TotalMatches)
			}
			if summary.TotalMatches != len(tt.rows) {
				t.Fatalf("totalMatches=%d want=%d", summary.TotalMatches, len(tt.rows))
			}
		})
	}
}

func TestAggregateTeamSummary_HugeScoreIsUnrecorded(t *testing.T) {
	rows := NormalizeRows([]RawRow{
		{"team_score": "1e300", "opponent_score": 1, "shots": int64(math.MaxInt64), "match_date": "2025-08-09"},
		{"team_score": 2, "opponent_score": 0, "shots": 12, "match_date": "2025-08-16"},
	})

	if rows[0].TeamScore.Valid {
		t.Fatalf("expected out-of-range score to be unrecorded, got %d", rows[0].TeamScore.Int64)
	}
	if rows[0].Shots.Valid {
		t.Fatalf("expected out-of-range shots to be unrecorded")
	}

	summary := mustAggregate(t, rows)
	if summary.GoalsFor != 2 || summary.GoalsAgainst != 1 {
		t.Fatalf("goals=%d:%d want=2:1", summary.GoalsFor, summary.GoalsAgainst)
	}
	if summary.Wins != 1 || summary.Losses != 1 {
		t.Fatalf("wins=%d losses=%d want 1 and 1", summary.Wins, summary.Losses)
	}
	if got := summary.Average(FieldShots); got != 12 {
		t.Fatalf("avg_shots=%d want=12", got)
	}
	if want := []Outcome{OutcomeWin, OutcomeLoss}; !slices.Equal(summary.Form, want) {
		t.Fatalf("form=%v want=%v", summary.Form, want)
	}
}

func TestAggregateTeamSummary_AllOptionalFieldsNull(t *testing.T) {
	rows := NormalizeRows([]RawRow{
		{"team_score": 1, "opponent_score": 0},
		{"team_score": 0, "opponent_score": 0, "possession": nil, "xg": "NaN", "shots": "n/a"},
	})

	summary := mustAggregate(t, rows)
	for _, f := range RateFields {
		if got := summary.Average(f); got != 0 {
			t.Fatalf("avg_%s=%d want=0", f, got)
		}
		if got := summary.Total(f); got != 0 {
			t.Fatalf("total_%s=%v want=0", f, got)
		}
		if _, present := summary.Averages[f]; !present {
			t.Fatalf("avg_%s should be present", f)
		}
	}
}

func TestAggregateTeamSummary_RangeFilter(t *testing.T) {
	rows := []MatchStatRow{
		NormalizeRow(RawRow{"team_score": 3, "opponent_score": 0, "match_date": "2025-07-31"}),
		NormalizeRow(RawRow{"team_score": 1, "opponent_score": 1, "match_date": "2025-08-01T19:30:00Z"}),
		NormalizeRow(RawRow{"team_score": 0, "opponent_score": 1, "match_date": "2025-08-31"}),
		NormalizeRow(RawRow{"team_score": 2, "opponent_score": 0}),
	}

	summary := mustAggregate(t, rows, WithRange(DateRange{Start: day("2025-08-01"), End: day("2025-08-31")}))
	if summary.TotalMatches != 2 || summary.GoalsFor != 1 || summary.GoalsAgainst != 2 {
		t.Fatalf("unexpected August summary: matches=%d goals=%d:%d", summary.TotalMatches, summary.GoalsFor, summary.GoalsAgainst)
	}

	if _, ok := AggregateTeamSummary(rows, WithRange(DateRange{Start: day("2026-01-01")})); ok {
		t.Fatalf("filtered-to-empty input must return the empty sentinel")
	}
}

func TestAggregateTeamSummary_FormIsNewestFirstAndCapped(t *testing.T) {
	rows := make([]MatchStatRow, 0, 7)
	dates := []string{"2025-08-20", "2025-08-01", "2025-08-27", "2025-08-06", "2025-08-13", "2025-09-03", "2025-09-10"}
	scores := [][2]int{{1, 0}, {0, 0}, {0, 2}, {2, 2}, {3, 1}, {1, 1}, {0, 1}}
	for i, d := range dates {
		rows = append(rows, NormalizeRow(RawRow{
			"match_date":     d,
			"team_score":     scores[i][0],
			"opponent_score": scores[i][1],
		}))
	}

	summary := mustAggregate(t, rows)
	if want := []Outcome{OutcomeLoss, OutcomeDraw, OutcomeLoss, OutcomeWin, OutcomeWin}; !slices.Equal(summary.Form, want) {
		t.Fatalf("form=%v want=%v", summary.Form, want)
	}

	summary = mustAggregate(t, rows, WithFormLength(3))
	if want := []Outcome{OutcomeLoss, OutcomeDraw, OutcomeLoss}; !slices.Equal(summary.Form, want) {
		t.Fatalf("form=%v want=%v", summary.Form, want)
	}

	// recomputed per call, input order is left untouched
	if got := rows[0].PlayedAt.Format(time.DateOnly); got != "2025-08-20" {
		t.Fatalf("input reordered: first row played %s", got)
	}
}

func TestAggregateTeamSummary_TotalsUseNonNullSubset(t *testing.T) {
	rows := NormalizeRows([]RawRow{
		{"team_score": 1, "opponent_score": 0, "xg": 1.4, "shots": 10},
		{"team_score": 1, "opponent_score": 0, "xg": 0.9},
		{"team_score": 1, "opponent_score": 0, "xg": []byte("0.6"), "shots": 5},
	})

	summary := mustAggregate(t, rows)
	if got := summary.Total(FieldXG); math.Abs(got-2.9) > 1e-9 {
		t.Fatalf("total_xg=%v want=2.9", got)
	}
	if got := summary.Average(FieldXG); got != 1 {
		t.Fatalf("avg_xg=%d want=1", got)
	}
	if got := summary.Total(FieldShots); got != 15 {
		t.Fatalf("total_shots=%v want=15", got)
	}
	if got := summary.Average(FieldShots); got != 8 {
		t.Fatalf("avg_shots=%d want=8", got)
	}
	if summary.WinPercentage != 100 {
		t.Fatalf("winPercentage=%d want=100", summary.WinPercentage)
	}
}
