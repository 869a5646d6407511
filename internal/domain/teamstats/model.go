package teamstats

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

// Field names a per-match rate or volume column.
type Field string

const (
	FieldPossession    Field = "possession"
	FieldPassAccuracy  Field = "pass_accuracy"
	FieldShots         Field = "shots"
	FieldShotsOnTarget Field = "shots_on_target"
	FieldCorners       Field = "corners"
	FieldFouls         Field = "fouls"
	FieldOffsides      Field = "offsides"
	FieldXG            Field = "xg"
	FieldPasses        Field = "passes"
	FieldTackles       Field = "tackles"
	FieldSaves         Field = "saves"
)

// RateFields lists every optional column in display order.
var RateFields = []Field{
	FieldPossession,
	FieldPassAccuracy,
	FieldShots,
	FieldShotsOnTarget,
	FieldCorners,
	FieldFouls,
	FieldOffsides,
	FieldXG,
	FieldPasses,
	FieldTackles,
	FieldSaves,
}

// MatchStatRow is one team's recorded numbers for one match. An invalid
// optional field means "not recorded", which is not the same as zero.
type MatchStatRow struct {
	MatchID       string
	TeamID        string
	PlayedAt      time.Time
	TeamScore     null.Int
	OpponentScore null.Int
	Possession    null.Float
	PassAccuracy  null.Float
	Shots         null.Float
	ShotsOnTarget null.Float
	Corners       null.Float
	Fouls         null.Float
	Offsides      null.Float
	XG            null.Float
	Passes        null.Float
	Tackles       null.Float
	Saves         null.Float
}

func (r MatchStatRow) Value(f Field) null.Float {
	switch f {
	case FieldPossession:
		return r.Possession
	case FieldPassAccuracy:
		return r.PassAccuracy
	case FieldShots:
		return r.Shots
	case FieldShotsOnTarget:
		return r.ShotsOnTarget
	case FieldCorners:
		return r.Corners
	case FieldFouls:
		return r.Fouls
	case FieldOffsides:
		return r.Offsides
	case FieldXG:
		return r.XG
	case FieldPasses:
		return r.Passes
	case FieldTackles:
		return r.Tackles
	case FieldSaves:
		return r.Saves
	default:
		return null.Float{}
	}
}

// Outcome is a match result from the team's point of view.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeDraw Outcome = "D"
	OutcomeLoss Outcome = "L"
)

// Outcome compares the scores; an unrecorded score counts as zero.
func (r MatchStatRow) Outcome() Outcome {
	teamScore := r.TeamScore.ValueOrZero()
	opponentScore := r.OpponentScore.ValueOrZero()
	switch {
	case teamScore > opponentScore:
		return OutcomeWin
	case teamScore < opponentScore:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// DateRange is an inclusive calendar-date window. A zero bound is open.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) IsOpen() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether t falls on or between the bounds. Rows without a
// date only match an open range.
func (r DateRange) Contains(t time.Time) bool {
	if r.IsOpen() {
		return true
	}
	if t.IsZero() {
		return false
	}
	day := truncateDay(t)
	if !r.Start.IsZero() && day.Before(truncateDay(r.Start)) {
		return false
	}
	if !r.End.IsZero() && day.After(truncateDay(r.End)) {
		return false
	}
	return true
}

// Key is a stable cache key fragment for the range.
func (r DateRange) Key() string {
	return formatDay(r.Start) + ".." + formatDay(r.End)
}

// TeamSummary is the aggregate over a team's matches. Averages and Totals are
// keyed by every entry of RateFields.
type TeamSummary struct {
	TotalMatches   int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Wins           int
	Losses         int
	Draws          int
	WinPercentage  int
	Form           []Outcome
	Averages       map[Field]int
	Totals         map[Field]float64
}

func (s TeamSummary) Average(f Field) int {
	return s.Averages[f]
}

func (s TeamSummary) Total(f Field) float64 {
	return s.Totals[f]
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
