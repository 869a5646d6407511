package teamstats

import (
	"sort"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/metric"
)

// DefaultFormLength is how many recent outcomes Form carries.
const DefaultFormLength = 5

type aggregateOptions struct {
	rng        DateRange
	formLength int
}

type Option func(*aggregateOptions)

// WithRange keeps only rows played within rng.
func WithRange(rng DateRange) Option {
	return func(o *aggregateOptions) {
		o.rng = rng
	}
}

// WithFormLength overrides DefaultFormLength; non-positive values are ignored.
func WithFormLength(n int) Option {
	return func(o *aggregateOptions) {
		if n > 0 {
			o.formLength = n
		}
	}
}

// AggregateTeamSummary folds a team's match rows into a TeamSummary. It
// reports false when no row survives the range filter, which callers must
// keep apart from a summary whose numbers are all zero.
func AggregateTeamSummary(rows []MatchStatRow, opts ...Option) (TeamSummary, bool) {
	cfg := aggregateOptions{formLength: DefaultFormLength}
	for _, opt := range opts {
		opt(&cfg)
	}

	matches := make([]MatchStatRow, 0, len(rows))
	for _, row := range rows {
		if cfg.rng.Contains(row.PlayedAt) {
			matches = append(matches, row)
		}
	}
	if len(matches) == 0 {
		return TeamSummary{}, false
	}

	summary := TeamSummary{
		TotalMatches: len(matches),
		Averages:     make(map[Field]int, len(RateFields)),
		Totals:       make(map[Field]float64, len(RateFields)),
	}
	counts := make(map[Field]int, len(RateFields))

	for _, row := range matches {
		summary.GoalsFor += int(row.TeamScore.ValueOrZero())
		summary.GoalsAgainst += int(row.OpponentScore.ValueOrZero())

		switch row.Outcome() {
		case OutcomeWin:
			summary.Wins++
		case OutcomeLoss:
			summary.Losses++
		default:
			summary.Draws++
		}

		for _, f := range RateFields {
			v := row.Value(f)
			if !v.Valid {
				continue
			}
			summary.Totals[f] += v.Float64
			counts[f]++
		}
	}

	summary.GoalDifference = summary.GoalsFor - summary.GoalsAgainst
	summary.WinPercentage = metric.Ratio(float64(summary.Wins), float64(summary.TotalMatches))
	for _, f := range RateFields {
		summary.Averages[f] = metric.Average(summary.Totals[f], counts[f])
		if _, ok := summary.Totals[f]; !ok {
			summary.Totals[f] = 0
		}
	}
	summary.Form = recentForm(matches, cfg.formLength)

	return summary, true
}

// recentForm sorts a copy of rows newest first and returns up to n outcomes.
func recentForm(rows []MatchStatRow, n int) []Outcome {
	ordered := append([]MatchStatRow(nil), rows...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PlayedAt.After(ordered[j].PlayedAt)
	})

	if n > len(ordered) {
		n = len(ordered)
	}
	out := make([]Outcome, 0, n)
	for _, row := range ordered[:n] {
		out = append(out, row.Outcome())
	}
	return out
}
