package httpapi

import (
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/playerstats"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/team"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/teamstats"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/usecase"
	"github.com/samber/lo"
)

type teamDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Short string `json:"short,omitempty"`
}

type teamComparisonDTO struct {
	Team    teamDTO        `json:"team"`
	HasData bool           `json:"hasData"`
	Summary map[string]any `json:"summary"`
}

type chartStatDTO struct {
	Label   string `json:"label"`
	DataKey string `json:"dataKey"`
}

type statCardDTO struct {
	PlayerID        string             `json:"playerId"`
	TeamID          string             `json:"teamId"`
	Name            string             `json:"name"`
	Position        string             `json:"position"`
	JerseyNumber    int                `json:"jerseyNumber,omitempty"`
	PositionGroup   string             `json:"positionGroup"`
	HasStats        bool               `json:"hasStats"`
	KeyStats        []playerstats.Stat `json:"keyStats"`
	ChartStat       chartStatDTO       `json:"chartStat"`
	GeneralStats    []playerstats.Stat `json:"generalStats"`
	PositionStats   []playerstats.Stat `json:"positionStats"`
	PerformanceData []map[string]any   `json:"performanceData"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{ID: t.ID, Name: t.Name, Short: t.Short}
}

// summaryToMap flattens a summary into the dashboard shape. An empty summary
// (ok=false) becomes an empty object.
func summaryToMap(summary teamstats.TeamSummary, ok bool) map[string]any {
	if !ok {
		return map[string]any{}
	}

	out := map[string]any{
		"totalMatches":   summary.TotalMatches,
		"goalsFor":       summary.GoalsFor,
		"goalsAgainst":   summary.GoalsAgainst,
		"goalDifference": summary.GoalDifference,
		"wins":           summary.Wins,
		"losses":         summary.Losses,
		"draws":          summary.Draws,
		"winPercentage":  summary.WinPercentage,
		"form":           formToStrings(summary.Form),
	}
	for _, field := range teamstats.RateFields {
		out["avg_"+string(field)] = summary.Average(field)
		out["total_"+string(field)] = summary.Total(field)
	}

	return out
}

func formToStrings(form []teamstats.Outcome) []string {
	return lo.Map(form, func(o teamstats.Outcome, _ int) string { return string(o) })
}

func comparisonToDTO(item usecase.TeamComparison) teamComparisonDTO {
	return teamComparisonDTO{
		Team:    teamToDTO(item.Team),
		HasData: item.HasData,
		Summary: summaryToMap(item.Summary, item.HasData),
	}
}

func statCardToDTO(card usecase.StatCard) statCardDTO {
	performance := make([]map[string]any, 0, len(card.PerformanceData))
	for _, point := range card.PerformanceData {
		row := make(map[string]any, len(point.Values)+1)
		for k, v := range point.Values {
			row[k] = v
		}
		row["period"] = point.Period
		performance = append(performance, row)
	}

	positionStats := card.PositionStats.PositionStats
	if positionStats == nil {
		positionStats = []playerstats.Stat{}
	}

	return statCardDTO{
		PlayerID:        card.Player.ID,
		TeamID:          card.Player.TeamID,
		Name:            card.Player.Name,
		Position:        card.Player.Position,
		JerseyNumber:    card.Player.JerseyNumber,
		PositionGroup:   string(card.Group),
		HasStats:        card.HasStats,
		KeyStats:        card.KeyStats.KeyStats[:],
		ChartStat:       chartStatDTO{Label: card.KeyStats.ChartStat.Label, DataKey: card.KeyStats.ChartStat.DataKey},
		GeneralStats:    card.PositionStats.GeneralStats[:],
		PositionStats:   positionStats,
		PerformanceData: performance,
	}
}
