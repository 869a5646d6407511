package playerstats

import "gopkg.in/guregu/null.v3"

// Record holds a player's cumulative counters after normalization.
type Record struct {
	Goals              null.Float
	Assists            null.Float
	YellowCards        null.Float
	RedCards           null.Float
	MinutesPlayed      null.Float
	Saves              null.Float
	SavePercentage     null.Float
	CleanSheets        null.Float
	Tackles            null.Float
	Interceptions      null.Float
	Clearances         null.Float
	PassCompletion     null.Float
	Shots              null.Float
	ShotsOnTarget      null.Float
	ChancesCreated     null.Float
	DribblesAttempted  null.Float
	DribblesSuccessful null.Float
	Offsides           null.Float
	PerformanceData    []PerformancePoint
}

// PerformancePoint is one charting period. Values is keyed by raw field name
// (goals, assists, saves, tackles, ...) and only carries recorded numbers.
type PerformancePoint struct {
	Period string
	Values map[string]float64
}

// Stat is a display pair. Value is an int count or a formatted percentage.
type Stat struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// ChartStat names the raw field that drives a player's trend chart.
type ChartStat struct {
	Label   string `json:"label"`
	DataKey string `json:"dataKey"`
}

type KeyStats struct {
	KeyStats  [3]Stat
	ChartStat ChartStat
}

type PositionStats struct {
	GeneralStats  [5]Stat
	PositionStats []Stat
}
