package playerstats

import (
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/metric"
	"gopkg.in/guregu/null.v3"
)

// DeriveKeyStats returns the three highlight stats for a group and the field
// that drives the player's trend chart.
func DeriveKeyStats(rec Record, group PositionGroup) KeyStats {
	switch group {
	case GroupGoalkeeper:
		return KeyStats{
			KeyStats: [3]Stat{
				count("Saves", rec.Saves),
				percent("Save %", rec.SavePercentage),
				count("Clean Sheets", rec.CleanSheets),
			},
			ChartStat: ChartStat{Label: "Saves", DataKey: "saves"},
		}
	case GroupDefender:
		return KeyStats{
			KeyStats: [3]Stat{
				count("Tackles", rec.Tackles),
				count("Interceptions", rec.Interceptions),
				percent("Pass %", rec.PassCompletion),
			},
			ChartStat: ChartStat{Label: "Tackles", DataKey: "tackles"},
		}
	case GroupMidfielder:
		return KeyStats{
			KeyStats: [3]Stat{
				count("Goals", rec.Goals),
				count("Assists", rec.Assists),
				percent("Pass %", rec.PassCompletion),
			},
			ChartStat: ChartStat{Label: "Assists", DataKey: "assists"},
		}
	case GroupStriker:
		return KeyStats{
			KeyStats: [3]Stat{
				count("Goals", rec.Goals),
				count("Shots", rec.Shots),
				ratio("Shot Accuracy", rec.ShotsOnTarget, rec.Shots),
			},
			ChartStat: ChartStat{Label: "Goals", DataKey: "goals"},
		}
	default:
		return KeyStats{
			KeyStats: [3]Stat{
				count("Goals", rec.Goals),
				count("Assists", rec.Assists),
				count("Minutes", rec.MinutesPlayed),
			},
			ChartStat: ChartStat{Label: "Goals", DataKey: "goals"},
		}
	}
}

// DerivePositionStats returns the group-independent general table and the
// group-specific table, which is empty for GroupUnknown.
func DerivePositionStats(rec Record, group PositionGroup) PositionStats {
	return PositionStats{
		GeneralStats:  generalStats(rec),
		PositionStats: positionStats(rec, group),
	}
}

func generalStats(rec Record) [5]Stat {
	return [5]Stat{
		count("Goals", rec.Goals),
		count("Assists", rec.Assists),
		count("Yellow Cards", rec.YellowCards),
		count("Red Cards", rec.RedCards),
		count("Minutes Played", rec.MinutesPlayed),
	}
}

func positionStats(rec Record, group PositionGroup) []Stat {
	switch group {
	case GroupGoalkeeper:
		return []Stat{
			count("Saves", rec.Saves),
			count("Clean Sheets", rec.CleanSheets),
			percent("Save Percentage", rec.SavePercentage),
			count("Clearances", rec.Clearances),
		}
	case GroupDefender:
		return []Stat{
			count("Tackles", rec.Tackles),
			count("Interceptions", rec.Interceptions),
			count("Clearances", rec.Clearances),
			percent("Pass Completion", rec.PassCompletion),
		}
	case GroupMidfielder:
		return []Stat{
			count("Assists", rec.Assists),
			percent("Pass Completion", rec.PassCompletion),
			count("Dribbles Attempted", rec.DribblesAttempted),
			count("Dribbles Successful", rec.DribblesSuccessful),
			ratio("Dribble Success Rate", rec.DribblesSuccessful, rec.DribblesAttempted),
			count("Tackles", rec.Tackles),
			count("Offsides", rec.Offsides),
		}
	case GroupStriker:
		return []Stat{
			count("Shots", rec.Shots),
			count("Shots On Target", rec.ShotsOnTarget),
			ratio("Shot Accuracy", rec.ShotsOnTarget, rec.Shots),
			count("Dribbles Attempted", rec.DribblesAttempted),
			count("Dribbles Successful", rec.DribblesSuccessful),
			ratio("Dribble Success Rate", rec.DribblesSuccessful, rec.DribblesAttempted),
			count("Offsides", rec.Offsides),
		}
	default:
		return []Stat{}
	}
}

func count(label string, v null.Float) Stat {
	return Stat{Label: label, Value: metric.Round(v.ValueOrZero())}
}

// percent formats a stored percentage as-is.
func percent(label string, v null.Float) Stat {
	return Stat{Label: label, Value: metric.Percent(v.ValueOrZero())}
}

func ratio(label string, numerator, denominator null.Float) Stat {
	return Stat{Label: label, Value: metric.RatioPercent(numerator.ValueOrZero(), denominator.ValueOrZero())}
}
