package playerstats

// PositionGroup is the tactical role that selects which metrics apply.
type PositionGroup string

const (
	GroupGoalkeeper PositionGroup = "GOALKEEPER"
	GroupDefender   PositionGroup = "DEFENDER"
	GroupMidfielder PositionGroup = "MIDFIELDER"
	GroupStriker    PositionGroup = "STRIKER"
	GroupUnknown    PositionGroup = "UNKNOWN"
)

var positionGroups = map[string]PositionGroup{
	"GK": GroupGoalkeeper,

	"CB":  GroupDefender,
	"RB":  GroupDefender,
	"LB":  GroupDefender,
	"RWB": GroupDefender,
	"LWB": GroupDefender,

	"CDM": GroupMidfielder,
	"CM":  GroupMidfielder,
	"CAM": GroupMidfielder,
	"LM":  GroupMidfielder,
	"RM":  GroupMidfielder,

	"ST": GroupStriker,
	"CF": GroupStriker,
	"LW": GroupStriker,
	"RW": GroupStriker,
}

// ClassifyPosition maps a position code to its group by exact,
// case-sensitive match. Unlisted codes, including "", are GroupUnknown.
func ClassifyPosition(code string) PositionGroup {
	if group, ok := positionGroups[code]; ok {
		return group
	}
	return GroupUnknown
}
