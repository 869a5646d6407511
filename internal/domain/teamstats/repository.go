package teamstats

import "context"

// RawRow is a match stat row as handed over by storage, before normalization.
type RawRow = map[string]any

// Repository describes match stat reads needed by use cases.
type Repository interface {
	ListRowsByTeam(ctx context.Context, teamID string, rng DateRange) ([]RawRow, error)
	ListRowsByTeams(ctx context.Context, teamIDs []string, rng DateRange) (map[string][]RawRow, error)
}
