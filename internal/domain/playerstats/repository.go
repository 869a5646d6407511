package playerstats

import "context"

// Repository describes player stat reads needed by use cases.
type Repository interface {
	GetByPlayer(ctx context.Context, playerID string) (RawRecord, bool, error)
	ListByPlayers(ctx context.Context, playerIDs []string) (map[string]RawRecord, error)
}
