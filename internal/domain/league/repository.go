package league

import "context"

// Source describes how use cases read league state from the roster platform.
type Source interface {
	GetSnapshot(ctx context.Context, leagueID string) (Snapshot, bool, error)
	ListLeagueIDs(ctx context.Context) ([]string, error)
}
