package player

import "context"

// DirectorySource provides the roster platform's player directory.
type DirectorySource interface {
	Directory(ctx context.Context) (Directory, error)
}

// RankingSource provides ranked sheets from the ranking provider.
type RankingSource interface {
	WeeklyRankings(ctx context.Context) (WeeklyRankings, error)
	RestOfSeasonRankings(ctx context.Context) ([]Record, error)
	DraftRankings(ctx context.Context) ([]Record, error)
}
