package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
)

// DirectoryRepository serves a fixed player directory.
type DirectoryRepository struct {
	mu  sync.RWMutex
	dir player.Directory
}

func NewDirectoryRepository(dir player.Directory) *DirectoryRepository {
	return &DirectoryRepository{dir: maps.Clone(dir)}
}

func (r *DirectoryRepository) Directory(_ context.Context) (player.Directory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(player.Directory, len(r.dir))
	maps.Copy(out, r.dir)
	return out, nil
}

func (r *DirectoryRepository) Replace(dir player.Directory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dir = maps.Clone(dir)
}

type RankingRepository struct {
	mu     sync.RWMutex
	weekly player.WeeklyRankings
	ros    []player.Record
	draft  []player.Record
}

func NewRankingRepository(weekly player.WeeklyRankings, ros, draft []player.Record) *RankingRepository {
	r := &RankingRepository{}
	r.SetWeekly(weekly)
	r.SetRestOfSeason(ros)
	r.SetDraft(draft)
	return r
}

func (r *RankingRepository) WeeklyRankings(_ context.Context) (player.WeeklyRankings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return player.WeeklyRankings{
		Offense:  cloneRecords(r.weekly.Offense),
		Defenses: cloneRecords(r.weekly.Defenses),
		Kickers:  cloneRecords(r.weekly.Kickers),
	}, nil
}

func (r *RankingRepository) RestOfSeasonRankings(_ context.Context) ([]player.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneRecords(r.ros), nil
}

func (r *RankingRepository) DraftRankings(_ context.Context) ([]player.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneRecords(r.draft), nil
}

func (r *RankingRepository) SetWeekly(weekly player.WeeklyRankings) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.weekly = player.WeeklyRankings{
		Offense:  cloneRecords(weekly.Offense),
		Defenses: cloneRecords(weekly.Defenses),
		Kickers:  cloneRecords(weekly.Kickers),
	}
}

func (r *RankingRepository) SetRestOfSeason(records []player.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ros = cloneRecords(records)
}

func (r *RankingRepository) SetDraft(records []player.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.draft = cloneRecords(records)
}

func cloneRecords(in []player.Record) []player.Record {
	return append([]player.Record(nil), in...)
}
