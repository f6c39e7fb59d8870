package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/league"
)

type LeagueRepository struct {
	mu     sync.RWMutex
	items  map[string]league.Snapshot
	orders []string
}

func NewLeagueRepository(snapshots []league.Snapshot) *LeagueRepository {
	r := &LeagueRepository{items: make(map[string]league.Snapshot, len(snapshots))}
	for _, s := range snapshots {
		r.put(s)
	}
	return r
}

func (r *LeagueRepository) GetSnapshot(_ context.Context, leagueID string) (league.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[leagueID]
	if !ok {
		return league.Snapshot{}, false, nil
	}
	return cloneSnapshot(s), true, nil
}

func (r *LeagueRepository) ListLeagueIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.orders...), nil
}

// Upsert stores snapshot, replacing any league with the same id.
func (r *LeagueRepository) Upsert(_ context.Context, snapshot league.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	r.put(snapshot)
	return nil
}

func (r *LeagueRepository) put(s league.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[s.LeagueID]; !ok {
		r.orders = append(r.orders, s.LeagueID)
	}
	r.items[s.LeagueID] = cloneSnapshot(s)
}

func cloneSnapshot(in league.Snapshot) league.Snapshot {
	out := in
	out.Rosters = make([]league.Roster, 0, len(in.Rosters))
	for _, roster := range in.Rosters {
		out.Rosters = append(out.Rosters, league.Roster{
			OwnerID:   roster.OwnerID,
			PlayerIDs: append([]string(nil), roster.PlayerIDs...),
		})
	}
	out.Requirements = append(in.Requirements[:0:0], in.Requirements...)
	return out
}
