package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/league"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
	basecache "github.com/riskibarqy/fantasy-lineup/internal/platform/cache"
)

type RankingSource struct {
	next    player.RankingSource
	weekly  *basecache.Store[player.WeeklyRankings]
	records *basecache.Store[[]player.Record]
}

func NewRankingSource(next player.RankingSource, ttl time.Duration) *RankingSource {
	return &RankingSource{
		next:    next,
		weekly:  basecache.NewStore[player.WeeklyRankings](ttl),
		records: basecache.NewStore[[]player.Record](ttl),
	}
}

func (r *RankingSource) WeeklyRankings(ctx context.Context) (player.WeeklyRankings, error) {
	v, err := r.weekly.GetOrLoad(ctx, "rankings:weekly", r.next.WeeklyRankings)
	if err != nil {
		return player.WeeklyRankings{}, err
	}
	return player.WeeklyRankings{
		Offense:  cloneRecords(v.Offense),
		Defenses: cloneRecords(v.Defenses),
		Kickers:  cloneRecords(v.Kickers),
	}, nil
}

func (r *RankingSource) RestOfSeasonRankings(ctx context.Context) ([]player.Record, error) {
	v, err := r.records.GetOrLoad(ctx, "rankings:ros", r.next.RestOfSeasonRankings)
	if err != nil {
		return nil, err
	}
	return cloneRecords(v), nil
}

func (r *RankingSource) DraftRankings(ctx context.Context) ([]player.Record, error) {
	v, err := r.records.GetOrLoad(ctx, "rankings:draft", r.next.DraftRankings)
	if err != nil {
		return nil, err
	}
	return cloneRecords(v), nil
}

// Invalidate drops every cached sheet so the next read reloads.
func (r *RankingSource) Invalidate(ctx context.Context) {
	r.weekly.DeletePrefix(ctx, "rankings:")
	r.records.DeletePrefix(ctx, "rankings:")
}

type LeagueSource struct {
	next  league.Source
	cache *basecache.Store[cachedSnapshot]
	ids   *basecache.Store[[]string]
}

func NewLeagueSource(next league.Source, ttl time.Duration) *LeagueSource {
	return &LeagueSource{
		next:  next,
		cache: basecache.NewStore[cachedSnapshot](ttl),
		ids:   basecache.NewStore[[]string](ttl),
	}
}

func (r *LeagueSource) GetSnapshot(ctx context.Context, leagueID string) (league.Snapshot, bool, error) {
	key := "league:snapshot:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (cachedSnapshot, error) {
		item, exists, err := r.next.GetSnapshot(ctx, leagueID)
		if err != nil {
			return cachedSnapshot{}, err
		}
		return cachedSnapshot{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.Snapshot{}, false, err
	}
	if !v.exists {
		return league.Snapshot{}, false, nil
	}
	return cloneSnapshot(v.value), true, nil
}

func (r *LeagueSource) ListLeagueIDs(ctx context.Context) ([]string, error) {
	v, err := r.ids.GetOrLoad(ctx, "league:list", r.next.ListLeagueIDs)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), v...), nil
}

// InvalidateLeague drops the cached snapshot for leagueID.
func (r *LeagueSource) InvalidateLeague(ctx context.Context, leagueID string) {
	r.cache.Delete(ctx, "league:snapshot:"+leagueID)
}

type cachedSnapshot struct {
	value  league.Snapshot
	exists bool
}

func cloneRecords(in []player.Record) []player.Record {
	if in == nil {
		return nil
	}
	return append([]player.Record(nil), in...)
}

func cloneSnapshot(in league.Snapshot) league.Snapshot {
	out := in
	out.Rosters = make([]league.Roster, 0, len(in.Rosters))
	for _, r := range in.Rosters {
		out.Rosters = append(out.Rosters, league.Roster{OwnerID: r.OwnerID, PlayerIDs: append([]string(nil), r.PlayerIDs...)})
	}
	out.Requirements = append(in.Requirements[:0:0], in.Requirements...)
	return out
}
