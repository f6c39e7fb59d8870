package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/league"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
	leaguemock "github.com/riskibarqy/fantasy-lineup/internal/mocks/domain/league"
	playermock "github.com/riskibarqy/fantasy-lineup/internal/mocks/domain/player"
)

func TestRankingSource_CachesSheets(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := playermock.NewRankingSource(t)
	weekly := player.WeeklyRankings{Offense: []player.Record{{Name: "Josh Allen", Position: player.PositionQB, Rank: 1}}}
	ros := []player.Record{{Name: "Bijan Robinson", Position: player.PositionRB, Rank: 1}}

	next.On("WeeklyRankings", mock.Anything).Return(weekly, nil).Once()
	next.On("RestOfSeasonRankings", mock.Anything).Return(ros, nil).Once()
	next.On("DraftRankings", mock.Anything).Return(nil, errors.New("sheet missing")).Once()

	src := NewRankingSource(next, time.Minute)

	first, err := src.WeeklyRankings(ctx)
	require.NoError(t, err)
	first.Offense[0].Name = "mutated"

	second, err := src.WeeklyRankings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Josh Allen", second.Offense[0].Name)

	for i := 0; i < 2; i++ {
		got, err := src.RestOfSeasonRankings(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}

	_, err = src.DraftRankings(ctx)
	assert.Error(t, err)
}

func TestRankingSource_Invalidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := playermock.NewRankingSource(t)
	next.On("RestOfSeasonRankings", mock.Anything).Return([]player.Record{}, nil).Twice()

	src := NewRankingSource(next, time.Minute)
	_, err := src.RestOfSeasonRankings(ctx)
	require.NoError(t, err)

	src.Invalidate(ctx)
	_, err = src.RestOfSeasonRankings(ctx)
	require.NoError(t, err)
}

func TestLeagueSource_CachesSnapshots(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := leaguemock.NewSource(t)
	snapshot := league.Snapshot{
		LeagueID:     "L1",
		Rosters:      []league.Roster{league.NewRoster("u1", []string{"a", "b"})},
		Requirements: lineup.FromRosterPositions([]string{"QB", "RB"}),
	}

	next.On("GetSnapshot", mock.Anything, "L1").Return(snapshot, true, nil).Twice()
	next.On("GetSnapshot", mock.Anything, "missing").Return(league.Snapshot{}, false, nil).Once()
	next.On("ListLeagueIDs", mock.Anything).Return([]string{"L1"}, nil).Once()

	src := NewLeagueSource(next, time.Minute)

	got, ok, err := src.GetSnapshot(ctx, "L1")
	require.NoError(t, err)
	require.True(t, ok)
	got.Rosters[0].PlayerIDs[0] = "changed"

	again, ok, err := src.GetSnapshot(ctx, "L1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, again.Rosters[0].PlayerIDs)

	for i := 0; i < 2; i++ {
		_, ok, err = src.GetSnapshot(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	}

	ids, err := src.ListLeagueIDs(ctx)
	require.NoError(t, err)
	ids[0] = "changed"
	ids, err = src.ListLeagueIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"L1"}, ids)

	src.InvalidateLeague(ctx, "L1")
	_, _, err = src.GetSnapshot(ctx, "L1")
	require.NoError(t, err)
}
