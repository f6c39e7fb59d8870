package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
)

func TestLoadSeed(t *testing.T) {
	t.Parallel()

	seed, err := LoadSeed()
	require.NoError(t, err)

	assert.Len(t, seed.Directory, 24)
	assert.Len(t, seed.Directory.ByPosition(player.PositionDEF), 4)
	assert.Equal(t, "Buffalo Bills", seed.Directory["BUF"].DisplayName())

	require.Len(t, seed.Leagues, 1)
	demo := seed.Leagues[0]
	assert.Equal(t, DemoLeagueID, demo.LeagueID)
	assert.Equal(t, 2, demo.Requirements.Count(lineup.SlotRB))
	assert.Equal(t, 1, demo.Requirements.Count(lineup.SlotFlex))

	mine, ok := demo.RosterFor(DemoOwnerID)
	require.True(t, ok)
	assert.Len(t, mine.PlayerIDs, 10)
	_, ok = demo.RosterFor("roster:3")
	assert.True(t, ok, "orphaned roster is kept")

	assert.Len(t, seed.Weekly.Offense, 17)
	assert.Len(t, seed.Weekly.Defenses, 4)
	assert.Len(t, seed.Weekly.Kickers, 3)
	assert.Equal(t, 1, seed.Weekly.Offense[0].Rank)
	assert.Equal(t, "Josh Allen", seed.Weekly.Offense[0].Name)

	assert.Len(t, seed.RestOfSeason, 17)
	assert.Equal(t, 30, seed.RestOfSeason[len(seed.RestOfSeason)-1].Rank)

	require.Len(t, seed.Draft, 20)
	assert.Equal(t, player.PositionDEF, seed.Draft[19].Position)
	assert.Equal(t, "3/5", seed.Draft[0].StrengthOfSchedule)
	assert.Equal(t, 10, seed.Draft[5].ECRvsADP)
}

func TestNewSeededSources(t *testing.T) {
	t.Parallel()

	dir, rankings, leagues, err := NewSeededSources()
	require.NoError(t, err)
	require.NotNil(t, dir)
	require.NotNil(t, rankings)

	ids, err := leagues.ListLeagueIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{DemoLeagueID}, ids)
}
