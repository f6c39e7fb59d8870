package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/league"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
	leaguemock "github.com/riskibarqy/fantasy-lineup/internal/mocks/domain/league"
	playermock "github.com/riskibarqy/fantasy-lineup/internal/mocks/domain/player"
	"github.com/riskibarqy/fantasy-lineup/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type advisorFixture struct {
	rankings  *playermock.RankingSource
	directory *playermock.DirectorySource
	leagues   *leaguemock.Source
	service   *AdvisorService
}

func newAdvisorFixture(t *testing.T, withCache bool) advisorFixture {
	t.Helper()

	f := advisorFixture{
		rankings:  playermock.NewRankingSource(t),
		directory: playermock.NewDirectorySource(t),
		leagues:   leaguemock.NewSource(t),
	}
	opts := AdvisorOptions{MaxWorkers: 2}
	if withCache {
		opts.DirectoryCache = cache.NewStore[player.Directory](time.Minute)
	}
	f.service = NewAdvisorService(f.rankings, f.directory, f.leagues, NewEngine(nil, 0, 0, nil), opts)
	f.service.now = func() time.Time { return time.Date(2025, 10, 5, 17, 0, 0, 0, time.UTC) }
	return f
}

func TestAdvisorService_Report_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdvisorFixture(t, true)

	f.leagues.
		On("GetSnapshot", mock.Anything, testLeagueID).
		Return(testSnapshot(), true, nil).
		Once()
	f.directory.
		On("Directory", mock.Anything).
		Return(testLeagueDirectory(), nil).
		Once()
	f.rankings.On("WeeklyRankings", mock.Anything).Return(testWeeklyRankings(), nil).Once()
	f.rankings.On("RestOfSeasonRankings", mock.Anything).Return(testRestOfSeasonRankings(), nil).Once()

	got, err := f.service.Report(ctx, ReportRequest{LeagueID: " " + testLeagueID, OwnerID: testOwnerID})
	require.NoError(t, err)

	assert.Equal(t, testLeagueID, got.LeagueID)
	assert.Equal(t, testOwnerID, got.OwnerID)
	assert.Equal(t, 2025, got.GeneratedAt.Year())
	assert.Len(t, got.Lineup.Starters, 9)
	require.Len(t, got.Optimal.Upgrades, 1)
	assert.Equal(t, 6, got.Optimal.Upgrades[0].Improvement)
	assert.Len(t, got.RestOfSeason.PositionSwaps, 2)
}

func TestAdvisorService_Report_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("blank owner is invalid input", func(t *testing.T) {
		f := newAdvisorFixture(t, false)
		_, err := f.service.Report(ctx, ReportRequest{LeagueID: testLeagueID, OwnerID: "  "})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown league", func(t *testing.T) {
		f := newAdvisorFixture(t, false)
		f.leagues.On("GetSnapshot", mock.Anything, "missing").Return(league.Snapshot{}, false, nil).Once()

		_, err := f.service.Report(ctx, ReportRequest{LeagueID: "missing", OwnerID: testOwnerID})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("owner without roster", func(t *testing.T) {
		f := newAdvisorFixture(t, false)
		f.leagues.On("GetSnapshot", mock.Anything, testLeagueID).Return(testSnapshot(), true, nil).Once()

		_, err := f.service.Report(ctx, ReportRequest{LeagueID: testLeagueID, OwnerID: "stranger"})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("league source failure", func(t *testing.T) {
		f := newAdvisorFixture(t, false)
		f.leagues.On("GetSnapshot", mock.Anything, testLeagueID).Return(league.Snapshot{}, false, errors.New("timeout")).Once()

		_, err := f.service.Report(ctx, ReportRequest{LeagueID: testLeagueID, OwnerID: testOwnerID})
		if !errors.Is(err, ErrDependencyUnavailable) {
			t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
		}
	})

	t.Run("directory failure", func(t *testing.T) {
		f := newAdvisorFixture(t, true)
		f.leagues.On("GetSnapshot", mock.Anything, testLeagueID).Return(testSnapshot(), true, nil).Once()
		f.directory.On("Directory", mock.Anything).Return(nil, errors.New("503")).Once()

		_, err := f.service.Report(ctx, ReportRequest{LeagueID: testLeagueID, OwnerID: testOwnerID})
		if !errors.Is(err, ErrDependencyUnavailable) {
			t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
		}
		assert.Contains(t, err.Error(), "load player directory")
	})

	t.Run("rankings failure", func(t *testing.T) {
		f := newAdvisorFixture(t, false)
		f.leagues.On("GetSnapshot", mock.Anything, testLeagueID).Return(testSnapshot(), true, nil).Once()
		f.directory.On("Directory", mock.Anything).Return(testLeagueDirectory(), nil).Once()
		f.rankings.On("WeeklyRankings", mock.Anything).Return(player.WeeklyRankings{}, errors.New("sheet missing")).Once()

		_, err := f.service.Report(ctx, ReportRequest{LeagueID: testLeagueID, OwnerID: testOwnerID})
		if !errors.Is(err, ErrDependencyUnavailable) {
			t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
		}
	})
}

func TestAdvisorService_BatchReports(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdvisorFixture(t, true)

	f.leagues.On("GetSnapshot", mock.Anything, testLeagueID).Return(testSnapshot(), true, nil).Times(3)
	f.directory.On("Directory", mock.Anything).Return(testLeagueDirectory(), nil).Once()
	f.rankings.On("WeeklyRankings", mock.Anything).Return(testWeeklyRankings(), nil).Twice()
	f.rankings.On("RestOfSeasonRankings", mock.Anything).Return(testRestOfSeasonRankings(), nil).Twice()

	got, err := f.service.BatchReports(ctx, []ReportRequest{
		{LeagueID: testLeagueID, OwnerID: testOwnerID},
		{LeagueID: testLeagueID, OwnerID: "stranger"},
		{LeagueID: testLeagueID, OwnerID: rivalOwnerID},
	})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, batchStatusSuccess, got[0].Status)
	require.NotNil(t, got[0].Report)
	assert.Equal(t, batchStatusFailed, got[1].Status)
	assert.Contains(t, got[1].Message, "resource not found")
	assert.Nil(t, got[1].Report)
	assert.Equal(t, batchStatusSuccess, got[2].Status)
	assert.Equal(t, rivalOwnerID, got[2].Report.OwnerID)

	empty, err := f.service.BatchReports(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAdvisorService_OwnerReports(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdvisorFixture(t, true)

	f.leagues.On("ListLeagueIDs", mock.Anything).Return([]string{"other-league", testLeagueID}, nil).Once()
	f.leagues.On("GetSnapshot", mock.Anything, testLeagueID).Return(testSnapshot(), true, nil).Once()
	f.leagues.On("GetSnapshot", mock.Anything, "other-league").Return(league.Snapshot{}, false, nil).Once()
	f.directory.On("Directory", mock.Anything).Return(testLeagueDirectory(), nil).Once()
	f.rankings.On("WeeklyRankings", mock.Anything).Return(testWeeklyRankings(), nil).Once()
	f.rankings.On("RestOfSeasonRankings", mock.Anything).Return(testRestOfSeasonRankings(), nil).Once()

	got, err := f.service.OwnerReports(ctx, testOwnerID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "league-2025", got[0].LeagueID)
	assert.Equal(t, batchStatusSuccess, got[0].Status)
	assert.Equal(t, batchStatusFailed, got[1].Status)

	_, err = f.service.OwnerReports(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdvisorService_DraftBoard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newAdvisorFixture(t, false)

	f.leagues.On("GetSnapshot", mock.Anything, testLeagueID).Return(testSnapshot(), true, nil).Once()
	f.directory.On("Directory", mock.Anything).Return(draftDirectory(), nil).Once()
	f.rankings.On("DraftRankings", mock.Anything).Return(draftRecords(), nil).Once()

	got, err := f.service.DraftBoard(ctx, testLeagueID)
	require.NoError(t, err)

	// Rostered on the sheet: Chase, Bijan, Allen, Goff, Wilson.
	assert.Equal(t, 5, got.DraftedCount)
	require.NotEmpty(t, got.TopAvailable)
	assert.Equal(t, "De'Von Achane", got.TopAvailable[0].Name)
	assert.Empty(t, got.TopByPosition[player.PositionTE])
	assert.Len(t, got.TopByPosition[player.PositionQB], 1)
	assert.NotEmpty(t, got.UnmatchedDrafted)

	_, err = f.service.DraftBoard(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
