package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/identity"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/league"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
	"github.com/riskibarqy/fantasy-lineup/internal/platform/cache"
	"github.com/riskibarqy/fantasy-lineup/internal/platform/logging"
)

const (
	directoryCacheKey       = "directory:nfl"
	defaultBatchMaxWorkers  = 4
	batchStatusSuccess      = "success"
	batchStatusFailed       = "failed"
	draftBoardPositionLimit = 3
	draftBoardOverallLimit  = 5
)

// Engine bundles the analysis components sharing one resolver.
type Engine struct {
	Resolver     *identity.Resolver
	Analyzer     *LineupAnalyzer
	Optimal      *OptimalLineupComputer
	RestOfSeason *RestOfSeasonRecommender
}

func NewEngine(resolver *identity.Resolver, waiverLimit, freeAgentLimit int, logger *logging.Logger) Engine {
	if resolver == nil {
		resolver = identity.NewResolver(identity.DefaultThresholds(), nil)
	}
	if logger == nil {
		logger = logging.Default()
	}
	analyzer := NewLineupAnalyzer(resolver, waiverLimit, logger.Named("lineup"))
	return Engine{
		Resolver:     resolver,
		Analyzer:     analyzer,
		Optimal:      NewOptimalLineupComputer(analyzer, freeAgentLimit, logger.Named("optimal")),
		RestOfSeason: NewRestOfSeasonRecommender(resolver, logger.Named("ros")),
	}
}

type ReportRequest struct {
	LeagueID string `json:"league_id" validate:"required"`
	OwnerID  string `json:"owner_id" validate:"required"`
}

// Report is the full advice for one owner in one league.
type Report struct {
	LeagueID     string            `json:"league_id"`
	OwnerID      string            `json:"owner_id"`
	GeneratedAt  time.Time         `json:"generated_at"`
	Lineup       LineupAnalysis    `json:"lineup"`
	Optimal      OptimalAnalysis   `json:"optimal"`
	RestOfSeason RosRecommendation `json:"rest_of_season"`
}

type BatchReportResult struct {
	LeagueID   string  `json:"league_id"`
	OwnerID    string  `json:"owner_id"`
	Status     string  `json:"status"`
	DurationMs int64   `json:"duration_ms"`
	Message    string  `json:"message,omitempty"`
	Report     *Report `json:"report,omitempty"`
}

// DraftSummary is a draft board view for one league.
type DraftSummary struct {
	LeagueID         string                             `json:"league_id"`
	DraftedCount     int                                `json:"drafted_count"`
	TopAvailable     []player.Record                    `json:"top_available"`
	TopByPosition    map[player.Position][]player.Record `json:"top_by_position"`
	UnmatchedDrafted []player.Canonical                 `json:"unmatched_drafted,omitempty"`
	Resolution       identity.Stats                     `json:"resolution"`
}

type AdvisorOptions struct {
	// DirectoryCache is optional; nil loads the directory on every request.
	DirectoryCache *cache.Store[player.Directory]
	MaxWorkers     int
	Logger         *logging.Logger
}

type AdvisorService struct {
	rankings       player.RankingSource
	directory      player.DirectorySource
	leagues        league.Source
	engine         Engine
	directoryCache *cache.Store[player.Directory]
	maxWorkers     int
	validator      *validator.Validate
	logger         *logging.Logger
	now            func() time.Time
}

func NewAdvisorService(
	rankings player.RankingSource,
	directory player.DirectorySource,
	leagues league.Source,
	engine Engine,
	opts AdvisorOptions,
) *AdvisorService {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = defaultBatchMaxWorkers
	}
	if engine.Analyzer == nil {
		engine = NewEngine(engine.Resolver, 0, 0, logger)
	}
	return &AdvisorService{
		rankings:       rankings,
		directory:      directory,
		leagues:        leagues,
		engine:         engine,
		directoryCache: opts.DirectoryCache,
		maxWorkers:     workers,
		validator:      validator.New(),
		logger:         logger,
		now:            time.Now,
	}
}

// Report loads league state, rankings and the directory, then runs the weekly,
// optimal and rest-of-season analyses side by side.
func (s *AdvisorService) Report(ctx context.Context, req ReportRequest) (Report, error) {
	req.LeagueID = strings.TrimSpace(req.LeagueID)
	req.OwnerID = strings.TrimSpace(req.OwnerID)

	ctx, span := startUsecaseSpan(ctx, "usecase.AdvisorService.Report",
		attribute.String("league_id", req.LeagueID),
		attribute.String("owner_id", req.OwnerID),
	)
	defer span.End()

	if err := s.validator.StructCtx(ctx, req); err != nil {
		return Report{}, fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}

	snapshot, err := s.loadSnapshot(ctx, req.LeagueID)
	if err != nil {
		return Report{}, err
	}
	roster, ok := snapshot.RosterFor(req.OwnerID)
	if !ok {
		return Report{}, fmt.Errorf("%w: owner=%s league=%s", ErrNotFound, req.OwnerID, req.LeagueID)
	}

	directory, err := s.loadDirectory(ctx)
	if err != nil {
		return Report{}, err
	}
	weekly, err := s.rankings.WeeklyRankings(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("%w: load weekly rankings: %w", ErrDependencyUnavailable, err)
	}
	seasonal, err := s.rankings.RestOfSeasonRankings(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("%w: load rest of season rankings: %w", ErrDependencyUnavailable, err)
	}

	ownership := snapshot.Ownership()
	lineupIn := LineupInput{
		Rankings:     weekly,
		Roster:       roster,
		Directory:    directory,
		Requirements: snapshot.Requirements,
		Ownership:    ownership,
	}
	rosIn := RosInput{
		Roster:    roster,
		Directory: directory,
		Ownership: ownership,
		Rankings:  seasonal,
	}

	report := Report{
		LeagueID:    req.LeagueID,
		OwnerID:     req.OwnerID,
		GeneratedAt: s.now().UTC(),
	}

	// Each analysis writes only its own field and reads shared inputs.
	var wg conc.WaitGroup
	wg.Go(func() { report.Lineup = s.engine.Analyzer.Analyze(lineupIn) })
	wg.Go(func() { report.Optimal = s.engine.Optimal.ComputeOptimal(lineupIn) })
	wg.Go(func() { report.RestOfSeason = s.engine.RestOfSeason.Recommend(rosIn) })
	if recovered := wg.WaitAndRecover(); recovered != nil {
		err := crerr.Wrapf(recovered.AsError(), "analyze league=%s owner=%s", req.LeagueID, req.OwnerID)
		s.logger.ErrorContext(ctx, "analysis panicked", "league_id", req.LeagueID, "owner_id", req.OwnerID, "error", err)
		return Report{}, err
	}

	s.logger.InfoContext(ctx, "report generated",
		"league_id", req.LeagueID,
		"owner_id", req.OwnerID,
		"starters", len(report.Lineup.Starters),
		"upgrades", len(report.Optimal.Upgrades),
		"position_swaps", len(report.RestOfSeason.PositionSwaps),
	)
	return report, nil
}

// BatchReports runs Report for each request on a bounded worker pool. A failed
// request is reported on its own row and does not stop the others.
func (s *AdvisorService) BatchReports(ctx context.Context, reqs []ReportRequest) ([]BatchReportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdvisorService.BatchReports", attribute.Int("requests", len(reqs)))
	defer span.End()

	if len(reqs) == 0 {
		return nil, nil
	}

	workerCount := s.maxWorkers
	if workerCount > len(reqs) {
		workerCount = len(reqs)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]BatchReportResult, len(reqs))
	var workers sync.WaitGroup
	for i, req := range reqs {
		i, req := i, req
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := BatchReportResult{LeagueID: req.LeagueID, OwnerID: req.OwnerID, Status: batchStatusSuccess}
			report, err := s.Report(ctx, req)
			if err != nil {
				row.Status = batchStatusFailed
				row.Message = err.Error()
				s.logger.WarnContext(ctx, "batch report failed", "league_id", req.LeagueID, "owner_id", req.OwnerID, "error", err)
			} else {
				row.Report = &report
			}
			row.DurationMs = time.Since(start).Milliseconds()
			results[i] = row
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit report to worker pool: %w", err)
		}
	}
	workers.Wait()

	return results, nil
}

// OwnerReports builds a report for ownerID in every known league.
func (s *AdvisorService) OwnerReports(ctx context.Context, ownerID string) ([]BatchReportResult, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}

	leagueIDs, err := s.leagues.ListLeagueIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list leagues: %w", ErrDependencyUnavailable, err)
	}
	sort.Strings(leagueIDs)

	reqs := make([]ReportRequest, 0, len(leagueIDs))
	for _, id := range leagueIDs {
		reqs = append(reqs, ReportRequest{LeagueID: id, OwnerID: ownerID})
	}
	return s.BatchReports(ctx, reqs)
}

// DraftBoard marks every rostered player in the league as drafted on the
// season draft sheet and summarizes what is left.
func (s *AdvisorService) DraftBoard(ctx context.Context, leagueID string) (DraftSummary, error) {
	leagueID = strings.TrimSpace(leagueID)
	ctx, span := startUsecaseSpan(ctx, "usecase.AdvisorService.DraftBoard", attribute.String("league_id", leagueID))
	defer span.End()

	if leagueID == "" {
		return DraftSummary{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	snapshot, err := s.loadSnapshot(ctx, leagueID)
	if err != nil {
		return DraftSummary{}, err
	}
	directory, err := s.loadDirectory(ctx)
	if err != nil {
		return DraftSummary{}, err
	}
	records, err := s.rankings.DraftRankings(ctx)
	if err != nil {
		return DraftSummary{}, fmt.Errorf("%w: load draft rankings: %w", ErrDependencyUnavailable, err)
	}

	draftedIDs := make([]string, 0)
	for id := range snapshot.Ownership() {
		draftedIDs = append(draftedIDs, id)
	}
	sort.Strings(draftedIDs)

	board := NewDraftBoard(records, directory, s.engine.Resolver)
	summary := DraftSummary{
		LeagueID:      leagueID,
		DraftedCount:  board.ApplyDrafted(draftedIDs),
		TopAvailable:  board.TopAvailable(draftBoardOverallLimit),
		TopByPosition: make(map[player.Position][]player.Record, len(player.OffensivePositions)),
		Resolution:    board.Stats(),
	}
	for _, pos := range []player.Position{player.PositionQB, player.PositionRB, player.PositionWR, player.PositionTE, player.PositionK, player.PositionDEF} {
		summary.TopByPosition[pos] = board.TopByPosition(pos, draftBoardPositionLimit)
	}
	summary.UnmatchedDrafted = board.UnmatchedDrafted(draftedIDs)
	return summary, nil
}

func (s *AdvisorService) loadSnapshot(ctx context.Context, leagueID string) (league.Snapshot, error) {
	snapshot, ok, err := s.leagues.GetSnapshot(ctx, leagueID)
	if err != nil {
		return league.Snapshot{}, fmt.Errorf("%w: load league=%s: %w", ErrDependencyUnavailable, leagueID, err)
	}
	if !ok {
		return league.Snapshot{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	return snapshot, nil
}

func (s *AdvisorService) loadDirectory(ctx context.Context) (player.Directory, error) {
	load := func(ctx context.Context) (player.Directory, error) {
		dir, err := s.directory.Directory(ctx)
		if err != nil {
			return nil, crerr.Wrap(err, "load player directory")
		}
		return dir, nil
	}

	var (
		dir player.Directory
		err error
	)
	if s.directoryCache != nil {
		dir, err = s.directoryCache.GetOrLoad(ctx, directoryCacheKey, load)
	} else {
		dir, err = load(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
	}
	return dir, nil
}
