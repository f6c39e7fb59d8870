package app

import (
	"fmt"

	"github.com/riskibarqy/fantasy-lineup/internal/config"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/identity"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/league"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
	repocache "github.com/riskibarqy/fantasy-lineup/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-lineup/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-lineup/internal/platform/cache"
	"github.com/riskibarqy/fantasy-lineup/internal/platform/logging"
	"github.com/riskibarqy/fantasy-lineup/internal/usecase"
)

// App holds the wired advisor and the stores behind it.
type App struct {
	Config   config.Config
	Logger   *logging.Logger
	Engine   usecase.Engine
	Advisor  *usecase.AdvisorService
	Leagues  *memory.LeagueRepository
	Rankings *memory.RankingRepository
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	directoryRepo, rankingRepo, leagueRepo, err := memory.NewSeededSources()
	if err != nil {
		return nil, fmt.Errorf("load seed data: %w", err)
	}

	resolver := identity.NewResolver(identity.Thresholds{
		FullName:   cfg.MatchNameThreshold,
		FirstToken: cfg.MatchFirstTokenThreshold,
	}, identity.IndelScorer{})
	engine := usecase.NewEngine(resolver, cfg.WaiverSuggestionLimit, cfg.FreeAgentDisplayLimit, logger)

	var (
		rankings  player.RankingSource = rankingRepo
		leagues   league.Source        = leagueRepo
		dirCache  *cache.Store[player.Directory]
		cacheNote = "disabled"
	)
	if cfg.DirectoryCacheEnabled {
		dirCache = cache.NewStore[player.Directory](cfg.DirectoryCacheTTL)
		rankings = repocache.NewRankingSource(rankingRepo, cfg.DirectoryCacheTTL)
		leagues = repocache.NewLeagueSource(leagueRepo, cfg.DirectoryCacheTTL)
		cacheNote = cfg.DirectoryCacheTTL.String()
	}

	advisor := usecase.NewAdvisorService(rankings, directoryRepo, leagues, engine, usecase.AdvisorOptions{
		DirectoryCache: dirCache,
		MaxWorkers:     cfg.BatchMaxWorkers,
		Logger:         logger.Named("advisor"),
	})

	logger.Info("advisor wired",
		"env", cfg.AppEnv,
		"name_threshold", resolver.Thresholds().FullName,
		"first_token_threshold", resolver.Thresholds().FirstToken,
		"cache_ttl", cacheNote,
		"batch_workers", cfg.BatchMaxWorkers,
	)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Engine:   engine,
		Advisor:  advisor,
		Leagues:  leagueRepo,
		Rankings: rankingRepo,
	}, nil
}
