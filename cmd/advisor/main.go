package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/fantasy-lineup/internal/app"
	"github.com/riskibarqy/fantasy-lineup/internal/config"
	"github.com/riskibarqy/fantasy-lineup/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-lineup/internal/platform/logging"
	"github.com/riskibarqy/fantasy-lineup/internal/usecase"
)

func main() {
	leagueID := flag.String("league", memory.DemoLeagueID, "league id")
	ownerID := flag.String("owner", memory.DemoOwnerID, "roster owner id")
	draft := flag.Bool("draft", false, "print the draft board for -league instead of a lineup report")
	allLeagues := flag.Bool("all", false, "report -owner in every known league")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel, cfg.ServiceName)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var out any
	switch {
	case *draft:
		out, err = a.Advisor.DraftBoard(ctx, *leagueID)
	case *allLeagues:
		out, err = a.Advisor.OwnerReports(ctx, *ownerID)
	default:
		out, err = a.Advisor.Report(ctx, usecase.ReportRequest{LeagueID: *leagueID, OwnerID: *ownerID})
	}
	if err != nil {
		logger.Error("advisor request failed", "league_id", *leagueID, "owner_id", *ownerID, "error", err)
		os.Exit(1)
	}

	if err := writeJSON(os.Stdout, out); err != nil {
		logger.Error("write output", "error", err)
		os.Exit(1)
	}
}

func writeJSON(w *os.File, v any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := sonic.ConfigStd.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if _, err := w.Write(buf.B); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

