package usecase

import (
	"github.com/riskibarqy/fantasy-lineup/internal/domain/identity"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
	"github.com/riskibarqy/fantasy-lineup/internal/platform/logging"
)

// OptimalAnalysis compares the current lineup with the best lineup reachable
// by adding free agents.
type OptimalAnalysis struct {
	NoData              string              `json:"no_data,omitempty"`
	Current             []lineup.Assignment `json:"current"`
	Starters            []lineup.Assignment `json:"starters"`
	Bench               []lineup.Entry      `json:"bench"`
	Added               []lineup.Assignment `json:"added"`
	Dropped             []lineup.Assignment `json:"dropped"`
	Upgrades            []lineup.Upgrade    `json:"upgrades"`
	AvailableFreeAgents []lineup.Entry      `json:"available_free_agents"`
}

type OptimalLineupComputer struct {
	analyzer       *LineupAnalyzer
	freeAgentLimit int
	logger         *logging.Logger
}

func NewOptimalLineupComputer(analyzer *LineupAnalyzer, freeAgentLimit int, logger *logging.Logger) *OptimalLineupComputer {
	if analyzer == nil {
		analyzer = NewLineupAnalyzer(nil, 0, logger)
	}
	if freeAgentLimit <= 0 {
		freeAgentLimit = defaultFreeAgentDisplayLimit
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &OptimalLineupComputer{
		analyzer:       analyzer,
		freeAgentLimit: freeAgentLimit,
		logger:         logger,
	}
}

// ComputeOptimal reallocates the user's ranked players together with every
// unowned ranked player. Kicker and defense starters are carried over from
// the current analysis unchanged.
func (c *OptimalLineupComputer) ComputeOptimal(in LineupInput) OptimalAnalysis {
	current := c.analyzer.Analyze(in)
	if current.NoData != "" {
		return OptimalAnalysis{NoData: current.NoData}
	}

	currentOffense := current.OffensiveStarters()
	pool := make([]lineup.Entry, 0, len(currentOffense)+len(current.Bench))
	for _, s := range currentOffense {
		pool = append(pool, s.Entry)
	}
	pool = append(pool, current.Bench...)

	// a ranking row already matched to a rostered player is never also a free agent
	consumed := make(map[player.Record]struct{}, len(pool))
	for _, e := range pool {
		consumed[rankingRow(e.Record)] = struct{}{}
	}

	freeAgents := make([]lineup.Entry, 0)
	for _, e := range resolveRanked(c.analyzer.resolver, identity.NewIndex(in.Directory), in.Rankings.Offense, nil) {
		if in.Roster.Contains(e.PlayerID) || in.Ownership.Owns(e.PlayerID) {
			continue
		}
		if _, ok := consumed[rankingRow(e.Record)]; ok {
			continue
		}
		e.FreeAgent = true
		freeAgents = append(freeAgents, e)
	}
	pool = append(pool, freeAgents...)

	alloc := lineup.Allocate(pool, in.Requirements)

	out := OptimalAnalysis{
		Current:             current.Starters,
		Starters:            append(alloc.Starters, current.specialTeamsStarters()...),
		AvailableFreeAgents: topEntries(freeAgents, c.freeAgentLimit),
	}
	for _, e := range alloc.Bench {
		if !e.FreeAgent {
			out.Bench = append(out.Bench, e)
		}
	}
	out.Added, out.Dropped = diffStarters(currentOffense, alloc.Starters)
	out.Upgrades = pairUpgrades(out.Added, out.Dropped)

	c.logger.Debug("optimal lineup computed",
		"owner_id", in.Roster.OwnerID,
		"free_agents", len(freeAgents),
		"added", len(out.Added),
		"dropped", len(out.Dropped),
		"upgrades", len(out.Upgrades),
	)
	return out
}

func rankingRow(rec player.Record) player.Record {
	rec.CanonicalID = ""
	rec.Drafted = false
	return rec
}

// diffStarters compares two starter sets by canonical id.
func diffStarters(current, optimal []lineup.Assignment) (added, dropped []lineup.Assignment) {
	currentIDs := make(map[string]struct{}, len(current))
	for _, s := range current {
		currentIDs[s.PlayerID] = struct{}{}
	}
	optimalIDs := make(map[string]struct{}, len(optimal))
	for _, s := range optimal {
		optimalIDs[s.PlayerID] = struct{}{}
		if _, ok := currentIDs[s.PlayerID]; !ok {
			added = append(added, s)
		}
	}
	for _, s := range current {
		if _, ok := optimalIDs[s.PlayerID]; !ok {
			dropped = append(dropped, s)
		}
	}
	return added, dropped
}

// pairUpgrades matches each added free agent with the eligible dropped starter
// it improves on the most. Each dropped starter is used at most once.
func pairUpgrades(added, dropped []lineup.Assignment) []lineup.Upgrade {
	consumed := make([]bool, len(dropped))
	var out []lineup.Upgrade
	for _, add := range added {
		if !add.FreeAgent {
			continue
		}
		best, bestGain := -1, 0
		for j, drop := range dropped {
			if consumed[j] || !swapEligible(drop, add) {
				continue
			}
			if gain := drop.Rank() - add.Rank(); gain > bestGain {
				best, bestGain = j, gain
			}
		}
		if best < 0 {
			continue
		}
		consumed[best] = true
		if up, ok := lineup.NewUpgrade(dropped[best], add); ok {
			out = append(out, up)
		}
	}
	return out
}

// swapEligible allows same-position swaps, and RB/WR/TE swaps when either
// side sits in a flex slot.
func swapEligible(drop, add lineup.Assignment) bool {
	if drop.Position() == add.Position() {
		return true
	}
	if !lineup.FlexEligible(drop.Position()) || !lineup.FlexEligible(add.Position()) {
		return false
	}
	return drop.Slot.IsFlex() || add.Slot.IsFlex()
}
