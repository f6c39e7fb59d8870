package usecase

import (
	"sort"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/identity"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/league"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
	"github.com/riskibarqy/fantasy-lineup/internal/platform/logging"
)

const (
	defaultWaiverSuggestionLimit = 5
	defaultFreeAgentDisplayLimit = 10
)

// LineupInput is everything one weekly analysis reads. It is never mutated.
type LineupInput struct {
	Rankings     player.WeeklyRankings
	Roster       league.Roster
	Directory    player.Directory
	Requirements lineup.Requirements
	Ownership    league.Ownership
}

// LineupAnalysis is the current-roster breakdown for one week.
type LineupAnalysis struct {
	NoData         string              `json:"no_data,omitempty"`
	Starters       []lineup.Assignment `json:"starters"`
	Bench          []lineup.Entry      `json:"bench"`
	Defenses       []lineup.Entry      `json:"defenses"`
	Kickers        []lineup.Entry      `json:"kickers"`
	WaiverDefenses []lineup.Entry      `json:"waiver_defenses"`
	WaiverKickers  []lineup.Entry      `json:"waiver_kickers"`
	Unranked       []string            `json:"unranked,omitempty"`
	Resolution     identity.Stats      `json:"resolution"`
}

// OffensiveStarters returns the starters placed by the slot allocator, without
// the kicker and defense appended after it.
func (a LineupAnalysis) OffensiveStarters() []lineup.Assignment {
	out := make([]lineup.Assignment, 0, len(a.Starters))
	for _, s := range a.Starters {
		if s.Slot == lineup.SlotK || s.Slot == lineup.SlotDEF {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (a LineupAnalysis) specialTeamsStarters() []lineup.Assignment {
	out := make([]lineup.Assignment, 0, 2)
	for _, s := range a.Starters {
		if s.Slot == lineup.SlotK || s.Slot == lineup.SlotDEF {
			out = append(out, s)
		}
	}
	return out
}

type LineupAnalyzer struct {
	resolver    *identity.Resolver
	waiverLimit int
	logger      *logging.Logger
}

func NewLineupAnalyzer(resolver *identity.Resolver, waiverLimit int, logger *logging.Logger) *LineupAnalyzer {
	if resolver == nil {
		resolver = identity.NewResolver(identity.DefaultThresholds(), nil)
	}
	if waiverLimit <= 0 {
		waiverLimit = defaultWaiverSuggestionLimit
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LineupAnalyzer{
		resolver:    resolver,
		waiverLimit: waiverLimit,
		logger:      logger,
	}
}

// Analyze resolves the weekly offensive rankings against the user's roster,
// allocates starters and bench, then picks one kicker and one defense from the
// roster or the free-agent pool.
func (a *LineupAnalyzer) Analyze(in LineupInput) LineupAnalysis {
	if in.Rankings.Empty() {
		return LineupAnalysis{NoData: NoDataRankings}
	}
	if in.Roster.Empty() {
		return LineupAnalysis{NoData: NoDataRoster}
	}

	var out LineupAnalysis
	rosterDir := in.Directory.Subset(in.Roster.PlayerIDs)
	entries := resolveRanked(a.resolver, identity.NewIndex(rosterDir), in.Rankings.Offense, &out.Resolution)

	alloc := lineup.Allocate(entries, in.Requirements)
	out.Starters = alloc.Starters
	out.Bench = alloc.Bench
	out.Unranked = unrankedRosterIDs(in.Roster, rosterDir, entries)

	defenses := classifySpecialTeams(in.Rankings.Defenses, player.PositionDEF, rosterDir, in.Directory, in.Ownership)
	kickers := classifySpecialTeams(in.Rankings.Kickers, player.PositionK, rosterDir, in.Directory, in.Ownership)
	out.Defenses = defenses.rostered
	out.Kickers = kickers.rostered
	out.WaiverDefenses = defenses.waivers(a.waiverLimit)
	out.WaiverKickers = kickers.waivers(a.waiverLimit)

	for _, group := range []struct {
		slot lineup.Slot
		pool specialTeamsPool
	}{
		{slot: lineup.SlotK, pool: kickers},
		{slot: lineup.SlotDEF, pool: defenses},
	} {
		if in.Requirements.Count(group.slot) <= 0 {
			continue
		}
		if pick, ok := group.pool.starter(); ok {
			out.Starters = append(out.Starters, lineup.Assignment{Entry: pick, Slot: group.slot, Instance: 1})
		}
	}

	a.logger.Debug("lineup analyzed",
		"owner_id", in.Roster.OwnerID,
		"starters", len(out.Starters),
		"bench", len(out.Bench),
		"unranked", len(out.Unranked),
		"resolution", out.Resolution,
	)
	return out
}

// resolveRanked resolves offensive records against idx, best rank first. A
// canonical id is taken by its best-ranked record only.
func resolveRanked(resolver *identity.Resolver, idx *identity.Index, records []player.Record, stats *identity.Stats) []lineup.Entry {
	sorted := make([]player.Record, 0, len(records))
	for _, rec := range records {
		if rec.Position.IsOffensive() {
			sorted = append(sorted, rec)
		}
	}
	player.SortByRank(sorted)

	out := make([]lineup.Entry, 0, idx.Len())
	seen := make(map[string]struct{}, idx.Len())
	for _, rec := range sorted {
		m := resolver.Resolve(idx, identity.Query{Name: rec.Name, Team: rec.Team, Position: rec.Position})
		if stats != nil {
			stats.Record(m)
		}
		if !m.Matched() {
			continue
		}
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		rec.CanonicalID = m.ID
		out = append(out, lineup.Entry{PlayerID: m.ID, Record: rec})
	}
	return out
}

func unrankedRosterIDs(roster league.Roster, rosterDir player.Directory, entries []lineup.Entry) []string {
	ranked := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		ranked[e.PlayerID] = struct{}{}
	}
	var out []string
	for _, id := range roster.PlayerIDs {
		c, ok := rosterDir[id]
		if !ok || !c.Position.IsOffensive() {
			continue
		}
		if _, ok := ranked[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

type specialTeamsPool struct {
	rostered   []lineup.Entry
	freeAgents []lineup.Entry
}

// classifySpecialTeams sorts ranked kickers or defenses into the user's own
// players and free agents. Rows owned by another roster are dropped.
func classifySpecialTeams(
	records []player.Record,
	pos player.Position,
	rosterDir player.Directory,
	dir player.Directory,
	ownership league.Ownership,
) specialTeamsPool {
	rosterCandidates := rosterDir.ByPosition(pos)
	rosterIDs := rosterCandidates.SortedIDs()
	leagueCandidates := dir.ByPosition(pos)
	leagueIDs := leagueCandidates.SortedIDs()

	sorted := make([]player.Record, len(records))
	copy(sorted, records)
	player.SortByRank(sorted)

	var pool specialTeamsPool
	seen := make(map[string]struct{})
	for _, rec := range sorted {
		rec.Position = pos

		if id, ok := firstSpecialTeamsMatch(rosterCandidates, rosterIDs, rec); ok {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			rec.CanonicalID = id
			pool.rostered = append(pool.rostered, lineup.Entry{PlayerID: id, Record: rec})
			continue
		}

		owned, freeAgentID := false, ""
		for _, id := range leagueIDs {
			if !identity.MatchesSpecialTeams(leagueCandidates[id], rec) {
				continue
			}
			if ownership.Owns(id) {
				owned = true
				break
			}
			if freeAgentID == "" {
				freeAgentID = id
			}
		}
		if owned {
			continue
		}
		if freeAgentID != "" {
			if _, dup := seen[freeAgentID]; dup {
				continue
			}
			seen[freeAgentID] = struct{}{}
		}
		rec.CanonicalID = freeAgentID
		pool.freeAgents = append(pool.freeAgents, lineup.Entry{PlayerID: freeAgentID, Record: rec, FreeAgent: true})
	}
	return pool
}

func firstSpecialTeamsMatch(candidates player.Directory, ids []string, rec player.Record) (string, bool) {
	for _, id := range ids {
		if identity.MatchesSpecialTeams(candidates[id], rec) {
			return id, true
		}
	}
	return "", false
}

func (p specialTeamsPool) waivers(limit int) []lineup.Entry {
	combined := make([]lineup.Entry, 0, len(p.rostered)+len(p.freeAgents))
	combined = append(combined, p.rostered...)
	combined = append(combined, p.freeAgents...)
	return topEntries(combined, limit)
}

// starter prefers the best rostered player unless a free agent is strictly better ranked.
func (p specialTeamsPool) starter() (lineup.Entry, bool) {
	switch {
	case len(p.rostered) == 0 && len(p.freeAgents) == 0:
		return lineup.Entry{}, false
	case len(p.rostered) == 0:
		return p.freeAgents[0], true
	case len(p.freeAgents) == 0:
		return p.rostered[0], true
	case p.freeAgents[0].Rank() < p.rostered[0].Rank():
		return p.freeAgents[0], true
	default:
		return p.rostered[0], true
	}
}

// topEntries returns up to limit entries in rank order without touching the input.
func topEntries(entries []lineup.Entry, limit int) []lineup.Entry {
	out := make([]lineup.Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rank() < out[j].Rank()
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
