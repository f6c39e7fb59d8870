package usecase

import (
	"sort"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/identity"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/league"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
	"github.com/riskibarqy/fantasy-lineup/internal/platform/logging"
)

type RosInput struct {
	Roster    league.Roster
	Directory player.Directory
	Ownership league.Ownership
	Rankings  []player.Record
}

// RosRecommendation holds rest-of-season add/drop advice.
type RosRecommendation struct {
	NoData        string           `json:"no_data,omitempty"`
	Roster        []lineup.Entry   `json:"roster"`
	FreeAgents    []lineup.Entry   `json:"free_agents"`
	PositionSwaps []lineup.Upgrade `json:"position_swaps"`
	Swaps         []lineup.Upgrade `json:"swaps"`
	Unranked      []string         `json:"unranked,omitempty"`
}

type RestOfSeasonRecommender struct {
	resolver *identity.Resolver
	logger   *logging.Logger
}

func NewRestOfSeasonRecommender(resolver *identity.Resolver, logger *logging.Logger) *RestOfSeasonRecommender {
	if resolver == nil {
		resolver = identity.NewResolver(identity.DefaultThresholds(), nil)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &RestOfSeasonRecommender{resolver: resolver, logger: logger}
}

// Recommend ranks the user's offensive players and the unowned players by the
// season-long list. It proposes one swap per position (worst rostered against
// best free agent) and a position-agnostic list pairing the i-th best free
// agent with the i-th worst rostered player until a pair stops improving.
func (r *RestOfSeasonRecommender) Recommend(in RosInput) RosRecommendation {
	if len(in.Rankings) == 0 {
		return RosRecommendation{NoData: NoDataRankings}
	}
	if in.Roster.Empty() {
		return RosRecommendation{NoData: NoDataRoster}
	}

	var out RosRecommendation
	for _, id := range in.Roster.PlayerIDs {
		c, ok := in.Directory[id]
		if !ok || !c.Position.IsOffensive() {
			continue
		}
		i, ok := r.resolver.BestRecord(c.DisplayName(), c.Position, in.Rankings)
		if !ok {
			out.Unranked = append(out.Unranked, id)
			continue
		}
		rec := in.Rankings[i]
		rec.CanonicalID = id
		out.Roster = append(out.Roster, lineup.Entry{PlayerID: id, Record: rec})
	}

	for _, e := range resolveRanked(r.resolver, identity.NewIndex(in.Directory), in.Rankings, nil) {
		if in.Ownership.Owns(e.PlayerID) || in.Roster.Contains(e.PlayerID) {
			continue
		}
		e.FreeAgent = true
		out.FreeAgents = append(out.FreeAgents, e)
	}

	for _, pos := range player.OffensivePositions {
		worst, okWorst := worstAt(out.Roster, pos)
		best, okBest := bestAt(out.FreeAgents, pos)
		if !okWorst || !okBest {
			continue
		}
		if up, ok := lineup.NewUpgrade(lineup.Assignment{Entry: worst}, lineup.Assignment{Entry: best}); ok {
			out.PositionSwaps = append(out.PositionSwaps, up)
		}
	}

	adds := topEntries(out.FreeAgents, -1)
	drops := make([]lineup.Entry, len(out.Roster))
	copy(drops, out.Roster)
	sort.SliceStable(drops, func(i, j int) bool {
		return drops[i].Rank() > drops[j].Rank()
	})
	for i := 0; i < len(adds) && i < len(drops); i++ {
		up, ok := lineup.NewUpgrade(lineup.Assignment{Entry: drops[i]}, lineup.Assignment{Entry: adds[i]})
		if !ok {
			break
		}
		out.Swaps = append(out.Swaps, up)
	}

	r.logger.Debug("rest of season recommendation built",
		"owner_id", in.Roster.OwnerID,
		"roster_ranked", len(out.Roster),
		"free_agents", len(out.FreeAgents),
		"position_swaps", len(out.PositionSwaps),
		"swaps", len(out.Swaps),
	)
	return out
}

func worstAt(entries []lineup.Entry, pos player.Position) (lineup.Entry, bool) {
	var out lineup.Entry
	found := false
	for _, e := range entries {
		if e.Position() != pos {
			continue
		}
		if !found || e.Rank() > out.Rank() {
			out, found = e, true
		}
	}
	return out, found
}

func bestAt(entries []lineup.Entry, pos player.Position) (lineup.Entry, bool) {
	var out lineup.Entry
	found := false
	for _, e := range entries {
		if e.Position() != pos {
			continue
		}
		if !found || e.Rank() < out.Rank() {
			out, found = e, true
		}
	}
	return out, found
}
