package lineup

import "github.com/riskibarqy/fantasy-lineup/internal/domain/player"

// Entry is a ranked player resolved to a canonical id.
type Entry struct {
	PlayerID  string        `json:"player_id"`
	Record    player.Record `json:"record"`
	FreeAgent bool          `json:"free_agent,omitempty"`
}

func (e Entry) Position() player.Position {
	return e.Record.Position
}

func (e Entry) Rank() int {
	return e.Record.Rank
}

// Assignment places an entry in a starting slot. Instance counts from 1 per slot.
type Assignment struct {
	Entry
	Slot     Slot `json:"slot"`
	Instance int  `json:"instance"`
}

// Allocation is the starters/bench split of one allocation pass.
type Allocation struct {
	Starters []Assignment `json:"starters"`
	Bench    []Entry      `json:"bench"`
}

// StarterIndex maps starter player ids to their assignment.
func (a Allocation) StarterIndex() map[string]Assignment {
	out := make(map[string]Assignment, len(a.Starters))
	for _, s := range a.Starters {
		out[s.PlayerID] = s
	}
	return out
}

// Upgrade pairs a player to drop with a better-ranked player to add.
type Upgrade struct {
	Drop        Assignment `json:"drop"`
	Add         Assignment `json:"add"`
	Improvement int        `json:"improvement"`
}

// NewUpgrade builds the swap of drop for add. It reports false unless add is
// strictly better ranked than drop.
func NewUpgrade(drop, add Assignment) (Upgrade, bool) {
	improvement := drop.Rank() - add.Rank()
	if improvement <= 0 {
		return Upgrade{}, false
	}
	return Upgrade{Drop: drop, Add: add, Improvement: improvement}, true
}
