package lineup

import (
	"strings"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
)

// Slot names one starting-lineup slot type.
type Slot string

const (
	SlotQB  Slot = "QB"
	SlotRB  Slot = "RB"
	SlotWR  Slot = "WR"
	SlotTE  Slot = "TE"
	SlotDEF Slot = "DEF"
	SlotK   Slot = "K"

	SlotFlex       Slot = "FLEX"
	SlotWRRBTEFlex Slot = "WRRBTE_FLEX"
	SlotWRRBFlex   Slot = "WRRB_FLEX"
	SlotSuperFlex  Slot = "SUPER_FLEX"
)

// flexPassOrder is the order flex slots are filled after the fixed pass.
var flexPassOrder = []Slot{SlotSuperFlex, SlotFlex, SlotWRRBTEFlex, SlotWRRBFlex}

var flexEligibility = map[Slot]map[player.Position]struct{}{
	SlotSuperFlex:  positionSet(player.PositionQB, player.PositionRB, player.PositionWR, player.PositionTE),
	SlotFlex:       positionSet(player.PositionRB, player.PositionWR, player.PositionTE),
	SlotWRRBTEFlex: positionSet(player.PositionRB, player.PositionWR, player.PositionTE),
	SlotWRRBFlex:   positionSet(player.PositionRB, player.PositionWR),
}

var fixedSlots = map[Slot]player.Position{
	SlotQB:  player.PositionQB,
	SlotRB:  player.PositionRB,
	SlotWR:  player.PositionWR,
	SlotTE:  player.PositionTE,
	SlotDEF: player.PositionDEF,
	SlotK:   player.PositionK,
}

func positionSet(positions ...player.Position) map[player.Position]struct{} {
	out := make(map[player.Position]struct{}, len(positions))
	for _, pos := range positions {
		out[pos] = struct{}{}
	}
	return out
}

// ParseSlot returns the slot for a roster position name. Unknown names report false.
func ParseSlot(raw string) (Slot, bool) {
	slot := Slot(strings.ToUpper(strings.TrimSpace(raw)))
	if slot.Known() {
		return slot, true
	}
	return slot, false
}

func (s Slot) Known() bool {
	if _, ok := fixedSlots[s]; ok {
		return true
	}
	_, ok := flexEligibility[s]
	return ok
}

func (s Slot) IsFlex() bool {
	_, ok := flexEligibility[s]
	return ok
}

// Accepts reports whether a player at pos can fill the slot.
func (s Slot) Accepts(pos player.Position) bool {
	if fixed, ok := fixedSlots[s]; ok {
		return fixed == pos
	}
	_, ok := flexEligibility[s][pos]
	return ok
}

// FlexEligible reports whether pos can fill any RB/WR/TE flex slot.
func FlexEligible(pos player.Position) bool {
	return SlotFlex.Accepts(pos)
}

// SlotCount is one declared slot requirement.
type SlotCount struct {
	Slot  Slot `json:"slot"`
	Count int  `json:"count"`
}

// Requirements lists slot counts in declaration order.
type Requirements []SlotCount

// FromRosterPositions counts a league's roster position list ("QB", "RB", "RB",
// "FLEX", "BN", ...) keeping first-seen order. Unknown names are kept so the
// declared order survives, but they never receive players.
func FromRosterPositions(positions []string) Requirements {
	out := make(Requirements, 0, len(positions))
	index := make(map[Slot]int, len(positions))
	for _, raw := range positions {
		slot := Slot(strings.ToUpper(strings.TrimSpace(raw)))
		if slot == "" {
			continue
		}
		if i, ok := index[slot]; ok {
			out[i].Count++
			continue
		}
		index[slot] = len(out)
		out = append(out, SlotCount{Slot: slot, Count: 1})
	}
	return out
}

// Count returns the required count for slot. Unknown slots and negative counts read as 0.
func (r Requirements) Count(slot Slot) int {
	if !slot.Known() {
		return 0
	}
	total := 0
	for _, sc := range r {
		if sc.Slot == slot && sc.Count > 0 {
			total += sc.Count
		}
	}
	return total
}

// Total sums the counts of every recognized slot.
func (r Requirements) Total() int {
	total := 0
	for _, sc := range r {
		if sc.Slot.Known() && sc.Count > 0 {
			total += sc.Count
		}
	}
	return total
}

// Order returns each recognized slot once, in declaration order.
func (r Requirements) Order() []Slot {
	seen := make(map[Slot]struct{}, len(r))
	out := make([]Slot, 0, len(r))
	for _, sc := range r {
		if !sc.Slot.Known() {
			continue
		}
		if _, ok := seen[sc.Slot]; ok {
			continue
		}
		seen[sc.Slot] = struct{}{}
		out = append(out, sc.Slot)
	}
	return out
}
