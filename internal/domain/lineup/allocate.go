package lineup

import "sort"

// Allocate assigns entries to the starting slots in req. Fixed positions are
// filled best rank first, then SUPER_FLEX, FLEX, WRRBTE_FLEX and WRRB_FLEX take
// the best remaining eligible players in that order. Everything left is bench.
//
// Starters come back grouped by slot in declaration order; bench is rank order.
// Equal ranks keep input order.
func Allocate(entries []Entry, req Requirements) Allocation {
	pool := make([]Entry, len(entries))
	copy(pool, entries)
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Rank() < pool[j].Rank()
	})

	assigned := make([]Slot, len(pool))
	fillOrder := make(map[Slot][]int)

	remaining := make(map[Slot]int, len(fixedSlots))
	for slot := range fixedSlots {
		remaining[slot] = req.Count(slot)
	}
	for i, e := range pool {
		slot := Slot(e.Position())
		if remaining[slot] <= 0 {
			continue
		}
		assigned[i] = slot
		remaining[slot]--
		fillOrder[slot] = append(fillOrder[slot], i)
	}

	// One pool, one taken marker: a player claimed by an earlier flex pass is
	// invisible to the later ones.
	for _, slot := range flexPassOrder {
		capacity := req.Count(slot)
		for i := 0; i < len(pool) && capacity > 0; i++ {
			if assigned[i] != "" || !slot.Accepts(pool[i].Position()) {
				continue
			}
			assigned[i] = slot
			capacity--
			fillOrder[slot] = append(fillOrder[slot], i)
		}
	}

	out := Allocation{
		Starters: make([]Assignment, 0, req.Total()),
		Bench:    make([]Entry, 0, len(pool)),
	}
	for _, slot := range req.Order() {
		for n, i := range fillOrder[slot] {
			out.Starters = append(out.Starters, Assignment{Entry: pool[i], Slot: slot, Instance: n + 1})
		}
	}
	for i, e := range pool {
		if assigned[i] == "" {
			out.Bench = append(out.Bench, e)
		}
	}

	return out
}
