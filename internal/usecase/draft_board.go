package usecase

import (
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/identity"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
)

// DraftBoard tracks which players on a season draft sheet are already taken.
type DraftBoard struct {
	mu        sync.RWMutex
	records   []player.Record
	directory player.Directory
	stats     identity.Stats
}

// NewDraftBoard copies records in rank order and resolves each to a canonical id.
func NewDraftBoard(records []player.Record, directory player.Directory, resolver *identity.Resolver) *DraftBoard {
	if resolver == nil {
		resolver = identity.NewResolver(identity.DefaultThresholds(), nil)
	}

	board := &DraftBoard{
		records:   make([]player.Record, len(records)),
		directory: directory,
	}
	copy(board.records, records)
	player.SortByRank(board.records)

	idx := identity.NewIndex(directory)
	for i := range board.records {
		rec := &board.records[i]
		m := resolver.Resolve(idx, identity.Query{Name: rec.Name, Team: rec.Team, Position: rec.Position})
		board.stats.Record(m)
		rec.CanonicalID = m.ID
		rec.Drafted = false
	}
	return board
}

func (b *DraftBoard) Stats() identity.Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stats
}

// ApplyDrafted replaces all drafted flags from the given canonical ids. Records
// without a resolved id fall back to a normalized-name match against drafted
// directory entries at the same position (or with no position). It returns
// the number of drafted records.
func (b *DraftBoard) ApplyDrafted(draftedIDs []string) int {
	drafted := make(map[string]struct{}, len(draftedIDs))
	draftedNames := make(map[string][]player.Position, len(draftedIDs))
	for _, id := range draftedIDs {
		drafted[id] = struct{}{}
		if c, ok := b.directory[id]; ok {
			name := identity.NormalizeName(c.DisplayName())
			if name != "" {
				draftedNames[name] = append(draftedNames[name], c.Position)
			}
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	count := 0
	for i := range b.records {
		rec := &b.records[i]
		rec.Drafted = false
		if rec.CanonicalID != "" {
			_, rec.Drafted = drafted[rec.CanonicalID]
		}
		if !rec.Drafted {
			for _, pos := range draftedNames[identity.NormalizeName(rec.Name)] {
				if pos == "" || pos == rec.Position {
					rec.Drafted = true
					break
				}
			}
		}
		if rec.Drafted {
			count++
		}
	}
	return count
}

// UnmatchedDrafted lists drafted directory entries that no drafted record accounts for.
func (b *DraftBoard) UnmatchedDrafted(draftedIDs []string) []player.Canonical {
	b.mu.RLock()
	defer b.mu.RUnlock()

	byID := make(map[string]struct{})
	byName := make(map[string]struct{})
	for _, rec := range b.records {
		if !rec.Drafted {
			continue
		}
		if rec.CanonicalID != "" {
			byID[rec.CanonicalID] = struct{}{}
		}
		byName[identity.NormalizeName(rec.Name)] = struct{}{}
	}

	var out []player.Canonical
	for _, id := range draftedIDs {
		c, ok := b.directory[id]
		if !ok {
			continue
		}
		if _, ok := byID[id]; ok {
			continue
		}
		if _, ok := byName[identity.NormalizeName(c.DisplayName())]; ok {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TopByPosition returns the best undrafted records at pos.
func (b *DraftBoard) TopByPosition(pos player.Position, limit int) []player.Record {
	return b.filter(limit, func(r player.Record) bool { return !r.Drafted && r.Position == pos })
}

// TopAvailable returns the best undrafted records at any position.
func (b *DraftBoard) TopAvailable(limit int) []player.Record {
	return b.filter(limit, func(r player.Record) bool { return !r.Drafted })
}

func (b *DraftBoard) Drafted() []player.Record {
	return b.filter(-1, func(r player.Record) bool { return r.Drafted })
}

// Search returns the first record, in rank order, whose name contains text
// ignoring case.
func (b *DraftBoard) Search(text string) (player.Record, bool) {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return player.Record{}, false
	}
	found := b.filter(1, func(r player.Record) bool {
		return strings.Contains(strings.ToLower(r.Name), needle)
	})
	if len(found) == 0 {
		return player.Record{}, false
	}
	return found[0], true
}

func (b *DraftBoard) filter(limit int, keep func(player.Record) bool) []player.Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var out []player.Record
	for _, rec := range b.records {
		if limit >= 0 && len(out) >= limit {
			break
		}
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}
