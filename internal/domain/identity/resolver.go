package identity

import (
	"slices"
	"strings"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
)

// Strategy names the resolution step that produced a match.
type Strategy string

const (
	StrategyNone         Strategy = ""
	StrategyExact        Strategy = "exact"
	StrategyNormalized   Strategy = "normalized"
	StrategyFuzzy        Strategy = "fuzzy"
	StrategyLastNameTeam Strategy = "last_name_team"
)

const (
	DefaultFullNameThreshold   = 95
	DefaultFirstTokenThreshold = 85

	freeAgentTeam = "FA"
)

// Thresholds gate the fuzzy step. Both bounds are inclusive.
type Thresholds struct {
	FullName   int
	FirstToken int
}

func DefaultThresholds() Thresholds {
	return Thresholds{FullName: DefaultFullNameThreshold, FirstToken: DefaultFirstTokenThreshold}
}

// Query is the source-side identity to resolve.
type Query struct {
	Name     string
	Team     string
	Position player.Position
}

// Match is the outcome of one resolution. An empty ID means unmatched.
type Match struct {
	ID       string   `json:"id,omitempty"`
	Strategy Strategy `json:"strategy,omitempty"`
	Score    int      `json:"score,omitempty"`
}

func (m Match) Matched() bool {
	return m.ID != ""
}

type candidate struct {
	id string
	// keys are the fuzzy match variants: display, search and first+last names.
	keys     []string
	lastName string
	team     string
	position player.Position
}

// Index holds the lookup tables for one resolution pass over a directory.
// Build one per request; it is read-only once built.
type Index struct {
	exact      map[string]string
	normalized map[string]string
	candidates []candidate
	byPosition map[player.Position][]int
}

// NewIndex builds lookup tables from dir. Ids are visited in ascending order
// and the first id to claim a name keeps it.
func NewIndex(dir player.Directory) *Index {
	idx := &Index{
		exact:      make(map[string]string, len(dir)),
		normalized: make(map[string]string, len(dir)*2),
		candidates: make([]candidate, 0, len(dir)),
		byPosition: make(map[player.Position][]int),
	}

	for _, id := range dir.SortedIDs() {
		c := dir[id]
		display := c.DisplayName()
		if display == "" {
			continue
		}
		claim(idx.exact, display, id)

		normalized := NormalizeName(display)
		searchName := NormalizeName(c.SearchFullName)
		firstLast := NormalizeName(c.FirstName + " " + c.LastName)
		claim(idx.normalized, normalized, id)
		claim(idx.normalized, searchName, id)
		claim(idx.normalized, firstLast, id)

		if normalized == "" {
			continue
		}
		lastName := NormalizeName(c.LastName)
		if lastName == "" {
			lastName = lastToken(normalized)
		}
		idx.byPosition[c.Position] = append(idx.byPosition[c.Position], len(idx.candidates))
		idx.candidates = append(idx.candidates, candidate{
			id:       id,
			keys:     distinctKeys(normalized, searchName, firstLast),
			lastName: lastName,
			team:     strings.ToUpper(strings.TrimSpace(c.Team)),
			position: c.Position,
		})
	}

	return idx
}

func distinctKeys(keys ...string) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if key != "" && !slices.Contains(out, key) {
			out = append(out, key)
		}
	}
	return out
}

func claim(table map[string]string, key, id string) {
	if key == "" {
		return
	}
	if _, taken := table[key]; taken {
		return
	}
	table[key] = id
}

// Len returns the number of candidates in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.candidates)
}

// Resolver maps source names to canonical ids. It holds no per-request state.
type Resolver struct {
	thresholds Thresholds
	scorer     Scorer
}

// NewResolver returns a resolver using scorer, or IndelScorer when scorer is nil.
// Non-positive thresholds fall back to the defaults.
func NewResolver(thresholds Thresholds, scorer Scorer) *Resolver {
	if thresholds.FullName <= 0 {
		thresholds.FullName = DefaultFullNameThreshold
	}
	if thresholds.FirstToken <= 0 {
		thresholds.FirstToken = DefaultFirstTokenThreshold
	}
	if scorer == nil {
		scorer = IndelScorer{}
	}
	return &Resolver{thresholds: thresholds, scorer: scorer}
}

func (r *Resolver) Thresholds() Thresholds {
	return r.thresholds
}

// Resolve tries, in order: exact display name, normalized name, fuzzy
// token-sort match within the query's position, and a unique
// last-name + team + position match.
func (r *Resolver) Resolve(idx *Index, q Query) Match {
	if idx == nil || strings.TrimSpace(q.Name) == "" {
		return Match{}
	}

	if id, ok := idx.exact[q.Name]; ok {
		return Match{ID: id, Strategy: StrategyExact, Score: 100}
	}

	normalized := NormalizeName(q.Name)
	if normalized == "" {
		return Match{}
	}
	if id, ok := idx.normalized[normalized]; ok {
		return Match{ID: id, Strategy: StrategyNormalized, Score: 100}
	}

	if m, ok := r.fuzzy(idx, normalized, q.Position); ok {
		return m
	}

	if id, ok := idx.uniqueLastNameTeam(normalized, q.Team, q.Position); ok {
		return Match{ID: id, Strategy: StrategyLastNameTeam}
	}

	return Match{}
}

func (r *Resolver) fuzzy(idx *Index, normalized string, pos player.Position) (Match, bool) {
	pool := idx.byPosition[pos]
	if len(pool) == 0 {
		pool = make([]int, len(idx.candidates))
		for i := range pool {
			pool[i] = i
		}
	}

	best, bestScore, bestKey := -1, -1, ""
	for _, i := range pool {
		for _, key := range idx.candidates[i].keys {
			score := r.scorer.TokenSortRatio(normalized, key)
			if score > bestScore {
				best, bestScore, bestKey = i, score, key
			}
		}
	}
	if best < 0 || bestScore < r.thresholds.FullName {
		return Match{}, false
	}
	if !r.firstTokensAgree(normalized, bestKey) {
		return Match{}, false
	}
	return Match{ID: idx.candidates[best].id, Strategy: StrategyFuzzy, Score: bestScore}, true
}

// firstTokensAgree guards against two different people sharing a surname.
func (r *Resolver) firstTokensAgree(a, b string) bool {
	fa, fb := firstToken(a), firstToken(b)
	if fa == "" || fb == "" {
		return false
	}
	return r.scorer.Ratio(fa, fb) >= r.thresholds.FirstToken
}

func (idx *Index) uniqueLastNameTeam(normalized, team string, pos player.Position) (string, bool) {
	team = strings.ToUpper(strings.TrimSpace(team))
	if team == "" || team == freeAgentTeam || pos == "" {
		return "", false
	}
	last := lastToken(normalized)
	if last == "" {
		return "", false
	}

	found := ""
	for _, i := range idx.byPosition[pos] {
		c := idx.candidates[i]
		if c.lastName != last || c.team != team {
			continue
		}
		if found != "" {
			// ambiguous
			return "", false
		}
		found = c.id
	}
	return found, found != ""
}

// BestRecord finds the record at pos whose name best matches name, under the
// same gates as the fuzzy step. It returns the record's index.
func (r *Resolver) BestRecord(name string, pos player.Position, records []player.Record) (int, bool) {
	normalized := NormalizeName(name)
	if normalized == "" {
		return -1, false
	}

	best, bestScore := -1, -1
	bestName := ""
	for i, rec := range records {
		if rec.Position != pos {
			continue
		}
		candidate := NormalizeName(rec.Name)
		if candidate == "" {
			continue
		}
		score := r.scorer.TokenSortRatio(normalized, candidate)
		if score > bestScore {
			best, bestScore, bestName = i, score, candidate
		}
	}
	if best < 0 || bestScore < r.thresholds.FullName {
		return -1, false
	}
	if !r.firstTokensAgree(normalized, bestName) {
		return -1, false
	}
	return best, true
}
