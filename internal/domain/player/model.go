package player

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Position represents the base positions ranked by the weekly and season sheets.
type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionDEF Position = "DEF"
	PositionK   Position = "K"
)

// OffensivePositions lists the positions handled by the slot allocator, in report order.
var OffensivePositions = []Position{PositionQB, PositionRB, PositionWR, PositionTE}

var AllPositions = map[Position]struct{}{
	PositionQB:  {},
	PositionRB:  {},
	PositionWR:  {},
	PositionTE:  {},
	PositionDEF: {},
	PositionK:   {},
}

// ParsePosition maps a raw position string to a Position. Defense aliases resolve to DEF.
func ParsePosition(raw string) (Position, bool) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	switch value {
	case "DST", "D/ST", "DEF", "D":
		return PositionDEF, true
	case "PK":
		return PositionK, true
	}
	if _, ok := AllPositions[Position(value)]; ok {
		return Position(value), true
	}
	return Position(value), false
}

// BasePosition strips the rank suffix from a position label such as "WR12".
func BasePosition(label string) Position {
	value := strings.TrimSpace(label)
	cut := strings.IndexFunc(value, unicode.IsDigit)
	if cut >= 0 {
		value = value[:cut]
	}
	pos, _ := ParsePosition(value)
	return pos
}

func (p Position) IsSpecialTeams() bool {
	return p == PositionDEF || p == PositionK
}

func (p Position) IsOffensive() bool {
	switch p {
	case PositionQB, PositionRB, PositionWR, PositionTE:
		return true
	default:
		return false
	}
}

// Record is one ranked row from a ranking source.
type Record struct {
	Name               string   `json:"name"`
	Team               string   `json:"team"`
	Position           Position `json:"position"`
	PositionRank       string   `json:"position_rank,omitempty"`
	Rank               int      `json:"rank"`
	Tier               int      `json:"tier,omitempty"`
	ByeWeek            int      `json:"bye_week,omitempty"`
	StrengthOfSchedule string   `json:"strength_of_schedule,omitempty"`
	ECRvsADP           int      `json:"ecr_vs_adp,omitempty"`
	CanonicalID        string   `json:"canonical_id,omitempty"`
	Drafted            bool     `json:"drafted,omitempty"`
}

func (r Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("record name is required")
	}
	if _, ok := AllPositions[r.Position]; !ok {
		return fmt.Errorf("invalid record position: %s", r.Position)
	}
	if r.Rank <= 0 {
		return fmt.Errorf("record rank must be greater than zero")
	}

	return nil
}

// SortByRank orders records best-first, keeping source order for equal ranks.
func SortByRank(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Rank < records[j].Rank
	})
}

// Canonical is a player directory entry keyed by the platform's canonical id.
type Canonical struct {
	ID             string   `json:"player_id"`
	FullName       string   `json:"full_name,omitempty"`
	SearchFullName string   `json:"search_full_name,omitempty"`
	FirstName      string   `json:"first_name,omitempty"`
	LastName       string   `json:"last_name,omitempty"`
	Team           string   `json:"team,omitempty"`
	Position       Position `json:"position,omitempty"`
	Status         string   `json:"status,omitempty"`
	InjuryStatus   string   `json:"injury_status,omitempty"`
	InjuryNotes    string   `json:"injury_notes,omitempty"`
}

// DisplayName returns the full name, or first and last name joined when the
// directory omits it (team defenses usually do).
func (c Canonical) DisplayName() string {
	if name := strings.TrimSpace(c.FullName); name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// Directory maps canonical ids to directory entries.
type Directory map[string]Canonical

// SortedIDs returns directory ids in ascending order.
func (d Directory) SortedIDs() []string {
	ids := make([]string, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Subset returns the entries for ids that exist in the directory.
func (d Directory) Subset(ids []string) Directory {
	out := make(Directory, len(ids))
	for _, id := range ids {
		if c, ok := d[id]; ok {
			out[id] = c
		}
	}
	return out
}

// ByPosition returns the entries at one position.
func (d Directory) ByPosition(pos Position) Directory {
	out := make(Directory)
	for id, c := range d {
		if c.Position == pos {
			out[id] = c
		}
	}
	return out
}

// WeeklyRankings groups the three weekly sheets.
type WeeklyRankings struct {
	Offense  []Record
	Defenses []Record
	Kickers  []Record
}

func (w WeeklyRankings) Empty() bool {
	return len(w.Offense) == 0 && len(w.Defenses) == 0 && len(w.Kickers) == 0
}
