package league

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/lineup"
)

// Roster is one league member's current player ids.
type Roster struct {
	OwnerID   string   `json:"owner_id"`
	PlayerIDs []string `json:"players"`
}

// NewRoster keeps the first occurrence of each non-blank id.
func NewRoster(ownerID string, playerIDs []string) Roster {
	seen := make(map[string]struct{}, len(playerIDs))
	ids := make([]string, 0, len(playerIDs))
	for _, id := range playerIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return Roster{OwnerID: strings.TrimSpace(ownerID), PlayerIDs: ids}
}

func (r Roster) Contains(playerID string) bool {
	for _, id := range r.PlayerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

func (r Roster) Empty() bool {
	return len(r.PlayerIDs) == 0
}

// Ownership is the set of canonical ids rostered anywhere in a league.
type Ownership map[string]struct{}

func OwnershipFromRosters(rosters []Roster) Ownership {
	out := make(Ownership)
	for _, r := range rosters {
		for _, id := range r.PlayerIDs {
			out[id] = struct{}{}
		}
	}
	return out
}

func (o Ownership) Owns(playerID string) bool {
	_, ok := o[playerID]
	return ok
}

// Snapshot is a league's rosters and lineup requirements at one point in time.
type Snapshot struct {
	LeagueID     string              `json:"league_id"`
	Name         string              `json:"name,omitempty"`
	Rosters      []Roster            `json:"rosters"`
	Requirements lineup.Requirements `json:"requirements"`
}

func (s Snapshot) Validate() error {
	if strings.TrimSpace(s.LeagueID) == "" {
		return fmt.Errorf("league id is required")
	}
	for _, r := range s.Rosters {
		if r.OwnerID == "" {
			return fmt.Errorf("roster owner id is required")
		}
	}

	return nil
}

// RosterFor returns the roster owned by ownerID.
func (s Snapshot) RosterFor(ownerID string) (Roster, bool) {
	for _, r := range s.Rosters {
		if r.OwnerID == ownerID {
			return r, true
		}
	}
	return Roster{}, false
}

func (s Snapshot) Ownership() Ownership {
	return OwnershipFromRosters(s.Rosters)
}
