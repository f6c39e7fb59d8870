// Package sleeper decodes Sleeper API payloads: the NFL player directory,
// league rosters and league settings.
package sleeper

import (
	"sort"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/league"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
)

var validate = validator.New()

type directoryEntry struct {
	ID       string `validate:"required"`
	Position string `validate:"omitempty,max=8"`
}

// LeagueInfo is the subset of a league object the advisor uses.
type LeagueInfo struct {
	LeagueID     string
	Name         string
	Requirements lineup.Requirements
}

// DecodeDirectory decodes the players/nfl payload, an object keyed by player
// id. Entries that are not objects, or carry no usable id, are skipped.
func DecodeDirectory(data []byte) (player.Directory, error) {
	var raw map[string]any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, crerr.Wrap(err, "decode sleeper directory")
	}

	dir := make(player.Directory, len(raw))
	for key, value := range raw {
		obj, ok := value.(map[string]any)
		if !ok {
			continue
		}
		id := asString(lookup(obj, "player_id"))
		if id == "" {
			id = strings.TrimSpace(key)
		}
		pos := strings.ToUpper(asString(lookup(obj, "position")))
		if validate.Struct(directoryEntry{ID: id, Position: pos}) != nil {
			continue
		}
		if parsed, ok := player.ParsePosition(pos); ok {
			pos = string(parsed)
		}

		dir[id] = player.Canonical{
			ID:             id,
			FullName:       asString(lookup(obj, "full_name")),
			SearchFullName: asString(lookup(obj, "search_full_name")),
			FirstName:      asString(lookup(obj, "first_name")),
			LastName:       asString(lookup(obj, "last_name")),
			Team:           strings.ToUpper(asString(lookup(obj, "team"))),
			Position:       player.Position(pos),
			Status:         asString(lookup(obj, "status")),
			InjuryStatus:   asString(lookup(obj, "injury_status")),
			InjuryNotes:    asString(lookup(obj, "injury_notes")),
		}
	}
	return dir, nil
}

// DecodeRosters decodes a league's rosters list. A roster whose players field
// is missing or not a list is kept with no players; entries that are not
// objects are skipped.
func DecodeRosters(data []byte) ([]league.Roster, error) {
	var raw []any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, crerr.Wrap(err, "decode sleeper rosters")
	}

	rosters := make([]league.Roster, 0, len(raw))
	for idx, value := range raw {
		obj, ok := value.(map[string]any)
		if !ok {
			continue
		}
		owner := asString(lookup(obj, "owner_id"))
		if owner == "" {
			// Orphaned rosters have no owner but still hold players.
			if rosterID := asString(lookup(obj, "roster_id")); rosterID != "" {
				owner = "roster:" + rosterID
			} else {
				owner = "roster:" + strconv.Itoa(idx+1)
			}
		}
		var ids []string
		if list, ok := lookup(obj, "players").([]any); ok {
			ids = make([]string, 0, len(list))
			for _, item := range list {
				if id := asString(item); id != "" {
					ids = append(ids, id)
				}
			}
		}
		rosters = append(rosters, league.NewRoster(owner, ids))
	}
	return rosters, nil
}

// DecodeRequirements reads roster_positions from a league object.
func DecodeRequirements(data []byte) (lineup.Requirements, error) {
	info, err := DecodeLeague(data)
	if err != nil {
		return nil, err
	}
	return info.Requirements, nil
}

func DecodeLeague(data []byte) (LeagueInfo, error) {
	var raw map[string]any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return LeagueInfo{}, crerr.Wrap(err, "decode sleeper league")
	}

	labels := make([]string, 0)
	if list, ok := lookup(raw, "roster_positions").([]any); ok {
		for _, item := range list {
			if label := asString(item); label != "" {
				labels = append(labels, label)
			}
		}
	}
	return LeagueInfo{
		LeagueID:     asString(lookup(raw, "league_id")),
		Name:         asString(lookup(raw, "name")),
		Requirements: lineup.FromRosterPositions(labels),
	}, nil
}

// DecodeSnapshot combines a league object and its rosters payload.
func DecodeSnapshot(leaguePayload, rostersPayload []byte) (league.Snapshot, error) {
	info, err := DecodeLeague(leaguePayload)
	if err != nil {
		return league.Snapshot{}, err
	}
	rosters, err := DecodeRosters(rostersPayload)
	if err != nil {
		return league.Snapshot{}, err
	}
	sort.SliceStable(rosters, func(i, j int) bool { return rosters[i].OwnerID < rosters[j].OwnerID })

	snapshot := league.Snapshot{
		LeagueID:     info.LeagueID,
		Name:         info.Name,
		Rosters:      rosters,
		Requirements: info.Requirements,
	}
	if err := snapshot.Validate(); err != nil {
		return league.Snapshot{}, crerr.Wrapf(err, "sleeper league %q", info.LeagueID)
	}
	return snapshot, nil
}

func lookup(src map[string]any, key string) any {
	if src == nil {
		return nil
	}
	return src[key]
}

func asString(value any) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return ""
	}
}
