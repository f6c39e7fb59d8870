package identity

import (
	"strings"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
)

// MatchesDefense reports whether a ranked defense row (name such as
// "Kansas City Chiefs", team such as "KC") refers to the directory entry c.
func MatchesDefense(c player.Canonical, name, team string) bool {
	name = strings.TrimSpace(name)
	team = strings.TrimSpace(team)
	dirTeam := strings.TrimSpace(c.Team)
	display := c.DisplayName()

	switch {
	case team != "" && strings.EqualFold(dirTeam, team):
		return true
	case name != "" && dirTeam == name:
		return true
	case name != "" && display == name:
		return true
	case team != "" && strings.Contains(display, team):
		return true
	case name != "" && display != "" && strings.Contains(display, name):
		return true
	}
	return false
}

// MatchesKicker compares a ranked kicker name to the directory entry c by
// exact or normalized name. Kickers never match on team alone.
func MatchesKicker(c player.Canonical, name string) bool {
	display := c.DisplayName()
	if display == "" || strings.TrimSpace(name) == "" {
		return false
	}
	if display == name {
		return true
	}
	normalized := NormalizeName(name)
	return normalized != "" && NormalizeName(display) == normalized
}

// MatchesSpecialTeams dispatches to the defense or kicker rule by position.
func MatchesSpecialTeams(c player.Canonical, rec player.Record) bool {
	switch rec.Position {
	case player.PositionDEF:
		return MatchesDefense(c, rec.Name, rec.Team)
	case player.PositionK:
		return MatchesKicker(c, rec.Name)
	default:
		return false
	}
}
