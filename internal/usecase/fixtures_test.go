package usecase

import (
	"github.com/riskibarqy/fantasy-lineup/internal/domain/league"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/lineup"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
)

const (
	testLeagueID = "league-2025"
	testOwnerID  = "owner-me"
	rivalOwnerID = "owner-rival"
)

func canonical(id, name string, pos player.Position, team string) player.Canonical {
	return player.Canonical{ID: id, FullName: name, Team: team, Position: pos}
}

func defense(abbr, city, nickname string) player.Canonical {
	return player.Canonical{ID: abbr, FirstName: city, LastName: nickname, Team: abbr, Position: player.PositionDEF}
}

func testLeagueDirectory() player.Directory {
	entries := []player.Canonical{
		canonical("q1", "Josh Allen", player.PositionQB, "BUF"),
		canonical("q2", "Jared Goff", player.PositionQB, "DET"),
		canonical("q3", "Baker Mayfield", player.PositionQB, "TB"),
		canonical("r1", "Bijan Robinson", player.PositionRB, "ATL"),
		canonical("r2", "Kyren Williams", player.PositionRB, "LAR"),
		canonical("r3", "Rhamondre Stevenson", player.PositionRB, "NE"),
		canonical("r4", "De'Von Achane", player.PositionRB, "MIA"),
		canonical("w1", "Ja'Marr Chase", player.PositionWR, "CIN"),
		canonical("w2", "Garrett Wilson", player.PositionWR, "NYJ"),
		canonical("w3", "Rashid Shaheed", player.PositionWR, "NO"),
		canonical("w4", "Jaxon Smith-Njigba", player.PositionWR, "SEA"),
		canonical("t1", "Travis Kelce", player.PositionTE, "KC"),
		canonical("t2", "Sam LaPorta", player.PositionTE, "DET"),
		canonical("t3", "Tucker Kraft", player.PositionTE, "GB"),
		canonical("k1", "Harrison Butker", player.PositionK, "KC"),
		canonical("k2", "Jake Elliott", player.PositionK, "PHI"),
		defense("BUF", "Buffalo", "Bills"),
		defense("SF", "San Francisco", "49ers"),
		defense("DAL", "Dallas", "Cowboys"),
	}
	dir := make(player.Directory, len(entries))
	for _, c := range entries {
		dir[c.ID] = c
	}
	return dir
}

func testRoster() league.Roster {
	return league.NewRoster(testOwnerID, []string{"q1", "r1", "r2", "r3", "w1", "w2", "w3", "t1", "k1", "BUF"})
}

func testSnapshot() league.Snapshot {
	return league.Snapshot{
		LeagueID: testLeagueID,
		Name:     "Test League",
		Rosters: []league.Roster{
			testRoster(),
			league.NewRoster(rivalOwnerID, []string{"q2", "t2", "SF"}),
		},
		Requirements: testRequirements(),
	}
}

func testRequirements() lineup.Requirements {
	return lineup.FromRosterPositions([]string{"QB", "RB", "RB", "WR", "WR", "TE", "FLEX", "K", "DEF", "BN", "BN"})
}

func ranked(name, team, label string, rank int) player.Record {
	return player.Record{
		Name:         name,
		Team:         team,
		Position:     player.BasePosition(label),
		PositionRank: label,
		Rank:         rank,
	}
}

func testWeeklyRankings() player.WeeklyRankings {
	return player.WeeklyRankings{
		Offense: []player.Record{
			ranked("Josh Allen", "BUF", "QB1", 1),
			ranked("Ja'Marr Chase", "CIN", "WR1", 2),
			ranked("Bijan Robinson", "ATL", "RB1", 3),
			ranked("Jared Goff", "DET", "QB2", 4),
			ranked("De'Von Achane", "MIA", "RB2", 5),
			ranked("Kyren Williams", "LAR", "RB3", 6),
			ranked("Garrett Wilson", "NYJ", "WR2", 7),
			ranked("Jaxon Smith-Njigba", "SEA", "WR3", 8),
			ranked("Travis Kelce", "KC", "TE1", 9),
			ranked("Sam LaPorta", "DET", "TE2", 10),
			ranked("Rhamondre Stevenson", "NE", "RB4", 11),
			ranked("Rashid Shaheed", "NO", "WR4", 12),
			ranked("Unknown Guy", "FA", "WR5", 13),
		},
		Defenses: []player.Record{
			ranked("San Francisco 49ers", "SF", "DEF1", 1),
			ranked("Dallas Cowboys", "DAL", "DEF2", 2),
			ranked("Buffalo Bills", "BUF", "DEF3", 3),
			ranked("Cleveland Browns", "CLE", "DEF4", 4),
		},
		Kickers: []player.Record{
			ranked("Harrison Butker", "KC", "K1", 1),
			ranked("Jake Elliott", "PHI", "K2", 2),
			ranked("Brandon Aubrey", "DAL", "K3", 3),
		},
	}
}

func testRestOfSeasonRankings() []player.Record {
	return []player.Record{
		ranked("Ja'Marr Chase", "CIN", "WR1", 1),
		ranked("Bijan Robinson", "ATL", "RB1", 2),
		ranked("Josh Allen", "BUF", "QB1", 3),
		ranked("De'Von Achane", "MIA", "RB2", 4),
		ranked("Jaxon Smith-Njigba", "SEA", "WR2", 5),
		ranked("Kyren Williams", "LAR", "RB3", 6),
		ranked("Garrett Wilson", "NYJ", "WR3", 7),
		ranked("Sam LaPorta", "DET", "TE1", 8),
		ranked("Travis Kelce", "KC", "TE2", 9),
		ranked("Jared Goff", "DET", "QB2", 10),
		ranked("Tucker Kraft", "GB", "TE3", 11),
		ranked("Baker Mayfield", "TB", "QB3", 12),
		ranked("Rashid Shaheed", "NO", "WR4", 15),
		ranked("Rhamondre Stevenson", "NE", "RB4", 20),
	}
}

func testLineupInput() LineupInput {
	snapshot := testSnapshot()
	return LineupInput{
		Rankings:     testWeeklyRankings(),
		Roster:       testRoster(),
		Directory:    testLeagueDirectory(),
		Requirements: snapshot.Requirements,
		Ownership:    snapshot.Ownership(),
	}
}

func assignmentIDs(in []lineup.Assignment) []string {
	out := make([]string, 0, len(in))
	for _, a := range in {
		out = append(out, a.PlayerID)
	}
	return out
}

func entryIDs(in []lineup.Entry) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		out = append(out, e.PlayerID)
	}
	return out
}
