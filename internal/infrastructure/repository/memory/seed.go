package memory

import (
	"bytes"
	"embed"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/league"
	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
	"github.com/riskibarqy/fantasy-lineup/internal/infrastructure/fantasypros"
	"github.com/riskibarqy/fantasy-lineup/internal/infrastructure/sleeper"
)

const (
	DemoLeagueID = "demo-league-2025"
	DemoOwnerID  = "demo-owner"
	RivalOwnerID = "rival-owner"
)

//go:embed seed
var seedFS embed.FS

// Seed is the demo data set: a Sleeper-shaped league and directory plus
// FantasyPros-shaped ranking sheets.
type Seed struct {
	Directory    player.Directory
	Leagues      []league.Snapshot
	Weekly       player.WeeklyRankings
	RestOfSeason []player.Record
	Draft        []player.Record
}

func LoadSeed() (Seed, error) {
	var out Seed

	raw, err := seedFS.ReadFile("seed/players.json")
	if err != nil {
		return Seed{}, crerr.Wrap(err, "read seed players")
	}
	if out.Directory, err = sleeper.DecodeDirectory(raw); err != nil {
		return Seed{}, err
	}

	leaguePayload, err := seedFS.ReadFile("seed/league.json")
	if err != nil {
		return Seed{}, crerr.Wrap(err, "read seed league")
	}
	rostersPayload, err := seedFS.ReadFile("seed/rosters.json")
	if err != nil {
		return Seed{}, crerr.Wrap(err, "read seed rosters")
	}
	snapshot, err := sleeper.DecodeSnapshot(leaguePayload, rostersPayload)
	if err != nil {
		return Seed{}, err
	}
	out.Leagues = []league.Snapshot{snapshot}

	offense, err := readSheet("seed/weekly_offense.csv")
	if err != nil {
		return Seed{}, err
	}
	defenses, err := readSheet("seed/weekly_dst.csv")
	if err != nil {
		return Seed{}, err
	}
	kickers, err := readSheet("seed/weekly_k.csv")
	if err != nil {
		return Seed{}, err
	}
	out.Weekly = player.WeeklyRankings{
		Offense:  fantasypros.ParseWeeklyRows(offense),
		Defenses: fantasypros.ParseSpecialTeamsRows(defenses, player.PositionDEF),
		Kickers:  fantasypros.ParseSpecialTeamsRows(kickers, player.PositionK),
	}

	ros, err := readSheet("seed/ros.csv")
	if err != nil {
		return Seed{}, err
	}
	out.RestOfSeason = fantasypros.ParseRestOfSeasonRows(ros)

	draft, err := readSheet("seed/draft.csv")
	if err != nil {
		return Seed{}, err
	}
	out.Draft = fantasypros.ParseDraftRows(draft)

	return out, nil
}

// NewSeededSources builds the in-memory sources over the demo data.
func NewSeededSources() (*DirectoryRepository, *RankingRepository, *LeagueRepository, error) {
	seed, err := LoadSeed()
	if err != nil {
		return nil, nil, nil, err
	}
	return NewDirectoryRepository(seed.Directory),
		NewRankingRepository(seed.Weekly, seed.RestOfSeason, seed.Draft),
		NewLeagueRepository(seed.Leagues),
		nil
}

func readSheet(name string) ([]map[string]string, error) {
	raw, err := seedFS.ReadFile(name)
	if err != nil {
		return nil, crerr.Wrapf(err, "read seed sheet %s", name)
	}
	rows, err := fantasypros.ReadRows(bytes.NewReader(raw))
	if err != nil {
		return nil, crerr.Wrapf(err, "parse seed sheet %s", name)
	}
	return rows, nil
}
