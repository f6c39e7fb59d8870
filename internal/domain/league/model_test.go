package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRoster_DedupesAndDropsBlanks(t *testing.T) {
	t.Parallel()

	r := NewRoster(" owner-1 ", []string{"4046", "", "4046", " 6794 "})
	assert.Equal(t, "owner-1", r.OwnerID)
	assert.Equal(t, []string{"4046", "6794"}, r.PlayerIDs)
	assert.True(t, r.Contains("6794"))
	assert.False(t, r.Contains("1"))
}

func TestSnapshot_OwnershipAndRosterLookup(t *testing.T) {
	t.Parallel()

	s := Snapshot{
		LeagueID: "L1",
		Rosters: []Roster{
			NewRoster("a", []string{"1", "2"}),
			NewRoster("b", []string{"3"}),
		},
	}
	own := s.Ownership()
	assert.True(t, own.Owns("3"))
	assert.False(t, own.Owns("4"))

	r, ok := s.RosterFor("b")
	assert.True(t, ok)
	assert.Equal(t, []string{"3"}, r.PlayerIDs)

	_, ok = s.RosterFor("c")
	assert.False(t, ok)
	assert.NoError(t, s.Validate())
	assert.Error(t, Snapshot{}.Validate())
}
