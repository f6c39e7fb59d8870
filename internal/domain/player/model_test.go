package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasePosition(t *testing.T) {
	t.Parallel()

	cases := map[string]Position{
		"WR12": PositionWR,
		"qb1":  PositionQB,
		"TE":   PositionTE,
		"DST3": PositionDEF,
		"K10":  PositionK,
		"RB":   PositionRB,
	}
	for label, want := range cases {
		assert.Equal(t, want, BasePosition(label), label)
	}
}

func TestParsePosition_UnknownKeepsUppercasedValue(t *testing.T) {
	t.Parallel()

	pos, ok := ParsePosition(" lb ")
	assert.False(t, ok)
	assert.Equal(t, Position("LB"), pos)
}

func TestCanonical_DisplayNameFallsBackToFirstAndLast(t *testing.T) {
	t.Parallel()

	def := Canonical{ID: "KC", FirstName: "Kansas City", LastName: "Chiefs", Position: PositionDEF}
	assert.Equal(t, "Kansas City Chiefs", def.DisplayName())

	named := Canonical{ID: "4046", FullName: "Patrick Mahomes", FirstName: "Pat"}
	assert.Equal(t, "Patrick Mahomes", named.DisplayName())
}

func TestDirectory_Subset(t *testing.T) {
	t.Parallel()

	dir := Directory{
		"1": {ID: "1", FullName: "A"},
		"2": {ID: "2", FullName: "B"},
	}
	sub := dir.Subset([]string{"2", "missing"})
	assert.Len(t, sub, 1)
	assert.Contains(t, sub, "2")
	assert.Equal(t, []string{"1", "2"}, dir.SortedIDs())
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Record{Name: "Josh Allen", Position: PositionQB, Rank: 1}.Validate())
	assert.Error(t, Record{Name: "", Position: PositionQB, Rank: 1}.Validate())
	assert.Error(t, Record{Name: "X", Position: "LB", Rank: 1}.Validate())
	assert.Error(t, Record{Name: "X", Position: PositionQB}.Validate())
}
