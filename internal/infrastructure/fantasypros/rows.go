// Package fantasypros converts FantasyPros ranking sheet rows into player
// records. Rows arrive as header -> cell maps, one per CSV line.
package fantasypros

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fantasy-lineup/internal/domain/player"
)

const (
	colRank      = "RK"
	colTiers     = "TIERS"
	colName      = "PLAYER NAME"
	colTeam      = "TEAM"
	colPosition  = "POS"
	colByeWeek   = "BYE WEEK"
	colBye       = "BYE"
	colSOSSeason = "SOS SEASON"
	colSOS       = "SOS"
	colECRDotADP = "ECR VS. ADP"
	colECRADP    = "ECR VS ADP"
)

var (
	signedIntPattern     = regexp.MustCompile(`-?\d+`)
	digitsPattern        = regexp.MustCompile(`\d+`)
	positionLabelPattern = regexp.MustCompile(`^([A-Z/]+)(\d*)$`)

	validate = validator.New()
)

type rowInput struct {
	Name     string          `validate:"required"`
	Team     string          `validate:"omitempty,max=8"`
	Position player.Position `validate:"required,oneof=QB RB WR TE K DEF"`
	Rank     int             `validate:"gt=0"`
	Tier     int             `validate:"gte=0"`
}

// ParseIntField reads an integer cell. Blank, "-", "NA" and "N/A" yield def;
// a leading "+" is allowed; otherwise the first signed integer in the cell is
// used.
func ParseIntField(value string, def int) int {
	s := strings.TrimSpace(value)
	switch strings.ToUpper(s) {
	case "", "-", "NA", "N/A":
		return def
	}
	s = strings.TrimPrefix(s, "+")
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	match := signedIntPattern.FindString(s)
	if match == "" {
		return def
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return def
	}
	return n
}

// ParseWeeklyRows converts an offensive weekly sheet. Rank is the 1-based row
// index in rows; rows that fail validation are skipped.
func ParseWeeklyRows(rows []map[string]string) []player.Record {
	out := make([]player.Record, 0, len(rows))
	for idx, row := range rows {
		label := cell(row, colPosition)
		rec := player.Record{
			Name:         cell(row, colName),
			Team:         cell(row, colTeam),
			Position:     player.BasePosition(label),
			PositionRank: label,
			Rank:         idx + 1,
		}
		if !valid(rec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// ParseSpecialTeamsRows converts a DST or K weekly sheet. Those sheets carry no
// position column, so every row gets position.
func ParseSpecialTeamsRows(rows []map[string]string, position player.Position) []player.Record {
	out := make([]player.Record, 0, len(rows))
	for idx, row := range rows {
		rec := player.Record{
			Name:     cell(row, colName),
			Team:     cell(row, colTeam),
			Position: position,
			Rank:     idx + 1,
		}
		if !valid(rec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// ParseRestOfSeasonRows converts a rest-of-season sheet using its RK column.
func ParseRestOfSeasonRows(rows []map[string]string) []player.Record {
	out := make([]player.Record, 0, len(rows))
	for _, row := range rows {
		rank, err := strconv.Atoi(cell(row, colRank))
		if err != nil {
			continue
		}
		label := cell(row, colPosition)
		rec := player.Record{
			Name:         cell(row, colName),
			Team:         cell(row, colTeam),
			Position:     player.BasePosition(label),
			PositionRank: label,
			Rank:         rank,
		}
		if !valid(rec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// ParseDraftRows converts a full season draft sheet. The position cell must
// carry a positional rank ("WR12"), and the tier must be numeric.
func ParseDraftRows(rows []map[string]string) []player.Record {
	out := make([]player.Record, 0, len(rows))
	for _, row := range rows {
		label := strings.ToUpper(cell(row, colPosition))
		match := positionLabelPattern.FindStringSubmatch(label)
		if match == nil || match[2] == "" {
			continue
		}
		rank, err := strconv.Atoi(cell(row, colRank))
		if err != nil {
			continue
		}
		tier, err := strconv.Atoi(cell(row, colTiers))
		if err != nil {
			continue
		}
		pos, _ := player.ParsePosition(match[1])

		rec := player.Record{
			Name:               cell(row, colName),
			Team:               cell(row, colTeam),
			Position:           pos,
			PositionRank:       label,
			Rank:               rank,
			Tier:               tier,
			ByeWeek:            ParseIntField(cellAny(row, colByeWeek, colBye), 0),
			StrengthOfSchedule: strengthOfSchedule(cellAny(row, colSOSSeason, colSOS)),
			ECRvsADP:           ParseIntField(cellAny(row, colECRDotADP, colECRADP), 0),
		}
		if !valid(rec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// strengthOfSchedule renders "4 out of 5 stars" as "4/5".
func strengthOfSchedule(raw string) string {
	digits := digitsPattern.FindString(raw)
	if digits == "" {
		return raw
	}
	return digits + "/5"
}

func valid(rec player.Record) bool {
	return validate.Struct(rowInput{
		Name:     rec.Name,
		Team:     rec.Team,
		Position: rec.Position,
		Rank:     rec.Rank,
		Tier:     rec.Tier,
	}) == nil
}

func cell(row map[string]string, key string) string {
	return strings.Trim(strings.TrimSpace(row[key]), `"`)
}

func cellAny(row map[string]string, keys ...string) string {
	for _, key := range keys {
		if _, ok := row[key]; ok {
			return cell(row, key)
		}
	}
	return ""
}
