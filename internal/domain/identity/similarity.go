package identity

import (
	"math"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// Scorer rates string similarity on a 0-100 scale.
type Scorer interface {
	Ratio(a, b string) int
	TokenSortRatio(a, b string) int
}

// IndelScorer scores by longest common subsequence, the normalized indel
// similarity: round(200 * lcs / (len(a) + len(b))).
type IndelScorer struct{}

func (IndelScorer) Ratio(a, b string) int {
	return Ratio(a, b)
}

func (IndelScorer) TokenSortRatio(a, b string) int {
	return TokenSortRatio(a, b)
}

// Ratio compares a and b rune by rune. An empty side scores 0.
func Ratio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	lcs := edlib.LCS(a, b)
	return int(math.RoundToEven(200 * float64(lcs) / float64(total)))
}

// TokenSortRatio lowercases both sides, replaces punctuation with spaces and
// compares the alphabetically sorted tokens, so word order does not matter.
func TokenSortRatio(a, b string) int {
	return Ratio(sortedTokens(a), sortedTokens(b))
}

func sortedTokens(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return ' '
		}
	}, s)
	tokens := strings.Fields(cleaned)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
