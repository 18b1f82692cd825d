package wordmatch

import (
	"strings"

	"github.com/samber/lo"
)

// DefaultMaxEditDistance is the per-token typo tolerance
const DefaultMaxEditDistance = 2

// articles carry no signal and are stripped from both sides
var articles = []string{"a", "an", "the"}

// Matcher pre-filters guesses for word completeness before the
// correctness oracle is consulted. It is a necessary, not sufficient,
// check: passing it does not make a guess correct, but failing it means
// the guess is missing a required word and the oracle call is skipped.
type Matcher struct {
	maxEditDistance int
}

// Config for the word matcher
type Config struct {
	// MaxEditDistance is the per-token typo tolerance.
	// Zero means DefaultMaxEditDistance.
	MaxEditDistance int
}

// New creates a new word matcher
func New(cfg *Config) *Matcher {
	maxDistance := DefaultMaxEditDistance
	if cfg != nil && cfg.MaxEditDistance > 0 {
		maxDistance = cfg.MaxEditDistance
	}

	return &Matcher{
		maxEditDistance: maxDistance,
	}
}

// significantTokens lower-cases, splits on whitespace and drops articles
func significantTokens(s string) []string {
	tokens := strings.Fields(strings.ToLower(s))

	return lo.Filter(tokens, func(token string, _ int) bool {
		return !lo.Contains(articles, token)
	})
}

// HasAllSignificantWords reports whether every significant word of the
// answer has a matching token in the guess, where matching means exact
// equality or edit distance within the typo tolerance. Token order and
// extra guess tokens are irrelevant.
func (m *Matcher) HasAllSignificantWords(answer, guess string) bool {
	return len(m.MissingWords(answer, guess)) == 0
}

// MissingWords returns the significant answer words that have no
// matching token in the guess, in answer order. An empty result means
// the guess passes the completeness pre-filter.
func (m *Matcher) MissingWords(answer, guess string) []string {
	guessTokens := significantTokens(guess)

	return lo.Filter(significantTokens(answer), func(want string, _ int) bool {
		return !lo.SomeBy(guessTokens, func(got string) bool {
			return got == want || Levenshtein(got, want) <= m.maxEditDistance
		})
	})
}

// Levenshtein returns the edit distance between a and b: the minimum
// number of single-character inserts, deletes and substitutions needed
// to turn one into the other.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i

		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}

		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
