package suggest

import (
	"regexp"

	"github.com/hbollon/go-edlib"
)

var numberRegex = regexp.MustCompile(`\b(\d+)\b`)

// Confidence grades a fuzzy match.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Match is the best suggestion for a term.
type Match struct {
	Suggestion Suggestion
	Score      float64
	Confidence Confidence
}

// Found reports whether anything matched well enough to use.
func (m Match) Found() bool {
	return m.Confidence > ConfidenceNone
}

// BestMatch ranks suggestions by Jaro-Winkler similarity of their folded
// titles against term. Ties keep upstream order, which is by relevance.
// Sequel numbers that agree earn a small bonus; numbers that disagree cost.
func BestMatch(term string, candidates []Suggestion) Match {
	best := Match{Confidence: ConfidenceNone}
	if len(candidates) == 0 {
		return best
	}

	want := normalizeTitle(term)
	wantNums := numberRegex.FindAllString(want, -1)

	for _, c := range candidates {
		got := normalizeTitle(c.Title)
		score := float64(edlib.JaroWinklerSimilarity(want, got))
		score = adjustForNumbers(score, wantNums, numberRegex.FindAllString(got, -1))

		if score > best.Score {
			best.Suggestion = c
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best = Match{Score: best.Score, Confidence: ConfidenceNone}
	}
	return best
}

func adjustForNumbers(score float64, want, got []string) float64 {
	if len(want) == 0 {
		return score
	}
	if len(got) == 0 {
		return score * 0.85
	}

	have := make(map[string]bool, len(got))
	for _, n := range got {
		have[n] = true
	}
	for _, n := range want {
		if have[n] {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
