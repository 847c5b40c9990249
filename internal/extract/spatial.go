package extract

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// Relation tags how a candidate sits relative to its label.
type Relation string

const (
	RelationRightOf Relation = "right-of"
	RelationBelow   Relation = "below"
)

// Candidate is a fragment spatially proposed as the value for a label.
// Transient: produced, ranked, and discarded within one label resolution.
type Candidate struct {
	Text     string
	Score    int
	Relation Relation
}

// Layout thresholds, in pixels at ~300 DPI scans. Right-of outscores below by
// construction (base 1000 vs 800): on label/value grids the value usually sits
// on the same line.
const (
	minCandidateConfidence = 0.3
	labelEchoSimilarity    = 0.6
	maxRightGap            = 600
	rightOfBase            = 1000
	belowBase              = 800
	sameLineHeightFactor   = 1.5
	belowReachFactor       = 4.5
	overlapTolerance       = 20
)

// Associator ranks the fragments of a document as value candidates for one
// label, by spatial relation and distance. Stateless.
type Associator struct{}

// Rank returns candidates for label, highest score first. A fragment may
// qualify under both relations and then appears twice with different scores.
// Ties keep the original fragment scan order (stable sort).
func (Associator) Rank(label TextFragment, all []TextFragment) []Candidate {
	labelHeight := float64(label.Box.Height())
	var out []Candidate

	for _, frag := range all {
		if frag.Box == label.Box && frag.Text == label.Text {
			continue
		}
		if frag.Confidence < minCandidateConfidence {
			continue
		}
		// OCR often detects a label twice; a near-copy of the label text is
		// never its value.
		if similarity(frag.Text, label.Text) > labelEchoSimilarity {
			continue
		}

		// Right-of: left edge past the label's, vertical centers on the same line.
		if frag.Box.Left > label.Box.Left &&
			abs(frag.Box.CenterY()-label.Box.CenterY()) < sameLineHeightFactor*labelHeight {
			gap := frag.Box.Left - label.Box.Right
			if gap < maxRightGap {
				out = append(out, Candidate{Text: frag.Text, Score: rightOfBase - gap, Relation: RelationRightOf})
			}
		}

		// Below: top edge under the label within reach, horizontal spans
		// overlapping (or nearly).
		if frag.Box.Top > label.Box.Bottom {
			gap := frag.Box.Top - label.Box.Bottom
			if float64(gap) < belowReachFactor*labelHeight &&
				frag.Box.Left < label.Box.Right+overlapTolerance &&
				frag.Box.Right > label.Box.Left-overlapTolerance {
				out = append(out, Candidate{Text: frag.Text, Score: belowBase - gap, Relation: RelationBelow})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// similarity is a normalized edit-distance ratio in [0,1].
func similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	return levenshtein.Similarity(a, b, nil)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
