package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frag(text string, left, top, right, bottom int, conf float32) TextFragment {
	return TextFragment{
		Box:        Rect{Left: left, Top: top, Right: right, Bottom: bottom},
		Text:       text,
		Confidence: conf,
	}
}

func TestRankRightOfBeatsBelow(t *testing.T) {
	label := frag("Name", 100, 100, 200, 120, 0.95)
	right := frag("Ananya Sharma", 250, 100, 400, 120, 0.9) // gap 50 on the same line
	below := frag("Ravi Kumar", 100, 170, 250, 190, 0.9)    // gap 50 straight below

	var a Associator
	cands := a.Rank(label, []TextFragment{label, below, right})
	require.Len(t, cands, 2)

	assert.Equal(t, "Ananya Sharma", cands[0].Text)
	assert.Equal(t, RelationRightOf, cands[0].Relation)
	assert.Equal(t, 950, cands[0].Score)

	assert.Equal(t, "Ravi Kumar", cands[1].Text)
	assert.Equal(t, RelationBelow, cands[1].Relation)
	assert.Equal(t, 750, cands[1].Score)
}

func TestRankSkipsLowConfidenceAndLabelEcho(t *testing.T) {
	label := frag("Phone", 100, 100, 180, 120, 0.95)
	noisy := frag("9876543210", 220, 100, 380, 120, 0.2) // below the confidence floor
	echo := frag("Phone", 220, 100, 300, 120, 0.9)       // OCR duplicated the label
	good := frag("9876543210", 420, 100, 580, 120, 0.9)

	var a Associator
	cands := a.Rank(label, []TextFragment{label, noisy, echo, good})
	require.Len(t, cands, 1)
	assert.Equal(t, "9876543210", cands[0].Text)
	assert.Equal(t, 1000-(420-180), cands[0].Score)
}

func TestRankRightOfGapThreshold(t *testing.T) {
	label := frag("Address", 100, 100, 220, 120, 0.95)
	tooFar := frag("MG Road", 900, 100, 1000, 120, 0.9) // gap 680, past the cutoff

	var a Associator
	cands := a.Rank(label, []TextFragment{label, tooFar})
	assert.Empty(t, cands)
}

func TestRankBelowNeedsOverlapAndReach(t *testing.T) {
	label := frag("Address", 100, 100, 220, 120, 0.95) // height 20

	var a Associator

	// Horizontally disjoint beyond tolerance: not a below candidate.
	offside := frag("Bengaluru", 500, 150, 640, 170, 0.9)
	assert.Empty(t, a.Rank(label, []TextFragment{label, offside}))

	// Within the 20px tolerance counts as overlapping.
	nearEdge := frag("Bengaluru", 230, 150, 380, 170, 0.9)
	cands := a.Rank(label, []TextFragment{label, nearEdge})
	require.Len(t, cands, 1)
	assert.Equal(t, RelationBelow, cands[0].Relation)

	// Vertically past 4.5x the label height: out of reach.
	tooDeep := frag("Bengaluru", 100, 250, 250, 270, 0.9)
	assert.Empty(t, a.Rank(label, []TextFragment{label, tooDeep}))
}

func TestRankFragmentMayQualifyTwice(t *testing.T) {
	// Wide label; a fragment to the lower right can read as both same-line
	// (centers within 1.5x height) and below with horizontal overlap.
	label := frag("Roll No", 100, 100, 300, 140, 0.95) // height 40
	both := frag("A-2021/0457", 310, 150, 480, 190, 0.9)

	var a Associator
	cands := a.Rank(label, []TextFragment{label, both})
	require.Len(t, cands, 2)
	assert.Equal(t, RelationRightOf, cands[0].Relation, "right-of base outranks below")
	assert.Equal(t, RelationBelow, cands[1].Relation)
	assert.Greater(t, cands[0].Score, cands[1].Score)
}

func TestRankStableOrderOnTies(t *testing.T) {
	label := frag("Name", 100, 100, 200, 120, 0.95)
	first := frag("Ananya", 250, 100, 350, 120, 0.9)
	second := frag("Sharma", 250, 100, 350, 120, 0.9) // same geometry, same score

	var a Associator
	cands := a.Rank(label, []TextFragment{label, first, second})
	require.Len(t, cands, 2)
	assert.Equal(t, "Ananya", cands[0].Text, "scan order breaks ties")
	assert.Equal(t, "Sharma", cands[1].Text)
}
