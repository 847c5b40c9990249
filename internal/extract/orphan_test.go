package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstack-labs/idverify/constants"
)

const pageHeight = 1000

// centered builds a fragment whose vertical center sits at rel*pageHeight.
func centered(text string, rel float64, conf float32) TextFragment {
	center := int(rel * pageHeight)
	return frag(text, 100, center-15, 400, center+15, conf)
}

func TestGuessUppercaseBodyText(t *testing.T) {
	g := NewNameGuesser(DefaultCatalog())

	// Fully upper-case, so no title-case reward; the body-zone score alone
	// (+20) keeps it strictly positive.
	name, ok := g.Guess([]TextFragment{centered("RAVI KUMAR", 0.3, 0.8)}, Result{}, pageHeight)
	require.True(t, ok)
	assert.Equal(t, "RAVI KUMAR", name)
}

func TestGuessPrefersTitleCase(t *testing.T) {
	g := NewNameGuesser(DefaultCatalog())

	frags := []TextFragment{
		centered("RAVI KUMAR", 0.3, 0.8),
		centered("Priya", 0.3, 0.8), // +20 zone, +10 title case
	}
	name, ok := g.Guess(frags, Result{}, pageHeight)
	require.True(t, ok)
	assert.Equal(t, "Priya", name)
}

func TestGuessPenalties(t *testing.T) {
	g := NewNameGuesser(DefaultCatalog())

	tests := []struct {
		name string
		frag TextFragment
	}{
		{name: "banner zone", frag: centered("Ravi Kumar", 0.05, 0.9)},
		{name: "institutional keyword", frag: centered("Springfield University", 0.3, 0.9)},
		{name: "other field vocabulary", frag: centered("Phone Directory", 0.3, 0.9)},
		{name: "digit bearing", frag: centered("Flat 42", 0.3, 0.9)},
		{name: "too short", frag: centered("Ra", 0.3, 0.9)},
		{name: "low confidence", frag: centered("Ravi Kumar", 0.3, 0.35)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := g.Guess([]TextFragment{tt.frag}, Result{}, pageHeight)
			assert.False(t, ok, "max score must not be strictly positive")
		})
	}
}

func TestGuessSkipsClaimedValues(t *testing.T) {
	g := NewNameGuesser(DefaultCatalog())

	resolved := Result{constants.FieldAddress: "12/4 Gandhi Marg, Pune"}
	frags := []TextFragment{
		centered("Gandhi Marg", 0.3, 0.9), // substring of the resolved address
		centered("Ravi Kumar", 0.35, 0.9),
	}
	name, ok := g.Guess(frags, resolved, pageHeight)
	require.True(t, ok)
	assert.Equal(t, "Ravi Kumar", name)
}

func TestGuessNothingOnEmptyOrFlatPage(t *testing.T) {
	g := NewNameGuesser(DefaultCatalog())

	_, ok := g.Guess(nil, Result{}, pageHeight)
	assert.False(t, ok)

	// Mid-page text outside the body zone scores zero, which is not enough.
	_, ok = g.Guess([]TextFragment{centered("RAVI KUMAR", 0.7, 0.9)}, Result{}, pageHeight)
	assert.False(t, ok)
}
