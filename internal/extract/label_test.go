package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstack-labs/idverify/constants"
)

func phoneSpec(t *testing.T) FieldSpec {
	t.Helper()
	spec, ok := DefaultCatalog().Spec(constants.FieldPhone)
	require.True(t, ok)
	return spec
}

func TestResolveInlineColonFastPath(t *testing.T) {
	m := NewMatcher(NewValidator(DefaultCatalog()))

	// The decoy to the right would win spatially; the inline value must be
	// taken without consulting it.
	frags := []TextFragment{
		frag("Phone: 9876543210", 100, 100, 400, 120, 0.9),
		frag("1112223334", 420, 100, 580, 120, 0.9),
	}
	val, ok := m.Resolve(phoneSpec(t), frags)
	require.True(t, ok)
	assert.Equal(t, "9876543210", val)
}

func TestResolveInlineFailureFallsBackToSpatial(t *testing.T) {
	m := NewMatcher(NewValidator(DefaultCatalog()))

	frags := []TextFragment{
		frag("Phone: n/a", 100, 100, 260, 120, 0.9),
		frag("9876543210", 300, 100, 460, 120, 0.9),
	}
	val, ok := m.Resolve(phoneSpec(t), frags)
	require.True(t, ok)
	assert.Equal(t, "9876543210", val)
}

func TestResolveSpatialCandidateOrder(t *testing.T) {
	catalog := DefaultCatalog()
	m := NewMatcher(NewValidator(catalog))
	nameSpec, ok := catalog.Spec(constants.FieldFullName)
	require.True(t, ok)

	// The closest candidate fails text validation (label echo of the canonical
	// name); the next one is taken instead of giving up.
	frags := []TextFragment{
		frag("Name", 100, 100, 180, 120, 0.95),
		frag("Full Name", 200, 100, 330, 120, 0.9),
		frag("Ananya Sharma", 420, 100, 600, 120, 0.9),
	}
	val, ok := m.Resolve(nameSpec, frags)
	require.True(t, ok)
	assert.Equal(t, "Ananya Sharma", val)
}

func TestResolveFirstOccurrenceTerminates(t *testing.T) {
	m := NewMatcher(NewValidator(DefaultCatalog()))

	// The first "Phone" label has no valid neighbor; the second would have
	// one, but only the first occurrence is ever attempted.
	frags := []TextFragment{
		frag("Phone", 100, 100, 180, 120, 0.95),
		frag("Phone", 100, 400, 180, 420, 0.95),
		frag("9876543210", 300, 400, 460, 420, 0.9),
	}
	_, ok := m.Resolve(phoneSpec(t), frags)
	assert.False(t, ok)
}

func TestResolveLowConfidenceLabelStillCounts(t *testing.T) {
	m := NewMatcher(NewValidator(DefaultCatalog()))

	// Confidence gates candidate values, not labels.
	frags := []TextFragment{
		frag("Phone", 100, 100, 180, 120, 0.1),
		frag("9876543210", 300, 100, 460, 120, 0.9),
	}
	val, ok := m.Resolve(phoneSpec(t), frags)
	require.True(t, ok)
	assert.Equal(t, "9876543210", val)
}

func TestResolveNoLabelIsUnset(t *testing.T) {
	m := NewMatcher(NewValidator(DefaultCatalog()))

	frags := []TextFragment{
		frag("Springfield College", 100, 20, 500, 60, 0.95),
	}
	_, ok := m.Resolve(phoneSpec(t), frags)
	assert.False(t, ok)
}
