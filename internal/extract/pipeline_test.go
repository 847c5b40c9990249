package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstack-labs/idverify/constants"
)

func TestExtractLabelAndValue(t *testing.T) {
	p := NewPipeline(DefaultCatalog(), nil)

	frags := []TextFragment{
		frag("Name", 100, 300, 180, 330, 0.95),
		frag("Ananya Sharma", 220, 300, 460, 330, 0.9),
	}
	res, err := p.Extract(frags, pageHeight)
	require.NoError(t, err)

	name, ok := res.Value(constants.FieldFullName)
	require.True(t, ok)
	assert.Equal(t, "Ananya Sharma", name)
}

func TestExtractInlinePhone(t *testing.T) {
	p := NewPipeline(DefaultCatalog(), nil)

	frags := []TextFragment{
		frag("Phone: 9876543210", 100, 500, 420, 530, 0.9),
	}
	res, err := p.Extract(frags, pageHeight)
	require.NoError(t, err)

	phone, ok := res.Value(constants.FieldPhone)
	require.True(t, ok)
	assert.Equal(t, "9876543210", phone)
}

func TestExtractEmptyInput(t *testing.T) {
	p := NewPipeline(DefaultCatalog(), nil)

	_, err := p.Extract(nil, pageHeight)
	require.ErrorIs(t, err, ErrNoFragments)

	_, err = p.Extract([]TextFragment{}, pageHeight)
	require.ErrorIs(t, err, ErrNoFragments)
}

func TestExtractDeterministic(t *testing.T) {
	p := NewPipeline(DefaultCatalog(), nil)

	frags := []TextFragment{
		frag("Springfield College", 100, 30, 600, 80, 0.95),
		frag("Name", 100, 300, 180, 330, 0.95),
		frag("Ananya Sharma", 220, 300, 460, 330, 0.9),
		frag("Phone: 9876543210", 100, 500, 420, 530, 0.9),
		frag("ananya.sharma@example.com", 100, 560, 480, 590, 0.85),
	}

	first, err := p.Extract(frags, pageHeight)
	require.NoError(t, err)
	second, err := p.Extract(frags, pageHeight)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtractFallbackScans(t *testing.T) {
	p := NewPipeline(DefaultCatalog(), nil)

	// No labels at all: phone, email and identifier are shape-recognizable,
	// and the name falls to the orphan heuristic.
	frags := []TextFragment{
		frag("REG20210457", 100, 200, 300, 230, 0.9),
		frag("9876543210", 100, 260, 260, 290, 0.9),
		frag("ravi.k@example.org", 100, 320, 380, 350, 0.9),
		frag("Ravi", 100, 390, 180, 420, 0.9),
	}
	res, err := p.Extract(frags, pageHeight)
	require.NoError(t, err)

	id, ok := res.Value(constants.FieldIDNumber)
	require.True(t, ok)
	assert.Equal(t, "REG20210457", id)

	phone, ok := res.Value(constants.FieldPhone)
	require.True(t, ok)
	assert.Equal(t, "9876543210", phone)

	email, ok := res.Value(constants.FieldEmail)
	require.True(t, ok)
	assert.Equal(t, "ravi.k@example.org", email)

	name, ok := res.Value(constants.FieldFullName)
	require.True(t, ok)
	assert.Equal(t, "Ravi", name)

	assert.False(t, res.IsSet(constants.FieldAddress))
	assert.False(t, res.IsSet(constants.FieldAge))
}

func TestExtractIdentifierFallbackSkipsPhone(t *testing.T) {
	p := NewPipeline(DefaultCatalog(), nil)

	// The only identifier-shaped fragment normalizes to the resolved phone
	// number; it must not be claimed as the ID too.
	frags := []TextFragment{
		frag("Phone", 100, 200, 180, 230, 0.95),
		frag("9876543210", 100, 260, 260, 290, 0.9),
	}
	res, err := p.Extract(frags, pageHeight)
	require.NoError(t, err)

	phone, ok := res.Value(constants.FieldPhone)
	require.True(t, ok)
	assert.Equal(t, "9876543210", phone)
	assert.False(t, res.IsSet(constants.FieldIDNumber))
}

func TestExtractFallbackScansIgnoreConfidenceFloor(t *testing.T) {
	p := NewPipeline(DefaultCatalog(), nil)

	// The 0.3 confidence floor applies to spatial candidates only; the typed
	// fallback scans take any fragment whose shape validates. The orphan name
	// heuristic keeps its own 0.4 floor.
	frags := []TextFragment{
		frag("9876543210", 100, 300, 260, 330, 0.1),
		frag("Ravi", 100, 390, 180, 420, 0.1),
	}
	res, err := p.Extract(frags, pageHeight)
	require.NoError(t, err)

	phone, ok := res.Value(constants.FieldPhone)
	require.True(t, ok)
	assert.Equal(t, "9876543210", phone)

	id, ok := res.Value(constants.FieldIDNumber)
	require.True(t, ok)
	assert.Equal(t, "9876543210", id)

	assert.False(t, res.IsSet(constants.FieldFullName))
}

func TestExtractFragmentReuseAcrossFields(t *testing.T) {
	p := NewPipeline(DefaultCatalog(), nil)

	// One fragment can satisfy several fields: nothing reserves it globally.
	frags := []TextFragment{
		frag("abc123@mail.com", 100, 300, 340, 330, 0.9),
	}
	res, err := p.Extract(frags, pageHeight)
	require.NoError(t, err)

	email, ok := res.Value(constants.FieldEmail)
	require.True(t, ok)
	assert.Equal(t, "abc123@mail.com", email)

	id, ok := res.Value(constants.FieldIDNumber)
	require.True(t, ok)
	assert.Equal(t, "abc123mailcom", id)
}
