package extract

import (
	"errors"

	"github.com/docstack-labs/idverify/constants"
)

// ErrNoFragments means the recognition engine produced nothing to work with
// (unreadable scan, blank page). Distinct from a result where nothing matched.
var ErrNoFragments = errors.New("extract: no text fragments")

// Rect is an axis-aligned bounding box in image pixel coordinates.
// Top-left origin, as produced by tesseract TSV output.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// CenterY is the vertical midpoint of the box.
func (r Rect) CenterY() float64 {
	return float64(r.Top+r.Bottom) / 2
}

// TextFragment is one recognized text unit: geometry, text, and recognition
// confidence in [0,1]. Fragments are immutable; the slice handed to the
// pipeline is never mutated.
type TextFragment struct {
	Box        Rect
	Text       string
	Confidence float32
}

// Result maps canonical field names to normalized values. A field absent from
// the map is unset: the document simply did not yield a value for it.
type Result map[constants.Field]string

// Value returns the normalized value for f and whether it was resolved.
func (r Result) Value(f constants.Field) (string, bool) {
	v, ok := r[f]
	return v, ok
}

// IsSet reports whether f was resolved.
func (r Result) IsSet(f constants.Field) bool {
	_, ok := r[f]
	return ok
}
