package extract

import "strings"

// Matcher resolves a field's value by locating one of its label synonyms among
// the fragments and pairing it with a nearby value.
type Matcher struct {
	assoc     Associator
	validator *Validator
}

func NewMatcher(validator *Validator) *Matcher {
	return &Matcher{validator: validator}
}

// Resolve scans fragments in their given order for the first occurrence of any
// of spec's labels. Only that occurrence is attempted: an inline "Label: Value"
// split is tried first, then the spatially ranked candidates. Success or
// failure, the search ends there; order is a correctness-relevant input.
func (m *Matcher) Resolve(spec FieldSpec, frags []TextFragment) (string, bool) {
	for _, frag := range frags {
		if !isLabelOccurrence(frag.Text, spec.Labels) {
			continue
		}

		// Inline fast path: "Phone: 9876543210" carries its own value.
		if idx := strings.Index(frag.Text, ":"); idx >= 0 {
			if val, ok := m.validator.Validate(frag.Text[idx+1:], spec); ok {
				return val, true
			}
		}

		for _, cand := range m.assoc.Rank(frag, frags) {
			if val, ok := m.validator.Validate(cand.Text, spec); ok {
				return val, true
			}
		}
		return "", false
	}
	return "", false
}

func isLabelOccurrence(text string, labels []string) bool {
	lower := strings.ToLower(text)
	for _, l := range labels {
		if strings.Contains(lower, l) {
			return true
		}
	}
	return false
}
