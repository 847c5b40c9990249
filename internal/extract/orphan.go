package extract

import (
	"strings"
	"unicode"
)

// Orphan-name scoring weights. Applied when no label anywhere on the document
// announced a name: handwritten names on ID-card-like layouts sit in the upper
// body of the page, carry no digits, and are not institutional banner text.
const (
	minOrphanConfidence = 0.4
	headerZoneMax       = 0.15
	bodyZoneMin         = 0.18
	bodyZoneMax         = 0.5
	headerZonePenalty   = -50
	bodyZoneReward      = 20
	keywordPenalty      = -100
	digitPenalty        = -50
	shortPenalty        = -50
	titleCaseReward     = 10
)

// NameGuesser scores unlabeled fragments as name candidates by page position
// and text shape.
type NameGuesser struct {
	catalog *Catalog
}

func NewNameGuesser(catalog *Catalog) *NameGuesser {
	return &NameGuesser{catalog: catalog}
}

// Guess returns the best-scoring fragment text, but only when its score is
// strictly positive; a page of headers and numbers yields nothing rather than
// a bad guess. Fragments whose text already appears verbatim inside a resolved
// field's value are skipped entirely.
func (g *NameGuesser) Guess(frags []TextFragment, resolved Result, imageHeight int) (string, bool) {
	if imageHeight <= 0 {
		return "", false
	}

	best := ""
	bestScore := 0
	found := false

	for _, frag := range frags {
		if frag.Confidence < minOrphanConfidence {
			continue
		}
		text := strings.TrimSpace(frag.Text)
		if text == "" || claimedElsewhere(text, resolved) {
			continue
		}

		score := 0
		rel := frag.Box.CenterY() / float64(imageHeight)
		switch {
		case rel < headerZoneMax:
			score += headerZonePenalty
		case rel >= bodyZoneMin && rel < bodyZoneMax:
			score += bodyZoneReward
		}

		upper := strings.ToUpper(text)
		for _, kw := range g.catalog.headerKeywords {
			if strings.Contains(upper, kw) {
				score += keywordPenalty
				break
			}
		}

		if strings.ContainsAny(text, "0123456789") {
			score += digitPenalty
		}
		if len(text) < 3 {
			score += shortPenalty
		}
		if isTitleCased(text) {
			score += titleCaseReward
		}

		if !found || score > bestScore {
			best, bestScore, found = text, score, true
		}
	}

	if !found || bestScore <= 0 {
		return "", false
	}
	return best, true
}

// claimedElsewhere reports whether text is a verbatim substring of any
// already-resolved value; re-selecting an attributed value as a name would
// duplicate it.
func claimedElsewhere(text string, resolved Result) bool {
	for _, v := range resolved {
		if strings.Contains(v, text) {
			return true
		}
	}
	return false
}

// isTitleCased: first rune upper-case, the remainder free of upper-case runes.
// Fully capitalized OCR text gets no shape reward and must earn acceptance
// from position alone.
func isTitleCased(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
