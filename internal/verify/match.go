package verify

import (
	"math"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/docstack-labs/idverify/constants"
)

// correctionThreshold separates a typo fix from a full override.
const correctionThreshold = 0.8

// FieldReport records the outcome of comparing one user-submitted field value
// against the value the extractor recovered.
type FieldReport struct {
	OriginalValue string                       `json:"original_value"`
	FinalValue    string                       `json:"final_value"`
	Status        constants.VerificationStatus `json:"status"`
	Similarity    float64                      `json:"similarity_score"`
	Notes         string                       `json:"notes"`
}

// MatchStatus classifies a submitted value against the extracted one.
// Comparison is case- and whitespace-insensitive; similarity is the
// normalized Levenshtein ratio.
func MatchStatus(original, submitted string) (constants.VerificationStatus, float64, string) {
	s1 := strings.ToLower(strings.TrimSpace(original))
	s2 := strings.ToLower(strings.TrimSpace(submitted))

	if s1 == s2 {
		return constants.VerificationVerified, 1.0, "Exact match."
	}

	sim := round2(levenshtein.Similarity(s1, s2, nil))
	if sim >= correctionThreshold {
		return constants.VerificationCorrected, sim, "Typo corrected."
	}
	return constants.VerificationOverridden, sim, "Manual override."
}

// BuildReport compares every submitted field against the extracted values.
// Fields the extractor never resolved compare against the empty string and
// come out OVERRIDDEN, which is the honest answer.
func BuildReport(extracted map[string]string, submitted map[string]string) map[string]FieldReport {
	report := make(map[string]FieldReport, len(submitted))
	for key, userValue := range submitted {
		original := extracted[key]
		status, sim, notes := MatchStatus(original, userValue)
		report[key] = FieldReport{
			OriginalValue: original,
			FinalValue:    userValue,
			Status:        status,
			Similarity:    sim,
			Notes:         notes,
		}
	}
	return report
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
