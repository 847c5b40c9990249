package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstack-labs/idverify/constants"
)

func TestMatchStatus(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		submitted string
		want      constants.VerificationStatus
	}{
		{name: "exact", original: "Ananya Sharma", submitted: "Ananya Sharma", want: constants.VerificationVerified},
		{name: "case and whitespace insensitive", original: "  ANANYA SHARMA ", submitted: "ananya sharma", want: constants.VerificationVerified},
		{name: "single typo corrected", original: "Ananya Sharna", submitted: "Ananya Sharma", want: constants.VerificationCorrected},
		{name: "different value overridden", original: "Ravi Kumar", submitted: "Ananya Sharma", want: constants.VerificationOverridden},
		{name: "empty original overridden", original: "", submitted: "Ananya Sharma", want: constants.VerificationOverridden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, sim, notes := MatchStatus(tt.original, tt.submitted)
			assert.Equal(t, tt.want, status)
			assert.NotEmpty(t, notes)
			if tt.want == constants.VerificationVerified {
				assert.Equal(t, 1.0, sim)
			} else {
				assert.Less(t, sim, 1.0)
			}
		})
	}
}

func TestBuildReport(t *testing.T) {
	extracted := map[string]string{
		"full_name": "Ananya Sharna",
		"age":       "29",
	}
	submitted := map[string]string{
		"full_name": "Ananya Sharma",
		"age":       "29",
		"gender":    "Female", // never extracted
	}

	report := BuildReport(extracted, submitted)
	require.Len(t, report, 3)

	assert.Equal(t, constants.VerificationCorrected, report["full_name"].Status)
	assert.Equal(t, "Ananya Sharna", report["full_name"].OriginalValue)
	assert.Equal(t, "Ananya Sharma", report["full_name"].FinalValue)

	assert.Equal(t, constants.VerificationVerified, report["age"].Status)

	assert.Equal(t, constants.VerificationOverridden, report["gender"].Status)
	assert.Empty(t, report["gender"].OriginalValue)
}
