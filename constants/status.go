package constants

// DocStatus is the canonical status for rows in document.
type DocStatus string

// Stable values (store these exact strings in DB).
const (
	DocStatusProcessing DocStatus = "PROCESSING" // recognition/extraction in progress
	DocStatusExtracted  DocStatus = "EXTRACTED"  // fields extracted, awaiting manual verification
	DocStatusCompleted  DocStatus = "COMPLETED"  // user verification saved
	DocStatusFailed     DocStatus = "FAILED"     // terminal failure (unreadable input)
)

// VerificationStatus classifies one field's manual-verification outcome.
type VerificationStatus string

const (
	VerificationVerified   VerificationStatus = "VERIFIED"   // exact match with extracted value
	VerificationCorrected  VerificationStatus = "CORRECTED"  // near match, user fixed a typo
	VerificationOverridden VerificationStatus = "OVERRIDDEN" // user replaced the value outright
)

var DocStatuses = []string{
	string(DocStatusProcessing),
	string(DocStatusExtracted),
	string(DocStatusCompleted),
	string(DocStatusFailed),
}
