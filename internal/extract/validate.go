package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reDigits   = regexp.MustCompile(`\D+`)
	reEmail    = regexp.MustCompile(`[A-Za-z0-9._%\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	reSmallNum = regexp.MustCompile(`\b\d{1,2}\b`)
	reAlnum    = regexp.MustCompile(`[^A-Za-z0-9]+`)
	reHasDigit = regexp.MustCompile(`\d`)
)

// Validator maps raw OCR text to a normalized value for a field, or rejects
// it. All rules are pure and stateless; rejection is an expected outcome, not
// an error.
type Validator struct {
	catalog *Catalog
}

func NewValidator(catalog *Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// Validate normalizes text against spec's value type. The boolean is false
// when the text does not fit the field's expected shape.
func (v *Validator) Validate(text string, spec FieldSpec) (string, bool) {
	switch spec.Type {
	case TypePhone:
		return validatePhone(text)
	case TypeEmail:
		return validateEmail(text)
	case TypeNumber:
		return validateNumber(text)
	case TypeIdentifier:
		return v.validateIdentifier(text)
	default:
		return validateText(text, spec)
	}
}

// validatePhone strips every non-digit and keeps the last 10 digits. Accepts
// only 10..13 digit runs: long enough for a country prefix, short enough to
// not be a concatenation of two numbers.
func validatePhone(text string) (string, bool) {
	digits := reDigits.ReplaceAllString(text, "")
	if len(digits) <= 9 || len(digits) >= 14 {
		return "", false
	}
	return digits[len(digits)-10:], true
}

// validateEmail finds an email-shaped substring and lower-cases it.
func validateEmail(text string) (string, bool) {
	m := reEmail.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.ToLower(m), true
}

// validateNumber accepts a standalone 1-2 digit run in (0, 100); used for age.
func validateNumber(text string) (string, bool) {
	m := reSmallNum.FindString(text)
	if m == "" {
		return "", false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 || n >= 100 {
		return "", false
	}
	return m, true
}

// validateIdentifier accepts registration/ID numbers: alphanumeric, longer
// than 4 after cleaning, at least one digit, and free of address vocabulary
// (a house number on "MG ROAD" is not an ID).
func (v *Validator) validateIdentifier(text string) (string, bool) {
	upper := strings.ToUpper(text)
	for _, kw := range v.catalog.addressKeywords {
		if strings.Contains(upper, kw) {
			return "", false
		}
	}
	cleaned := reAlnum.ReplaceAllString(text, "")
	if len(cleaned) <= 4 || !reHasDigit.MatchString(cleaned) {
		return "", false
	}
	return cleaned, true
}

// validateText accepts free text of at least 2 characters that is not just an
// echo of the field's own name (OCR frequently splits "Name" away from its
// value and offers the label back as a candidate).
func validateText(text string, spec FieldSpec) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 2 {
		return "", false
	}
	canonical := strings.ReplaceAll(string(spec.Name), "_", " ")
	if strings.EqualFold(trimmed, canonical) {
		return "", false
	}
	return trimmed, true
}
