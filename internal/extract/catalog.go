package extract

import (
	"github.com/docstack-labs/idverify/constants"
)

// ValueType tags the expected shape of a field's value.
type ValueType string

const (
	TypeText       ValueType = "text"
	TypeNumber     ValueType = "number"
	TypeAddress    ValueType = "address"
	TypeEmail      ValueType = "email"
	TypePhone      ValueType = "phone"
	TypeIdentifier ValueType = "identifier"
)

// FieldSpec describes one canonical field: the label substrings that may
// announce it on a document and the shape its value must validate against.
type FieldSpec struct {
	Name   constants.Field
	Labels []string // case-insensitive substrings, in match-priority order
	Type   ValueType
}

// Catalog is the immutable configuration the pipeline runs against: the field
// specs in resolution order plus the keyword vocabularies the validator and
// the orphan-name scorer consult. Construct once, share freely; nothing here
// is mutated after construction.
type Catalog struct {
	specs           []FieldSpec
	addressKeywords []string // upper-case; disqualify a text as an identifier
	headerKeywords  []string // upper-case; institutional banners + other fields' vocabulary
}

// NewCatalog builds a catalog from explicit parts. Callers that just want the
// stock identity-document configuration should use DefaultCatalog.
func NewCatalog(specs []FieldSpec, addressKeywords, headerKeywords []string) *Catalog {
	c := &Catalog{
		specs:           make([]FieldSpec, len(specs)),
		addressKeywords: make([]string, len(addressKeywords)),
		headerKeywords:  make([]string, len(headerKeywords)),
	}
	copy(c.specs, specs)
	copy(c.addressKeywords, addressKeywords)
	copy(c.headerKeywords, headerKeywords)
	return c
}

// Specs returns the field specs in catalog order.
func (c *Catalog) Specs() []FieldSpec {
	return c.specs
}

// Spec returns the spec for a canonical field.
func (c *Catalog) Spec(f constants.Field) (FieldSpec, bool) {
	for _, s := range c.specs {
		if s.Name == f {
			return s, true
		}
	}
	return FieldSpec{}, false
}

// DefaultCatalog returns the stock configuration for Indian identity and
// registration documents: ID cards, admission forms, registration slips.
func DefaultCatalog() *Catalog {
	specs := []FieldSpec{
		{
			Name:   constants.FieldFullName,
			Labels: []string{"full name", "student name", "candidate name", "applicant", "name"},
			Type:   TypeText,
		},
		{
			Name:   constants.FieldAge,
			Labels: []string{"age"},
			Type:   TypeNumber,
		},
		{
			Name:   constants.FieldGender,
			Labels: []string{"gender", "sex"},
			Type:   TypeText,
		},
		{
			Name:   constants.FieldAddress,
			Labels: []string{"address", "residence", "addr"},
			Type:   TypeAddress,
		},
		{
			Name:   constants.FieldEmail,
			Labels: []string{"email", "e-mail", "mail id"},
			Type:   TypeEmail,
		},
		{
			Name:   constants.FieldPhone,
			Labels: []string{"phone", "mobile", "contact no", "contact", "tel"},
			Type:   TypePhone,
		},
		{
			Name:   constants.FieldIDNumber,
			Labels: []string{"id no", "id number", "roll no", "reg no", "registration", "enrollment", "uid"},
			Type:   TypeIdentifier,
		},
	}

	addressKeywords := []string{
		"ROAD", "STREET", "NAGAR", "LANE", "COLONY",
		"SECTOR", "BLOCK", "DISTRICT", "CITY", "PIN",
	}

	headerKeywords := []string{
		// institutional banner vocabulary
		"COLLEGE", "UNIVERSITY", "INSTITUTE", "DEPARTMENT", "SCHOOL",
		"GOVERNMENT", "FORM", "APPLICATION", "CERTIFICATE", "IDENTITY", "CARD",
		// other fields' key vocabulary; a name fragment never contains these
		"PHONE", "MOBILE", "EMAIL", "ADDRESS", "GENDER", "AGE",
		"ROLL", "REG", "ID NO", "UID", "DOB",
	}

	return NewCatalog(specs, addressKeywords, headerKeywords)
}
