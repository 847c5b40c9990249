// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// VerificationLog is the predicate function for verificationlog builders.
type VerificationLog func(*sql.Selector)
