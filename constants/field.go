package constants

// Field is a canonical semantic field recovered from an identity document.
type Field string

// Stable values (these exact strings key extracted_data in DB and API payloads).
const (
	FieldFullName Field = "full_name"
	FieldAge      Field = "age"
	FieldGender   Field = "gender"
	FieldAddress  Field = "address"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldIDNumber Field = "id_number"
)

var allFields = []Field{
	FieldFullName,
	FieldAge,
	FieldGender,
	FieldAddress,
	FieldEmail,
	FieldPhone,
	FieldIDNumber,
}

// Fields returns the canonical fields in catalog order.
func Fields() []Field {
	out := make([]Field, len(allFields))
	copy(out, allFields)
	return out
}

func FieldsAsStringSlice() []string {
	result := make([]string, len(allFields))
	for i, f := range allFields {
		result[i] = string(f)
	}
	return result
}

// IsField reports whether s names a canonical field.
func IsField(s string) bool {
	for _, f := range allFields {
		if string(f) == s {
			return true
		}
	}
	return false
}
