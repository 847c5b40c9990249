package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docstack-labs/idverify/constants"
)

func TestValidatePhone(t *testing.T) {
	v := NewValidator(DefaultCatalog())
	spec := FieldSpec{Name: constants.FieldPhone, Type: TypePhone}

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "plain ten digits", input: "9876543210", want: "9876543210", ok: true},
		{name: "formatted with country code", input: "+91 98765-43210", want: "9876543210", ok: true},
		{name: "thirteen digits keeps last ten", input: "0091987654321", want: "1987654321", ok: true},
		{name: "nine digits rejected", input: "987654321", ok: false},
		{name: "fourteen digits rejected", input: "12345678901234", ok: false},
		{name: "no digits rejected", input: "call me", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.Validate(tt.input, spec)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	v := NewValidator(DefaultCatalog())
	spec := FieldSpec{Name: constants.FieldEmail, Type: TypeEmail}

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "bare address", input: "ananya.sharma@example.com", want: "ananya.sharma@example.com", ok: true},
		{name: "embedded in noise", input: "Mail ID - Ananya.Sharma@Example.COM ok", want: "ananya.sharma@example.com", ok: true},
		{name: "missing domain dot", input: "user@localhost", ok: false},
		{name: "no at sign", input: "example.com", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.Validate(tt.input, spec)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

// Re-validating an already-normalized email must return the same string.
func TestValidateEmailIdempotent(t *testing.T) {
	v := NewValidator(DefaultCatalog())
	spec := FieldSpec{Name: constants.FieldEmail, Type: TypeEmail}

	first, ok := v.Validate("Contact: RAVI.K@Example.Org", spec)
	require.True(t, ok)
	second, ok := v.Validate(first, spec)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestValidateNumber(t *testing.T) {
	v := NewValidator(DefaultCatalog())
	spec := FieldSpec{Name: constants.FieldAge, Type: TypeNumber}

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "bare age", input: "29", want: "29", ok: true},
		{name: "age in sentence", input: "Age 34 years", want: "34", ok: true},
		{name: "zero rejected", input: "0", ok: false},
		{name: "three digit run rejected", input: "120", ok: false},
		{name: "no digits", input: "twenty", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.Validate(tt.input, spec)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValidateIdentifier(t *testing.T) {
	v := NewValidator(DefaultCatalog())
	spec := FieldSpec{Name: constants.FieldIDNumber, Type: TypeIdentifier}

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "registration number", input: "REG-2021/0457", want: "REG20210457", ok: true},
		{name: "address keyword rejected", input: "221B MG ROAD", ok: false},
		{name: "street keyword rejected even with digits", input: "14 Church Street 560001", ok: false},
		{name: "too short after cleaning", input: "A-1.2", ok: false},
		{name: "letters only rejected", input: "ABCDEFG", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.Validate(tt.input, spec)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValidateText(t *testing.T) {
	v := NewValidator(DefaultCatalog())
	nameSpec := FieldSpec{Name: constants.FieldFullName, Type: TypeText}
	addrSpec := FieldSpec{Name: constants.FieldAddress, Type: TypeAddress}

	got, ok := v.Validate("  Ananya Sharma  ", nameSpec)
	require.True(t, ok)
	assert.Equal(t, "Ananya Sharma", got)

	// The field's own name echoed back is not a value.
	_, ok = v.Validate("Full Name", nameSpec)
	assert.False(t, ok)

	_, ok = v.Validate("x", nameSpec)
	assert.False(t, ok, "single character is too short")

	got, ok = v.Validate("12/4 MG Road, Bengaluru", addrSpec)
	require.True(t, ok)
	assert.Equal(t, "12/4 MG Road, Bengaluru", got)
}
