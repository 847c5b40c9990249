package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateExtractedPayload(t *testing.T) {
	schema := BuildDocumentJSONSchema()

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "full normalized payload",
			payload: `{"full_name":"Ananya Sharma","age":"29","gender":"Female","address":"12/4 MG Road","email":"ananya@example.com","phone":"9876543210","id_number":"REG20210457"}`,
		},
		{
			name:    "partial payload with unset fields absent",
			payload: `{"full_name":"Ravi Kumar"}`,
		},
		{
			name:    "empty payload",
			payload: `{}`,
		},
		{
			name:    "unnormalized phone rejected",
			payload: `{"phone":"+91 98765 43210"}`,
			wantErr: true,
		},
		{
			name:    "unknown field rejected",
			payload: `{"nickname":"Anu"}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONAgainstSchema(schema, []byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
