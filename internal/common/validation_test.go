package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Type  string `json:"type" validate:"required,contacttype"`
	Date  string `json:"date" validate:"omitempty,yyyymmdd"`
	Email string `json:"email" validate:"omitempty,email"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		input      sampleRequest
		wantFields map[string]string
	}{
		{
			name:  "valid",
			input: sampleRequest{Type: "phone", Date: "2024-02-29", Email: "a@b.com", Limit: 10},
		},
		{
			name:       "missing type",
			input:      sampleRequest{},
			wantFields: map[string]string{"type": "is required"},
		},
		{
			name:       "unknown contact type",
			input:      sampleRequest{Type: "fax"},
			wantFields: map[string]string{"type": "must be one of [phone email whatsapp telegram]"},
		},
		{
			name:       "bad date",
			input:      sampleRequest{Type: "email", Date: "29/02/2024"},
			wantFields: map[string]string{"date": "must be a date in YYYY-MM-DD format"},
		},
		{
			name:       "limit over max",
			input:      sampleRequest{Type: "email", Limit: 101},
			wantFields: map[string]string{"limit": "must be at most 100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantFields, vErr.Fields)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret1"))
	assert.Error(t, ValidatePassword("short"))
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, ValidatePassword(string(long)))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("joao.silva@agile.com.br"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail(""))
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("Password123")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123", hash)
	assert.NoError(t, CheckPassword("Password123", hash))
	assert.Error(t, CheckPassword("wrong", hash))
}
