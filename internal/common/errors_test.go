package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", NewValidationError("contact", "is required"), http.StatusBadRequest, "Validation failed"},
		{"wrapped not found", fmt.Errorf("contact 9: %w", ErrNotFound), http.StatusNotFound, "contact 9: resource not found"},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"conflict", fmt.Errorf("main contact: %w", ErrConflict), http.StatusConflict, "main contact: conflict"},
		{"unrecognized payload", ErrUnrecognizedPayload, http.StatusBadRequest, "unrecognized payload"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, zap.NewNop(), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.StatusCode)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestWriteError_ValidationFields(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, zap.NewNop(), &ValidationError{Fields: map[string]string{"page": "bad", "limit": "bad"}})

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"page": "bad", "limit": "bad"}, body.Errors)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "two", "a": "one"}}
	assert.Equal(t, "validation failed: a: one; b: two", err.Error())
}

func TestNotFound(t *testing.T) {
	assert.ErrorIs(t, NotFound(gorm.ErrRecordNotFound), ErrNotFound)
	other := errors.New("boom")
	assert.Equal(t, other, NotFound(other))
	assert.NoError(t, NotFound(nil))
}

func TestDecodeJSON(t *testing.T) {
	type body struct {
		Name string `json:"name" validate:"required"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ok"}`))
	var ok body
	require.NoError(t, DecodeJSON(r, &ok))
	assert.Equal(t, "ok", ok.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	var vErr *ValidationError
	assert.ErrorAs(t, DecodeJSON(r, &ok), &vErr)
	assert.Contains(t, vErr.Fields, "body")

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	var missing body
	require.ErrorAs(t, DecodeJSON(r, &missing), &vErr)
	assert.Equal(t, "is required", vErr.Fields["name"])
}
