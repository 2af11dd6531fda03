package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrConflict            = errors.New("conflict")
	ErrUnrecognizedPayload = errors.New("unrecognized payload")
	ErrUnknownChannel      = errors.New("unknown channel")
)

// ValidationError carries field level messages keyed by the JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFound maps gorm's missing-row error to ErrNotFound and passes anything
// else through.
func NotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type errorBody struct {
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors,omitempty"`
}

// WriteError maps known error shapes to a status code. Anything unknown is
// logged with a stack and answered with a generic 500.
func WriteError(w http.ResponseWriter, log *zap.Logger, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		WriteJSON(w, http.StatusBadRequest, errorBody{StatusCode: http.StatusBadRequest, Message: "Validation failed", Errors: vErr.Fields})
	case errors.Is(err, ErrNotFound):
		WriteJSON(w, http.StatusNotFound, errorBody{StatusCode: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, ErrUnauthorized):
		WriteJSON(w, http.StatusUnauthorized, errorBody{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"})
	case errors.Is(err, ErrConflict):
		WriteJSON(w, http.StatusConflict, errorBody{StatusCode: http.StatusConflict, Message: err.Error()})
	case errors.Is(err, ErrUnrecognizedPayload), errors.Is(err, ErrUnknownChannel):
		WriteJSON(w, http.StatusBadRequest, errorBody{StatusCode: http.StatusBadRequest, Message: err.Error()})
	default:
		log.Error("unhandled error", zap.Error(err), zap.Stack("stack"))
		WriteJSON(w, http.StatusInternalServerError, errorBody{StatusCode: http.StatusInternalServerError, Message: "Internal server error"})
	}
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// DecodeJSON reads the request body into v and runs the struct validator.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return NewValidationError("body", "malformed JSON: "+err.Error())
	}
	return Validate(v)
}
