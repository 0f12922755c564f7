package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrInvalidBody  = errors.New("request body must be a JSON object")
)

// FieldError reports a payload key that is absent or has the wrong JSON type.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// payload is a request body split into its top-level keys, so presence can
// be told apart from zero values.
type payload map[string]json.RawMessage

func decodePayload(r *http.Request) (payload, error) {
	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if p == nil {
		// a literal null body
		return nil, ErrInvalidBody
	}
	return p, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// validator reads typed values out of a payload, keeping the first error.
// Getters return zero values once an error has been recorded.
type validator struct {
	p   payload
	err error
}

func (v *validator) fail(key string, err error) {
	if v.err == nil {
		v.err = &FieldError{Field: key, Err: err}
	}
}

// decode unmarshals key into dst. It reports whether the key was present and
// non-null; a JSON null is recorded as a type mismatch unless nullable.
func (v *validator) decode(key string, dst any, required, nullable bool) bool {
	if v.err != nil {
		return false
	}
	raw, ok := v.p[key]
	if !ok {
		if required {
			v.fail(key, ErrMissingField)
		}
		return false
	}
	if isNull(raw) {
		if !nullable {
			v.fail(key, ErrTypeMismatch)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		v.fail(key, ErrTypeMismatch)
		return false
	}
	return true
}

func (v *validator) has(key string) bool {
	_, ok := v.p[key]
	return ok
}

func (v *validator) reqString(key string) string {
	var s string
	v.decode(key, &s, true, false)
	return s
}

func (v *validator) reqInt(key string) int64 {
	var n int64
	v.decode(key, &n, true, false)
	return n
}

// optString reads a nullable key; absent and null both yield nil.
func (v *validator) optString(key string) *string {
	var s string
	if v.decode(key, &s, false, true) {
		return &s
	}
	return nil
}

func (v *validator) optInt(key string) *int64 {
	var n int64
	if v.decode(key, &n, false, true) {
		return &n
	}
	return nil
}

// setString reads a non-nullable key for a partial update; nil means the
// key was absent.
func (v *validator) setString(key string) *string {
	var s string
	if v.decode(key, &s, false, false) {
		return &s
	}
	return nil
}

func (v *validator) setInt(key string) *int64 {
	var n int64
	if v.decode(key, &n, false, false) {
		return &n
	}
	return nil
}

// setNullString reads a nullable key for a partial update. A JSON null
// yields an invalid NullString, which clears the column.
func (v *validator) setNullString(key string) *sql.NullString {
	if !v.has(key) {
		return nil
	}
	var s string
	if v.decode(key, &s, false, true) {
		return &sql.NullString{String: s, Valid: true}
	}
	if v.err != nil {
		return nil
	}
	return &sql.NullString{}
}

func (v *validator) setNullInt(key string) *sql.NullInt64 {
	if !v.has(key) {
		return nil
	}
	var n int64
	if v.decode(key, &n, false, true) {
		return &sql.NullInt64{Int64: n, Valid: true}
	}
	if v.err != nil {
		return nil
	}
	return &sql.NullInt64{}
}
