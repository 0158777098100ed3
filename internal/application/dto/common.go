package dto

import (
	"bytes"
	"encoding/json"
)

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Quantity accepts a JSON number or a JSON string and keeps the raw text.
// Coercion to a decimal happens in the reconciliation core, so a bad value
// surfaces as a malformed-quantity validation error instead of a generic
// body-parse failure.
type Quantity string

// UnmarshalJSON implements json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	s := bytes.TrimSpace(b)
	if string(s) == "null" {
		*q = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(s, &v); err != nil {
			return err
		}
		*q = Quantity(v)
		return nil
	}
	*q = Quantity(s)
	return nil
}

// MarshalJSON round-trips the raw text as a JSON string.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(q))
}

func (q Quantity) String() string { return string(q) }
