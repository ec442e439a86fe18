package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Code is an error code as published upstream. Twilio serves codes as JSON
// numbers in some documents and strings in others, so both are accepted and
// normalized to the string form.
type Code string

// UnmarshalJSON accepts a JSON number or string
func (c *Code) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case json.Number:
		*c = Code(v.String())
	case string:
		*c = Code(v)
	default:
		return fmt.Errorf("code must be a number or string, got %T", raw)
	}
	return nil
}

// ErrorRecord is one element of the upstream error-code reference array.
// Pointer fields distinguish a missing field from an empty value.
type ErrorRecord struct {
	Code    *Code   `json:"code"`
	Message *string `json:"message"`
}
