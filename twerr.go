// Package twerr resolves Twilio API error codes to their human-readable
// messages, using an embedded snapshot of https://www.twilio.com/docs/api/errors.
// Refresh the snapshot with cmd/fetch-errors.
package twerr

import (
	_ "embed"
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"
)

//go:embed errors.json
var errorCodes []byte

// Message returns the message for a code string and whether the code is known.
func Message(code string) (string, bool) {
	msg, err := jsonparser.GetString(errorCodes, code)
	if err != nil {
		return "", false
	}
	return msg, true
}

// ExternalError is a failure reported by Twilio, identified by its numeric
// error code.
type ExternalError struct {
	Code    string
	Message string
}

func (e *ExternalError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("twilio error %s", e.Code)
	}
	return fmt.Sprintf("twilio error %s: %s", e.Code, e.Message)
}

// Lookup builds an ExternalError for the given numeric code. Codes missing
// from the snapshot produce an error with an empty message.
func Lookup(code int) *ExternalError {
	codeAsStr := strconv.Itoa(code)
	msg, _ := Message(codeAsStr)
	return &ExternalError{Code: codeAsStr, Message: msg}
}
