package domain

import (
	"errors"
	"strings"
)

// ValidationError reports one rejected input field.
type ValidationError struct {
	Field   string `json:"field"`   // dotted path, e.g. currentCosts.emailSequencerCost
	Message string `json:"message"` // human readable, safe to show to the user
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every field error found in one input.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, e := range ve {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Field returns the message reported for path, if any.
func (ve ValidationErrors) Field(path string) (string, bool) {
	for _, e := range ve {
		if e.Field == path {
			return e.Message, true
		}
	}
	return "", false
}

// AsValidationErrors unwraps err into ValidationErrors.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
