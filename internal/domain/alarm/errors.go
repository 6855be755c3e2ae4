package alarm

import "errors"

var (
	// ErrMissingField is returned when the envelope or the alarm payload lacks a required field.
	ErrMissingField = errors.New("missing field")
	// ErrMalformedIdentifier is returned when the alarm ARN has too few segments.
	ErrMalformedIdentifier = errors.New("malformed alarm identifier")
	// ErrTransportFailure is returned when the webhook call could not be completed.
	ErrTransportFailure = errors.New("transport failure")
)
