package providers

import "errors"

var (
	// ErrUnexpectedStatus indicates the API responded with a non-200 status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrMalformedResponse indicates the API response body could not be
	// interpreted as a schedule.
	ErrMalformedResponse = errors.New("malformed schedule response")
)
