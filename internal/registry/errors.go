package registry

import "errors"

var (
	// ErrNetwork is returned for transport failures and non-success responses.
	ErrNetwork = errors.New("network error")

	// ErrNotFound is returned alongside ErrNetwork when the registry answers 404.
	ErrNotFound = errors.New("package not found")

	// ErrMalformedResponse is returned when the body is not a package document.
	ErrMalformedResponse = errors.New("malformed registry response")

	// ErrUnknownChannel is returned by Versions for a key absent from the table.
	ErrUnknownChannel = errors.New("unknown channel")
)
