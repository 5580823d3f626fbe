// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidWeek signals a malformed or out-of-range ISO week identifier.
	ErrInvalidWeek = errors.New("invalid week identifier")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
)
