package bitvec

import "errors"

var (
	// ErrInvalidFormat is returned by Parse when the cleaned input length is
	// not a multiple of the word size or contains characters other than '0'
	// and '1'.
	ErrInvalidFormat = errors.New("invalid bitmap format")

	// ErrInvalidArgument is returned when a caller supplies a negative bit
	// index or capacity.
	ErrInvalidArgument = errors.New("invalid argument")
)
