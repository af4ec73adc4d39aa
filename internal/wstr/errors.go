package wstr

import "errors"

var (
	// ErrEmbeddedNUL indicates a string contains a NUL character, which the
	// NUL-terminated wire forms cannot represent.
	ErrEmbeddedNUL = errors.New("wstr: string contains embedded NUL")

	// ErrOddLength indicates UTF-16LE data with an odd byte count.
	ErrOddLength = errors.New("wstr: utf16 data has odd length")

	// ErrMissingTerminator indicates multi-string data without the closing
	// double-NUL.
	ErrMissingTerminator = errors.New("wstr: multi-string data missing terminator")
)
