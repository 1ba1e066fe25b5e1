package qr

import "errors"

var (
	// ErrEmptyContent is returned when the input string is empty or only whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrFailedToEncode is returned when the conformant PNG encoder fails.
	ErrFailedToEncode = errors.New("failed to encode QR code")
)
