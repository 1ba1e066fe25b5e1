package otpauth

import "errors"

var (
	ErrInvalidScheme = errors.New("URI must start with otpauth://totp/")
	ErrMissingSecret = errors.New("URI has no secret parameter")
	ErrInvalidURI    = errors.New("malformed otpauth URI")
)
