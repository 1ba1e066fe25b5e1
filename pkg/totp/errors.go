package totp

import "errors"

var (
	ErrInvalidSecret                = errors.New("secret decodes to an empty key")
	ErrSecretTooShort               = errors.New("secret must contain at least 16 Base32 characters")
	ErrHMACUnavailable              = errors.New("HMAC-SHA1 capability unavailable")
	ErrInvalidCodeFormat            = errors.New("code must consist of the configured number of digits")
	ErrFailedToGenerateSecretKey    = errors.New("failed to generate TOTP secret key")
	ErrInvalidRecoveryCodeCount     = errors.New("invalid recovery code count, must be greater than 0")
	ErrFailedToGenerateRecoveryCode = errors.New("failed to generate recovery code")
	ErrInvalidConfig                = errors.New("invalid TOTP configuration")
)
