package totp

import (
	"crypto/rand"
	"errors"
	"strings"
)

// SecretAlphabet is the RFC 4648 Base32 alphabet used for TOTP secrets.
const SecretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// MinSecretLength is the shortest secret accepted by ValidateSecretKey.
// Authenticator apps commonly refuse anything below 80 bits of key material.
const MinSecretLength = 16

// DecodeSecret decodes a Base32 secret into raw key bytes. Input is treated
// leniently the way authenticator apps treat pasted secrets: case is ignored
// and every character outside the Base32 alphabet (whitespace, dashes,
// padding) is silently dropped before decoding. Trailing bits that do not
// fill a complete byte are discarded rather than padded.
//
// DecodeSecret never fails; an input with no alphabet characters at all
// yields an empty slice, which Generate rejects with ErrInvalidSecret.
func DecodeSecret(secret string) []byte {
	var (
		out  []byte
		buf  uint32
		bits uint
	)
	for _, r := range strings.ToUpper(secret) {
		idx := strings.IndexRune(SecretAlphabet, r)
		if idx < 0 {
			continue
		}
		buf = buf<<5 | uint32(idx)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buf>>bits))
		}
	}
	return out
}

// EncodeSecret maps each input byte to a Base32 alphabet character via
// alphabet[b%32]. This is the simplified generation-side encoder used for
// producing fresh secrets from random bytes: every output character is a
// valid alphabet character, but the mapping is five bits per byte, so it is
// NOT a bit-exact inverse of DecodeSecret for arbitrary buffers. Do not use
// it to round-trip key material that must decode back to the same bytes.
func EncodeSecret(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteByte(SecretAlphabet[c%32])
	}
	return sb.String()
}

// GenerateSecretKey produces a new random Base32 secret of the configured
// length (DefaultSecretLength characters unless overridden via OTP_SECRET_LENGTH).
// Randomness comes from crypto/rand.
func GenerateSecretKey() (string, error) {
	length := DefaultSecretLength
	if cfg, err := LoadConfig(); err == nil && cfg.SecretLength > 0 {
		length = cfg.SecretLength
	}
	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecretKey, err)
	}
	return EncodeSecret(raw), nil
}

// ValidateSecretKey checks that a secret is long enough for interoperability
// with authenticator apps: at least MinSecretLength Base32 characters after
// normalization. Generate itself does not enforce this; it is a separate
// pre-flight check for user-supplied secrets.
func ValidateSecretKey(secret string) error {
	var n int
	for _, r := range strings.ToUpper(secret) {
		if strings.ContainsRune(SecretAlphabet, r) {
			n++
		}
	}
	if n < MinSecretLength {
		return ErrSecretTooShort
	}
	return nil
}
