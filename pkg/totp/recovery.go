package totp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
)

// GenerateRecoveryCodes creates single-use backup codes for vault entries
// whose authenticator device is lost. Each code is a 16-character hex string
// carrying 64 bits of entropy from crypto/rand.
func GenerateRecoveryCodes(count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidRecoveryCodeCount
	}

	codes := make([]string, count)
	for i := 0; i < count; i++ {
		raw := make([]byte, 8)
		if _, err := rand.Read(raw); err != nil {
			return nil, errors.Join(ErrFailedToGenerateRecoveryCode, err)
		}
		codes[i] = fmt.Sprintf("%X", raw)
	}
	return codes, nil
}

// HashRecoveryCode returns the SHA-256 hash of a recovery code in hex form,
// suitable for storage in place of the plaintext code.
func HashRecoveryCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// VerifyRecoveryCode compares a submitted code against a stored hash in
// constant time.
func VerifyRecoveryCode(code, hashedCode string) bool {
	computed := HashRecoveryCode(code)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashedCode)) == 1
}
