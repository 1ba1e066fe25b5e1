package totp

import (
	"context"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

const (
	DefaultDigits       = 6      // Standard 6-digit TOTP codes
	DefaultPeriod       = 30     // 30-second validity window (RFC 6238 standard)
	DefaultSecretLength = 32     // Base32 characters emitted by GenerateSecretKey
	Algorithm           = "SHA1" // Only algorithm the code path supports
)

// Options control a single generation call. Zero values mean defaults:
// period 30, digits 6, timestamp time.Now(), provider StdHMACProvider.
type Options struct {
	Period    int          // validity window in seconds
	Digits    int          // number of code digits (practical range 6-8)
	Timestamp time.Time    // instant to generate for; zero means now
	Provider  HMACProvider // HMAC capability; nil means local crypto/hmac
}

func (o Options) withDefaults() Options {
	if o.Period <= 0 {
		o.Period = DefaultPeriod
	}
	if o.Digits <= 0 {
		o.Digits = DefaultDigits
	}
	if o.Timestamp.IsZero() {
		o.Timestamp = time.Now()
	}
	if o.Provider == nil {
		o.Provider = StdHMACProvider{}
	}
	return o
}

// Code is the result of one generation: the zero-padded decimal code and the
// number of seconds it remains valid within the current period.
type Code struct {
	Code      string
	Remaining int
	Period    int
}

// Generate computes the RFC 6238 time-based one-time code for secret at the
// instant given in opts. The secret is decoded leniently (see DecodeSecret);
// a secret with no decodable key material fails with ErrInvalidSecret.
// Provider failures are returned joined with ErrHMACUnavailable.
func Generate(ctx context.Context, secret string, opts Options) (Code, error) {
	opts = opts.withDefaults()

	key := DecodeSecret(secret)
	if len(key) == 0 {
		return Code{}, ErrInvalidSecret
	}

	ms := opts.Timestamp.UnixMilli()
	counter := uint64(ms / 1000 / int64(opts.Period))

	code, err := hotpCode(ctx, opts.Provider, key, counter, opts.Digits)
	if err != nil {
		return Code{}, err
	}

	// Seconds left in the window, rounded up from millisecond precision so
	// the result stays in (0, period] and equals period exactly on a step
	// boundary.
	windowMs := int64(opts.Period) * 1000
	remainingMs := windowMs - ms%windowMs
	remaining := int((remainingMs + 999) / 1000)

	return Code{Code: code, Remaining: remaining, Period: opts.Period}, nil
}

// Validate reports whether code matches the secret at the instant given in
// opts, accepting the previous and next window to absorb clock drift between
// the vault and the authenticating party. Comparison is constant-time.
func Validate(ctx context.Context, secret, code string, opts Options) (bool, error) {
	opts = opts.withDefaults()

	code = strings.TrimSpace(code)
	if !regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, opts.Digits)).MatchString(code) {
		return false, ErrInvalidCodeFormat
	}

	key := DecodeSecret(secret)
	if len(key) == 0 {
		return false, ErrInvalidSecret
	}

	counter := opts.Timestamp.UnixMilli() / 1000 / int64(opts.Period)
	for skew := int64(-1); skew <= 1; skew++ {
		candidate, err := hotpCode(ctx, opts.Provider, key, uint64(counter+skew), opts.Digits)
		if err != nil {
			return false, err
		}
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(code)) == 1 {
			return true, nil
		}
	}
	return false, nil
}

// hotpCode implements the RFC 4226 HOTP computation: an 8-byte big-endian
// counter is signed with HMAC-SHA1 and reduced to a decimal code via dynamic
// truncation (RFC 4226 section 5.3).
func hotpCode(ctx context.Context, provider HMACProvider, key []byte, counter uint64, digits int) (string, error) {
	var message [8]byte
	binary.BigEndian.PutUint64(message[:], counter)

	digest, err := provider.HMACSHA1(ctx, key, message[:])
	if err != nil {
		return "", errors.Join(ErrHMACUnavailable, err)
	}
	if len(digest) < sha1.Size {
		return "", errors.Join(ErrHMACUnavailable, fmt.Errorf("digest too short: %d bytes", len(digest)))
	}

	offset := digest[len(digest)-1] & 0x0f
	value := (int(digest[offset]&0x7f) << 24) |
		(int(digest[offset+1]&0xff) << 16) |
		(int(digest[offset+2]&0xff) << 8) |
		int(digest[offset+3]&0xff)

	value %= int(math.Pow10(digits))

	return fmt.Sprintf("%0*d", digits, value), nil
}
