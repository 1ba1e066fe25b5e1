package totp

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
)

// HMACProvider abstracts the HMAC-SHA1 capability used for code generation.
// Browser builds delegate to the host crypto API, which may complete
// asynchronously; implementations are therefore allowed to block on ctx and
// must honor its cancellation. Failures surface from Generate joined with
// ErrHMACUnavailable.
type HMACProvider interface {
	HMACSHA1(ctx context.Context, key, message []byte) ([]byte, error)
}

// StdHMACProvider computes HMAC-SHA1 locally with crypto/hmac. It is the
// default provider and never fails.
type StdHMACProvider struct{}

func (StdHMACProvider) HMACSHA1(_ context.Context, key, message []byte) ([]byte, error) {
	mac := hmac.New(sha1.New, key)
	mac.Write(message)
	return mac.Sum(nil), nil
}
