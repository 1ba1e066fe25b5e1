// Package totp implements the code-generation core of the Keyfold vault:
// lenient Base32 secret handling, RFC 4226 HOTP dynamic truncation, and
// RFC 6238 time-based one-time codes, together with secret-generation and
// recovery-code helpers.
//
// The package is deliberately self-contained: it carries no dependency on a
// third-party OTP library so the same code path runs unchanged in browser
// and desktop builds, where the HMAC capability differs.
//
// # Architecture
//
//   - base32.go  – the secret codec. DecodeSecret strips everything outside
//     the Base32 alphabet and discards incomplete trailing bits, matching how
//     pasted authenticator secrets are treated in practice. EncodeSecret is
//     the simplified generation-side encoder (one alphabet character per
//     random byte) and is documented as not being a bit-exact inverse.
//   - hmac.go    – the HMACProvider capability. Generation delegates all
//     HMAC-SHA1 work to an injected provider so host environments with an
//     asynchronous crypto API can supply their own; StdHMACProvider is the
//     local default.
//   - totp.go    – Generate and Validate. Generate returns the zero-padded
//     code plus the seconds remaining in the current window; Validate accepts
//     one window of clock drift on either side and compares in constant time.
//   - recovery.go – backup-code creation, hashing and verification.
//
// # Usage
//
//	secret, _ := totp.GenerateSecretKey()
//
//	code, err := totp.Generate(ctx, secret, totp.Options{})
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(code.Code, code.Remaining)
//
// # Error Handling
//
// Failures are reported through package-level sentinels (ErrInvalidSecret,
// ErrHMACUnavailable, ErrSecretTooShort, ...) joined with the underlying
// cause where one exists; inspect them with errors.Is.
package totp
