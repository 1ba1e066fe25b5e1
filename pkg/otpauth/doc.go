// Package otpauth parses and builds otpauth://totp/ provisioning URIs, the
// de facto format authenticator apps use to exchange TOTP secrets, usually
// via QR code.
//
// Parse and Build are strict inverses for the fields that matter for code
// generation (secret, issuer, account, period, digits). Codec failures
// always propagate: provisioning is a one-shot explicit user action, and a
// silent fallback would hide a corrupt or malicious URI.
package otpauth
