// Command otpkit provisions a TOTP entry from the terminal: it generates (or
// accepts) a Base32 secret, prints the otpauth:// URI and writes a QR image
// for transfer into an authenticator app.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/keyfold/otpkit/pkg/logger"
	"github.com/keyfold/otpkit/pkg/otpauth"
	"github.com/keyfold/otpkit/pkg/qr"
	"github.com/keyfold/otpkit/pkg/totp"
)

func main() {
	var (
		issuer  = flag.String("issuer", "Keyfold", "issuer shown in the authenticator app")
		account = flag.String("account", "", "account label, typically an email (required)")
		secret  = flag.String("secret", "", "existing Base32 secret; omit to generate a fresh one")
		period  = flag.Int("period", 0, "code validity window in seconds (default from OTP_PERIOD)")
		digits  = flag.Int("digits", 0, "code length (default from OTP_DIGITS)")
		out     = flag.String("out", "", "write an SVG QR image to this path")
		outPNG  = flag.String("png", "", "write a scannable PNG QR image to this path")
		show    = flag.Bool("code", false, "also print the current code")
	)
	flag.Parse()

	log := logger.NewFromEnv(logger.WithAttr(slog.String("component", "otpkit")))

	if err := run(*issuer, *account, *secret, *period, *digits, *out, *outPNG, *show, log); err != nil {
		log.Error("provisioning failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(issuer, account, secret string, period, digits int, out, outPNG string, show bool, log *slog.Logger) error {
	if account == "" {
		return fmt.Errorf("-account is required")
	}

	cfg, err := totp.LoadConfig()
	if err != nil {
		return err
	}
	if period == 0 {
		period = cfg.Period
	}
	if digits == 0 {
		digits = cfg.Digits
	}

	if secret == "" {
		secret, err = totp.GenerateSecretKey()
		if err != nil {
			return err
		}
		log.Info("generated new secret")
	} else if err := totp.ValidateSecretKey(secret); err != nil {
		return err
	}

	uri, err := otpauth.Build(otpauth.Params{
		Secret:      secret,
		Issuer:      issuer,
		AccountName: account,
		Period:      period,
		Digits:      digits,
	})
	if err != nil {
		return err
	}

	fmt.Println(uri)

	if show {
		code, err := totp.Generate(context.Background(), secret, totp.Options{Period: period, Digits: digits})
		if err != nil {
			return err
		}
		fmt.Printf("current code: %s (valid %ds)\n", code.Code, code.Remaining)
	}

	if out != "" {
		svg, err := qr.RenderSVG(uri, qr.Options{})
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
			return err
		}
		log.Info("wrote SVG QR image", slog.String("path", out))
	}

	if outPNG != "" {
		png, err := qr.EncodePNG(uri, 0)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPNG, png, 0o644); err != nil {
			return err
		}
		log.Info("wrote PNG QR image", slog.String("path", outPNG))
	}

	return nil
}
