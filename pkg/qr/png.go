package qr

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// EncodePNG produces a standards-conformant QR code as PNG bytes, delegating
// to github.com/skip2/go-qrcode with medium error correction. Unlike the
// matrix renderer in this package, the result is scannable by real readers;
// use it wherever a camera must decode the provisioning URI reliably.
func EncodePNG(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrFailedToEncode, err)
	}
	return png, nil
}

// PNGDataURL returns the conformant QR code as a base64 data: URI.
func PNGDataURL(content string, size int) (string, error) {
	png, err := EncodePNG(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
