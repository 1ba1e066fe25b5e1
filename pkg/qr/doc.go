// Package qr renders provisioning URIs as QR-style images.
//
// Two encoders live here and they are deliberately distinct:
//
//   - Encode / RenderSVG implement the vault's historical matrix renderer: a
//     square module grid with finder and timing patterns whose free modules
//     are tiled with the raw payload bits. It carries no Reed-Solomon error
//     correction, no format or version information, and no masking, so a
//     stock QR scanner is NOT guaranteed to read it. The algorithm is kept
//     byte-for-byte stable for compatibility with images already produced by
//     the vault; do not "fix" it in place.
//   - EncodePNG / PNGDataURL delegate to github.com/skip2/go-qrcode and
//     produce a real, scannable QR code. Prefer these for camera transfer.
//
// Both paths take the same string input, typically an otpauth:// URI built
// by the otpauth package, and both reject empty content with
// ErrEmptyContent.
package qr
