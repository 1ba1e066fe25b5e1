package qr_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/keyfold/otpkit/pkg/qr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePNG(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()
		_, err := qr.EncodePNG("", 256)
		assert.ErrorIs(t, err, qr.ErrEmptyContent)
	})

	t.Run("produces a decodable PNG of the requested size", func(t *testing.T) {
		t.Parallel()
		data, err := qr.EncodePNG("otpauth://totp/Keyfold:alice?secret=JBSWY3DPEHPK3PXP", 256)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
		assert.Equal(t, 256, img.Bounds().Dy())
	})

	t.Run("falls back to the default size", func(t *testing.T) {
		t.Parallel()
		data, err := qr.EncodePNG("hello", 0)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
	})
}

func TestPNGDataURL(t *testing.T) {
	t.Parallel()

	t.Run("propagates encoder errors", func(t *testing.T) {
		t.Parallel()
		_, err := qr.PNGDataURL("  ", 256)
		assert.ErrorIs(t, err, qr.ErrEmptyContent)
	})

	t.Run("wraps the PNG in a data URI", func(t *testing.T) {
		t.Parallel()
		uri, err := qr.PNGDataURL("hello", 128)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(raw))
		require.NoError(t, err)
	})
}
