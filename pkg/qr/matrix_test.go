package qr_test

import (
	"strings"
	"testing"

	"github.com/keyfold/otpkit/pkg/qr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_VersionSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		length int
		side   int
	}{
		{1, 21},      // version 1
		{25, 21},     // last input on version 1
		{26, 25},     // version 2
		{47, 25},     // last input on version 2
		{48, 29},     // version 3
		{77, 29},     // last input on version 3
		{114, 33},    // last input on version 4
		{154, 37},    // last input on version 5
		{195, 41},    // last input on version 6
		{196, 45},    // version 7
		{500, 77},    // grows past the threshold table
		{10000, 177}, // capped at version 40
	}

	for _, tt := range tests {
		m := qr.Encode(strings.Repeat("A", tt.length))
		assert.Equal(t, tt.side, m.Side(), "input length %d", tt.length)
	}
}

func TestEncode_FinderPatterns(t *testing.T) {
	t.Parallel()

	m := qr.Encode("HELLO")
	require.Equal(t, 21, m.Side())

	corners := [][2]int{{0, 0}, {0, 14}, {14, 0}}
	for _, corner := range corners {
		row, col := corner[0], corner[1]
		// Dark 7x7 border.
		for i := 0; i < 7; i++ {
			assert.True(t, m.At(row, col+i), "top border at %d,%d", row, col+i)
			assert.True(t, m.At(row+6, col+i), "bottom border at %d,%d", row+6, col+i)
			assert.True(t, m.At(row+i, col), "left border at %d,%d", row+i, col)
			assert.True(t, m.At(row+i, col+6), "right border at %d,%d", row+i, col+6)
		}
		// Light ring between border and core.
		for i := 1; i < 6; i++ {
			assert.False(t, m.At(row+1, col+i), "ring at %d,%d", row+1, col+i)
			assert.False(t, m.At(row+5, col+i), "ring at %d,%d", row+5, col+i)
			assert.False(t, m.At(row+i, col+1), "ring at %d,%d", row+i, col+1)
			assert.False(t, m.At(row+i, col+5), "ring at %d,%d", row+i, col+5)
		}
		// Dark 3x3 core.
		for r := 2; r <= 4; r++ {
			for c := 2; c <= 4; c++ {
				assert.True(t, m.At(row+r, col+c), "core at %d,%d", row+r, col+c)
			}
		}
	}
}

func TestEncode_TimingPattern(t *testing.T) {
	t.Parallel()

	// 26 bytes gives version 2, side 25: timing runs over indexes 9..15.
	m := qr.Encode(strings.Repeat("\x00", 26))
	require.Equal(t, 25, m.Side())

	for i := 9; i < 16; i++ {
		want := i%2 == 0
		assert.Equal(t, want, m.At(6, i), "row timing at col %d", i)
		assert.Equal(t, want, m.At(i, 6), "col timing at row %d", i)
	}
}

func TestEncode_ReservedRegionsNeverCarryPayload(t *testing.T) {
	t.Parallel()

	// All-ones payload darkens every free module but must leave structural
	// regions untouched.
	m := qr.Encode(strings.Repeat("\xff", 10))
	require.Equal(t, 21, m.Side())

	assert.False(t, m.At(1, 1), "finder ring stays light")
	assert.False(t, m.At(1, 15), "top-right finder ring stays light")
	assert.False(t, m.At(15, 1), "bottom-left finder ring stays light")
	assert.False(t, m.At(6, 11), "odd timing offsets stay light")
	assert.False(t, m.At(11, 6), "odd timing offsets stay light")

	// Every free module is dark.
	zero := qr.Encode(strings.Repeat("\x00", 10))
	for r := 0; r < m.Side(); r++ {
		for c := 0; c < m.Side(); c++ {
			if m.At(r, c) != zero.At(r, c) {
				// Differing modules are exactly the payload positions; the
				// all-ones matrix must be dark there.
				assert.True(t, m.At(r, c), "payload module %d,%d", r, c)
			}
		}
	}
}

// structural mirrors the renderer's reserved predicate: finder exclusion
// zones plus the timing row and column.
func structural(side, row, col int) bool {
	inZone := (row < 9 && col < 9) ||
		(row < 9 && col >= side-9) ||
		(row >= side-9 && col < 9)
	return inZone || row == 6 || col == 6
}

func TestEncode_PayloadTiling(t *testing.T) {
	t.Parallel()

	// 0xAA is 10101010: free modules alternate dark/light in row-major fill
	// order, wrapping seamlessly because the pattern is period two.
	m := qr.Encode(strings.Repeat("\xaa", 10))

	expectDark := true
	for r := 0; r < m.Side(); r++ {
		for c := 0; c < m.Side(); c++ {
			if structural(m.Side(), r, c) {
				continue
			}
			assert.Equal(t, expectDark, m.At(r, c), "payload module %d,%d", r, c)
			expectDark = !expectDark
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	t.Parallel()

	first := qr.Encode("otpauth://totp/Keyfold:alice?secret=JBSWY3DPEHPK3PXP")
	second := qr.Encode("otpauth://totp/Keyfold:alice?secret=JBSWY3DPEHPK3PXP")
	require.Equal(t, first.Side(), second.Side())
	for r := 0; r < first.Side(); r++ {
		for c := 0; c < first.Side(); c++ {
			assert.Equal(t, first.At(r, c), second.At(r, c), "module %d,%d", r, c)
		}
	}
}

func TestEncode_OutOfRangeIsLight(t *testing.T) {
	t.Parallel()

	m := qr.Encode("HELLO")
	assert.False(t, m.At(-1, 0))
	assert.False(t, m.At(0, -1))
	assert.False(t, m.At(m.Side(), 0))
	assert.False(t, m.At(0, m.Side()))
}
