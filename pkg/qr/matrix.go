package qr

// versionThresholds maps input byte length to a matrix version: inputs up to
// thresholds[i] bytes get version i+1. Longer inputs grow one version per
// versionStep bytes beyond the table, capped at maxVersion.
var versionThresholds = []int{25, 47, 77, 114, 154, 195}

const (
	versionStep = 34
	maxVersion  = 40
	finderSize  = 7
	// finderZone is the side of the square exclusion zone anchored at each
	// finder corner: the 7x7 pattern plus its separator band. Payload bits
	// are never written inside it.
	finderZone = 9
)

// Matrix is a square grid of dark/light modules produced by Encode.
type Matrix struct {
	side    int
	modules [][]bool
}

// Side returns the number of modules along one edge.
func (m Matrix) Side() int { return m.side }

// At reports whether the module at (row, col) is dark. Out-of-range
// coordinates are light.
func (m Matrix) At(row, col int) bool {
	if row < 0 || row >= m.side || col < 0 || col >= m.side {
		return false
	}
	return m.modules[row][col]
}

// Encode builds the module matrix for data. The output is deterministic for
// identical input.
//
// This is NOT a standards-conformant QR encoder: there are no error
// correction codewords, no format or version information, and no mask
// selection. The matrix reproduces the visual structure of a QR code (finder
// patterns, timing pattern, payload texture) for on-screen secret transfer;
// see the package documentation before relying on scannability.
func Encode(data string) Matrix {
	version := versionFor(len(data))
	side := 17 + 4*version

	m := Matrix{side: side, modules: make([][]bool, side)}
	for i := range m.modules {
		m.modules[i] = make([]bool, side)
	}

	m.placeFinder(0, 0)
	m.placeFinder(0, side-finderSize)
	m.placeFinder(side-finderSize, 0)
	m.placeTiming()
	m.fillPayload(data)

	return m
}

func versionFor(n int) int {
	for i, limit := range versionThresholds {
		if n <= limit {
			return i + 1
		}
	}
	over := n - versionThresholds[len(versionThresholds)-1]
	version := len(versionThresholds) + 1 + (over-1)/versionStep
	return min(version, maxVersion)
}

// placeFinder draws one 7x7 finder pattern at the given corner: a dark
// border, a one-module light ring, and a dark 3x3 core.
func (m *Matrix) placeFinder(row, col int) {
	for r := 0; r < finderSize; r++ {
		for c := 0; c < finderSize; c++ {
			border := r == 0 || r == finderSize-1 || c == 0 || c == finderSize-1
			core := r >= 2 && r <= 4 && c >= 2 && c <= 4
			m.modules[row+r][col+c] = border || core
		}
	}
}

// placeTiming draws alternating modules along row and column 6 at even
// offsets, skipping the finder exclusion zones.
func (m *Matrix) placeTiming() {
	for i := 0; i < m.side; i++ {
		if i%2 != 0 {
			continue
		}
		if !m.inFinderZone(6, i) {
			m.modules[6][i] = true
		}
		if !m.inFinderZone(i, 6) {
			m.modules[i][6] = true
		}
	}
}

func (m *Matrix) inFinderZone(row, col int) bool {
	switch {
	case row < finderZone && col < finderZone:
		return true
	case row < finderZone && col >= m.side-finderZone:
		return true
	case row >= m.side-finderZone && col < finderZone:
		return true
	}
	return false
}

// reserved reports whether a module belongs to a structural region and must
// never carry payload bits.
func (m *Matrix) reserved(row, col int) bool {
	return m.inFinderZone(row, col) || row == 6 || col == 6
}

// fillPayload writes the 8-bit MSB-first bit string of data into every free
// module in row-major order, tiling the bits until the grid is covered.
func (m *Matrix) fillPayload(data string) {
	if len(data) == 0 {
		return
	}
	bits := make([]bool, 0, len(data)*8)
	for i := 0; i < len(data); i++ {
		for b := 7; b >= 0; b-- {
			bits = append(bits, data[i]&(1<<b) != 0)
		}
	}

	idx := 0
	for r := 0; r < m.side; r++ {
		for c := 0; c < m.side; c++ {
			if m.reserved(r, c) {
				continue
			}
			m.modules[r][c] = bits[idx%len(bits)]
			idx++
		}
	}
}
