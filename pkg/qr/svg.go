package qr

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	defaultSize   = 256
	defaultMargin = 4
	defaultDark   = "#000000"
	defaultLight  = "#ffffff"
)

// Options control SVG rendering. Zero values mean defaults: 256px output,
// black modules on white, a four-module quiet zone. A negative Margin
// requests no quiet zone at all.
type Options struct {
	Size       int    // output width and height in pixels
	Color      string // dark module fill
	Background string // background fill
	Margin     int    // quiet zone width in modules; negative means none
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = defaultSize
	}
	if o.Color == "" {
		o.Color = defaultDark
	}
	if o.Background == "" {
		o.Background = defaultLight
	}
	switch {
	case o.Margin < 0:
		o.Margin = 0
	case o.Margin == 0:
		o.Margin = defaultMargin
	}
	return o
}

// RenderSVG encodes data into a module matrix and serializes it as SVG
// markup: one background rect plus one unit rect per dark module, with the
// viewBox covering the grid and quiet zone. Output is deterministic for
// identical data and options.
func RenderSVG(data string, opts Options) (string, error) {
	if strings.TrimSpace(data) == "" {
		return "", ErrEmptyContent
	}
	opts = opts.withDefaults()

	m := Encode(data)
	total := m.Side() + 2*opts.Margin

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		opts.Size, opts.Size, total, total)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, total, total, opts.Background)
	for r := 0; r < m.Side(); r++ {
		for c := 0; c < m.Side(); c++ {
			if m.At(r, c) {
				fmt.Fprintf(&b, `<rect x="%d" y="%d" width="1" height="1" fill="%s"/>`,
					c+opts.Margin, r+opts.Margin, opts.Color)
			}
		}
	}
	b.WriteString(`</svg>`)
	return b.String(), nil
}

// SVGDataURL wraps SVG markup in a base64 data: URI for direct embedding in
// an img tag.
func SVGDataURL(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
