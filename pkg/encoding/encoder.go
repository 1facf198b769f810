// Package encoding implements the candidate frame encodings and the shared
// wire-format helpers. Each encoder renders one pixel buffer into a tagged
// payload string or declines, and the publisher picks the smallest result.
package encoding

import (
	"strconv"

	"github.com/user/framecast/pkg/palette"
	"github.com/user/framecast/pkg/pixel"
)

// Request carries everything an encoder may consult for one frame.
type Request struct {
	// Current is the buffer to encode.
	Current *pixel.Buffer
	// Previous is the most recently published buffer, nil on the first frame.
	Previous *pixel.Buffer
	// CachedPaletteIDs is the client's per-request palette hint: palette ids
	// the client claims to already hold.
	CachedPaletteIDs map[int]bool
}

// Encoder is one candidate frame encoding.
type Encoder interface {
	// Tag returns the wire-format tag identifying the encoding.
	Tag() string
	// Encode renders the request into a payload string. The second result is
	// false when the encoding does not apply to this frame.
	Encode(req Request) (string, bool)
}

// Suite returns the full encoder set in its fixed declaration order. The
// order doubles as the tie-break rule when two candidates have equal length.
func Suite(cache *palette.Cache) []Encoder {
	return []Encoder{
		Full{},
		FullRLE{},
		Diff{},
		NewIndexed(cache),
		NewDiffIndexed(cache),
		NewIndexedRLE(cache),
	}
}

// hexIndex renders a non-negative integer as minimal-width lowercase hex.
// Used for linear pixel indices and RLE run counts.
func hexIndex(n int) string {
	return strconv.FormatInt(int64(n), 16)
}

// paletteDigits returns the per-pixel index width for a palette: one hex
// digit when the palette fits in 16 colors, otherwise two.
func paletteDigits(p *palette.Palette) int {
	if len(p.Colors) <= 16 {
		return 1
	}
	return 2
}

// formatPaletteIndex renders a palette index at the given digit width.
// Two-digit indices are zero-padded; one-digit indices never need padding.
func formatPaletteIndex(idx, digits int) string {
	s := strconv.FormatInt(int64(idx), 16)
	if digits == 2 && len(s) < 2 {
		return "0" + s
	}
	return s
}

// indexableColors returns the buffer's sorted unique colors when the count
// is within the indexed-encoding bounds (more than 1, at most MaxColors).
func indexableColors(buf *pixel.Buffer) ([]pixel.Color, bool) {
	colors := buf.UniqueColors()
	if len(colors) <= 1 || len(colors) > palette.MaxColors {
		return nil, false
	}
	return colors, true
}

// palettePayload renders the palette color table, or an empty field when the
// client already holds the palette and the server did not just create it.
func palettePayload(p *palette.Palette, created bool, cached map[int]bool) string {
	if !created && cached[p.ID] {
		return ""
	}
	out := make([]byte, 0, len(p.Colors)*7)
	for i, c := range p.Colors {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, c.Hex()...)
	}
	return string(out)
}
