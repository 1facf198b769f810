package encoding

import (
	"fmt"
	"strings"

	"github.com/user/framecast/pkg/palette"
)

// Indexed encodes the frame as a palette id, an optional color table, and
// one palette index per pixel in scan order. It declines unless the buffer
// has more than 1 and at most 256 distinct colors.
type Indexed struct {
	cache *palette.Cache
}

// NewIndexed creates an Indexed encoder backed by the shared palette cache.
func NewIndexed(cache *palette.Cache) Indexed {
	return Indexed{cache: cache}
}

// Tag implements Encoder.
func (Indexed) Tag() string { return "I" }

// Encode implements Encoder.
func (e Indexed) Encode(req Request) (string, bool) {
	colors, ok := indexableColors(req.Current)
	if !ok {
		return "", false
	}

	p, created := e.cache.GetOrCreate(colors)
	payload := palettePayload(p, created, req.CachedPaletteIDs)
	digits := paletteDigits(p)

	var sb strings.Builder
	buf := req.Current
	sb.Grow(buf.PixelCount() * digits)
	for i, n := 0, buf.PixelCount(); i < n; i++ {
		idx, _ := p.IndexOf(buf.At(i))
		sb.WriteString(formatPaletteIndex(idx, digits))
	}
	return fmt.Sprintf("I|%d|%s|%s", p.ID, payload, sb.String()), true
}
