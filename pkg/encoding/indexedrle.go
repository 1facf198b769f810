package encoding

import (
	"fmt"
	"strings"

	"github.com/user/framecast/pkg/palette"
	"github.com/user/framecast/pkg/rle"
)

// IndexedRLE run-length compresses the per-pixel palette index sequence.
// Pairs are rendered as "indexHex,countHex". Applicability follows the same
// palette color bounds as Indexed.
type IndexedRLE struct {
	cache *palette.Cache
}

// NewIndexedRLE creates an IndexedRLE encoder backed by the shared palette cache.
func NewIndexedRLE(cache *palette.Cache) IndexedRLE {
	return IndexedRLE{cache: cache}
}

// Tag implements Encoder.
func (IndexedRLE) Tag() string { return "IR" }

// Encode implements Encoder.
func (e IndexedRLE) Encode(req Request) (string, bool) {
	colors, ok := indexableColors(req.Current)
	if !ok {
		return "", false
	}

	p, created := e.cache.GetOrCreate(colors)
	payload := palettePayload(p, created, req.CachedPaletteIDs)
	digits := paletteDigits(p)

	buf := req.Current
	indices := make([]int, buf.PixelCount())
	for i := range indices {
		indices[i], _ = p.IndexOf(buf.At(i))
	}

	runs := rle.Encode(indices)
	if len(runs) == 0 {
		return "", false
	}

	parts := make([]string, len(runs))
	for i, r := range runs {
		parts[i] = formatPaletteIndex(r.Value, digits) + "," + hexIndex(r.Count)
	}
	return fmt.Sprintf("IR|%d|%s|%s", p.ID, payload, strings.Join(parts, "|")), true
}
