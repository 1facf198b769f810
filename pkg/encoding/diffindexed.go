package encoding

import (
	"fmt"
	"strings"

	"github.com/user/framecast/pkg/palette"
)

// DiffIndexed combines the diff and indexed encodings: changed pixels are
// emitted as "linearIndexHex:paletteIndexHex" entries. It declines without a
// previous buffer, outside the palette color bounds, or when nothing changed.
// The palette is only resolved once a non-empty diff is known, so a no-change
// frame never touches the cache.
type DiffIndexed struct {
	cache *palette.Cache
}

// NewDiffIndexed creates a DiffIndexed encoder backed by the shared palette cache.
func NewDiffIndexed(cache *palette.Cache) DiffIndexed {
	return DiffIndexed{cache: cache}
}

// Tag implements Encoder.
func (DiffIndexed) Tag() string { return "DI" }

// Encode implements Encoder.
func (e DiffIndexed) Encode(req Request) (string, bool) {
	if req.Previous == nil {
		return "", false
	}
	colors, ok := indexableColors(req.Current)
	if !ok {
		return "", false
	}

	cur, prev := req.Current, req.Previous
	var changed []int
	for i, n := 0, cur.PixelCount(); i < n; i++ {
		if cur.At(i) != prev.At(i) {
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return "", false
	}

	p, created := e.cache.GetOrCreate(colors)
	payload := palettePayload(p, created, req.CachedPaletteIDs)
	digits := paletteDigits(p)

	parts := make([]string, len(changed))
	for i, pixIdx := range changed {
		palIdx, _ := p.IndexOf(cur.At(pixIdx))
		parts[i] = hexIndex(pixIdx) + ":" + formatPaletteIndex(palIdx, digits)
	}
	return fmt.Sprintf("DI|%d|%s|%s", p.ID, payload, strings.Join(parts, "|")), true
}
