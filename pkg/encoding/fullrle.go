package encoding

import (
	"strings"

	"github.com/user/framecast/pkg/rle"
)

// FullRLE renders each pixel as a 6-hex-digit color string and run-length
// compresses the sequence. Pairs are rendered as "colorhex,counthex".
type FullRLE struct{}

// Tag implements Encoder.
func (FullRLE) Tag() string { return "FR" }

// Encode implements Encoder.
func (FullRLE) Encode(req Request) (string, bool) {
	buf := req.Current
	hexes := make([]string, buf.PixelCount())
	for i := range hexes {
		hexes[i] = buf.At(i).Hex()
	}

	runs := rle.Encode(hexes)
	if len(runs) == 0 {
		return "", false
	}

	parts := make([]string, len(runs))
	for i, r := range runs {
		parts[i] = r.Value + "," + hexIndex(r.Count)
	}
	return "FR|" + strings.Join(parts, "|"), true
}
