package encoding

import "strings"

// Diff emits only the pixels that changed since the previous buffer, as
// "linearIndexHex:colorhex" entries in scan order. It declines when there is
// no previous buffer or when nothing changed.
type Diff struct{}

// Tag implements Encoder.
func (Diff) Tag() string { return "D" }

// Encode implements Encoder.
func (Diff) Encode(req Request) (string, bool) {
	if req.Previous == nil {
		return "", false
	}

	cur, prev := req.Current, req.Previous
	var parts []string
	for i, n := 0, cur.PixelCount(); i < n; i++ {
		c := cur.At(i)
		if c == prev.At(i) {
			continue
		}
		parts = append(parts, hexIndex(i)+":"+c.Hex())
	}
	if len(parts) == 0 {
		return "", false
	}
	return "D|" + strings.Join(parts, "|"), true
}
