package encoding

import "encoding/base64"

// Full is the fallback encoding: the raw buffer bytes, base64-armored.
// It never declines, so every frame has at least one candidate.
type Full struct{}

// Tag implements Encoder.
func (Full) Tag() string { return "F" }

// Encode implements Encoder.
func (Full) Encode(req Request) (string, bool) {
	return "F|" + base64.StdEncoding.EncodeToString(req.Current.Pix), true
}
