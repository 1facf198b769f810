// Package noisegen provides the synthetic noise frame producers.
package noisegen

import (
	"math/rand"

	"github.com/user/framecast/pkg/pixel"
	"github.com/user/framecast/pkg/ports"
)

// Kind selects the noise variant.
type Kind int

const (
	// KindColor produces independent uniform bytes per channel.
	KindColor Kind = iota
	// KindGray produces one uniform byte replicated across R, G and B.
	KindGray
	// KindBW produces pure black or pure white per pixel.
	KindBW
)

// Producer generates noise frames of a fixed size.
type Producer struct {
	label  string
	kind   Kind
	width  int
	height int
	rng    *rand.Rand
}

// New creates a noise producer with the given mode label.
func New(label string, kind Kind, width, height int, rng *rand.Rand) *Producer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Producer{
		label:  label,
		kind:   kind,
		width:  width,
		height: height,
		rng:    rng,
	}
}

// Label implements ports.FrameProducer.
func (p *Producer) Label() string { return p.label }

// Frame implements ports.FrameProducer.
func (p *Producer) Frame() (*pixel.Buffer, error) {
	buf := pixel.NewBuffer(p.width, p.height)
	switch p.kind {
	case KindGray:
		for i, n := 0, buf.PixelCount(); i < n; i++ {
			v := uint8(p.rng.Intn(256))
			buf.Set(i, pixel.Color{R: v, G: v, B: v})
		}
	case KindBW:
		for i, n := 0, buf.PixelCount(); i < n; i++ {
			v := uint8(p.rng.Intn(2)) * 255
			buf.Set(i, pixel.Color{R: v, G: v, B: v})
		}
	default:
		p.rng.Read(buf.Pix)
	}
	return buf, nil
}

var _ ports.FrameProducer = (*Producer)(nil)
