// Package shapesim simulates rectangles bouncing around the canvas and
// renders them as frames.
package shapesim

import (
	"image"
	"math/rand"

	"github.com/fogleman/gg"

	"github.com/user/framecast/pkg/pixel"
	"github.com/user/framecast/pkg/ports"
)

var velocities = []float64{-2, -1.5, -1, 1, 1.5, 2}

// shape holds one rectangle's position, velocity and color.
type shape struct {
	x, y   float64
	dx, dy float64
	w, h   int
	color  pixel.Color
}

func newShape(boundsX, boundsY int, rng *rand.Rand) *shape {
	w := 10 + rng.Intn(11)
	h := 10 + rng.Intn(11)
	return &shape{
		w:     w,
		h:     h,
		x:     rng.Float64() * float64(boundsX-w),
		y:     rng.Float64() * float64(boundsY-h),
		dx:    velocities[rng.Intn(len(velocities))],
		dy:    velocities[rng.Intn(len(velocities))],
		color: randomColor(rng),
	}
}

// randomColor picks a bright color so shapes stand out against the black
// background.
func randomColor(rng *rand.Rand) pixel.Color {
	return pixel.Color{
		R: uint8(100 + rng.Intn(156)),
		G: uint8(100 + rng.Intn(156)),
		B: uint8(100 + rng.Intn(156)),
	}
}

// Producer advances and draws the simulation one frame per call.
type Producer struct {
	label  string
	width  int
	height int
	shapes []*shape
}

// New creates a simulator with count shapes on a width x height canvas.
func New(label string, count, width, height int, rng *rand.Rand) *Producer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	shapes := make([]*shape, count)
	for i := range shapes {
		shapes[i] = newShape(width, height, rng)
	}
	return &Producer{
		label:  label,
		width:  width,
		height: height,
		shapes: shapes,
	}
}

// Label implements ports.FrameProducer.
func (p *Producer) Label() string { return p.label }

// Frame advances every shape, bouncing off the canvas edges, and draws the
// result over a black background.
func (p *Producer) Frame() (*pixel.Buffer, error) {
	dc := gg.NewContext(p.width, p.height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	for _, s := range p.shapes {
		s.x += s.dx
		s.y += s.dy
		if s.x < 0 {
			s.x = 0
			s.dx = -s.dx
		} else if s.x+float64(s.w) > float64(p.width) {
			s.x = float64(p.width - s.w)
			s.dx = -s.dx
		}
		if s.y < 0 {
			s.y = 0
			s.dy = -s.dy
		} else if s.y+float64(s.h) > float64(p.height) {
			s.y = float64(p.height - s.h)
			s.dy = -s.dy
		}

		// Draw at integer coordinates to keep edges crisp; anti-aliased
		// edges would explode the frame's color count and defeat the
		// indexed encodings.
		dc.SetRGB255(int(s.color.R), int(s.color.G), int(s.color.B))
		dc.DrawRectangle(float64(int(s.x)), float64(int(s.y)), float64(s.w), float64(s.h))
		dc.Fill()
	}

	return fromImage(dc.Image(), p.width, p.height), nil
}

// fromImage copies a rendered image into an RGB pixel buffer.
func fromImage(img image.Image, width, height int) *pixel.Buffer {
	buf := pixel.NewBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			buf.SetXY(x, y, pixel.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
		}
	}
	return buf
}

var _ ports.FrameProducer = (*Producer)(nil)
