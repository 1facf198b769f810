package shapesim

import (
	"math/rand"
	"testing"

	"github.com/user/framecast/pkg/pixel"
)

func TestProducer_Frame_Dimensions(t *testing.T) {
	p := New("shapes", 4, 200, 150, rand.New(rand.NewSource(1)))

	buf, err := p.Frame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Width != 200 || buf.Height != 150 {
		t.Errorf("got %dx%d, want 200x150", buf.Width, buf.Height)
	}
}

func TestProducer_Frame_DrawsShapesOverBlack(t *testing.T) {
	p := New("shapes", 4, 100, 100, rand.New(rand.NewSource(42)))

	buf, err := p.Frame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	colors := buf.UniqueColors()
	if len(colors) < 2 {
		t.Fatal("expected shapes to be visible against the background")
	}
	if colors[0] != (pixel.Color{}) {
		t.Errorf("background should be black, smallest color is %+v", colors[0])
	}
	// Four rectangles over black: at most 5 distinct colors, so the frame
	// stays well within the indexed-encoding bounds.
	if len(colors) > 5 {
		t.Errorf("got %d distinct colors, want at most 5", len(colors))
	}
}

func TestProducer_Frame_ShapeColorsAreBright(t *testing.T) {
	p := New("shapes", 8, 100, 100, rand.New(rand.NewSource(7)))

	buf, err := p.Frame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range buf.UniqueColors() {
		if c == (pixel.Color{}) {
			continue // background
		}
		if c.R < 100 || c.G < 100 || c.B < 100 {
			t.Errorf("shape color %+v is below the brightness floor", c)
		}
	}
}

func TestProducer_Frame_ShapesStayInBounds(t *testing.T) {
	p := New("shapes", 4, 50, 40, rand.New(rand.NewSource(3)))

	// Run the simulation long enough for every shape to bounce repeatedly.
	for i := 0; i < 500; i++ {
		if _, err := p.Frame(); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
	for i, s := range p.shapes {
		if s.x < 0 || s.y < 0 || s.x+float64(s.w) > 50 || s.y+float64(s.h) > 40 {
			t.Errorf("shape %d escaped the canvas: x=%.1f y=%.1f w=%d h=%d", i, s.x, s.y, s.w, s.h)
		}
	}
}

func TestProducer_Frame_Animates(t *testing.T) {
	p := New("shapes", 4, 100, 100, rand.New(rand.NewSource(9)))

	first, _ := p.Frame()
	second, _ := p.Frame()
	if first.Equal(second) {
		t.Error("consecutive frames should differ while shapes are moving")
	}
}
