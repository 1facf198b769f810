package noisegen

import (
	"math/rand"
	"testing"
)

func TestProducer_Frame_Dimensions(t *testing.T) {
	p := New("noise", KindColor, 20, 10, rand.New(rand.NewSource(1)))

	buf, err := p.Frame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Width != 20 || buf.Height != 10 {
		t.Errorf("got %dx%d, want 20x10", buf.Width, buf.Height)
	}
	if len(buf.Pix) != 20*10*3 {
		t.Errorf("pixel data has %d bytes, want %d", len(buf.Pix), 20*10*3)
	}
}

func TestProducer_Frame_Gray(t *testing.T) {
	p := New("gray", KindGray, 16, 16, rand.New(rand.NewSource(1)))

	buf, err := p.Frame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, n := 0, buf.PixelCount(); i < n; i++ {
		c := buf.At(i)
		if c.R != c.G || c.G != c.B {
			t.Fatalf("pixel %d is not gray: %+v", i, c)
		}
	}
}

func TestProducer_Frame_BW(t *testing.T) {
	p := New("bw", KindBW, 16, 16, rand.New(rand.NewSource(1)))

	buf, err := p.Frame()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, n := 0, buf.PixelCount(); i < n; i++ {
		c := buf.At(i)
		if !(c.R == 0 && c.G == 0 && c.B == 0) && !(c.R == 255 && c.G == 255 && c.B == 255) {
			t.Fatalf("pixel %d is neither black nor white: %+v", i, c)
		}
	}
}

func TestProducer_Label(t *testing.T) {
	p := New("random_color_noise", KindColor, 4, 4, nil)
	if p.Label() != "random_color_noise" {
		t.Errorf("got %q", p.Label())
	}
}
