package render

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/adrn-blog/transparent-animation/internal/trail"
)

func testStyle(radius float64) Style {
	return Style{Color: colorful.Color{R: 0.2, G: 0.4, B: 0.8}, Radius: radius}
}

func TestPixelMapping(t *testing.T) {
	c := NewCanvas(100, 0.25, 1, testStyle(4))
	x, y := c.Pixel(trail.Point{})
	if x != 50 || y != 50 {
		t.Errorf("origin maps to (%g, %g), want (50, 50)", x, y)
	}
	// World +Y is up, pixel +Y is down.
	x, y = c.Pixel(trail.Point{X: 0, Y: 1})
	if x != 50 || y >= 50 {
		t.Errorf("(0, 1) maps to (%g, %g), want x = 50 and y above center", x, y)
	}
}

func TestFrameBackgroundTransparent(t *testing.T) {
	c := NewCanvas(64, 0.25, 2, testStyle(4))
	img := c.Frame(nil)
	b := img.Bounds()
	if b.Dx() != 64 || b.Dy() != 64 {
		t.Fatalf("frame bounds %v, want 64x64", b)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			t.Fatalf("empty frame has non-transparent pixel (alpha %d)", img.Pix[i])
		}
	}
}

func TestFrameDrawsHead(t *testing.T) {
	c := NewCanvas(64, 0.25, 2, testStyle(5))
	markers := []trail.Marker{{Pos: trail.Point{}, Opacity: 1, Drawn: true}}
	img := c.Frame(markers)
	if a := img.NRGBAAt(32, 32).A; a < 250 {
		t.Errorf("head center alpha = %d, want opaque", a)
	}
	if a := img.NRGBAAt(1, 1).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
}

func TestFrameSkipsUndrawnMarkers(t *testing.T) {
	c := NewCanvas(64, 0.25, 1, testStyle(5))
	markers := []trail.Marker{{Pos: trail.Point{}, Opacity: 1, Drawn: false}}
	img := c.Frame(markers)
	if a := img.NRGBAAt(32, 32).A; a != 0 {
		t.Errorf("undrawn marker was stamped (alpha %d)", a)
	}
}

func TestFrameAppliesFadeOpacity(t *testing.T) {
	c := NewCanvas(64, 0.25, 1, testStyle(6))
	markers := []trail.Marker{{Pos: trail.Point{}, Opacity: 0.5, Drawn: true}}
	img := c.Frame(markers)
	a := int(img.NRGBAAt(32, 32).A)
	if a < 120 || a > 135 {
		t.Errorf("half-opacity marker center alpha = %d, want about 128", a)
	}
}
