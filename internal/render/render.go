// Package render composites a marker set onto a transparent RGBA canvas.
// Background pixels carry zero alpha, so exported frames contain only the
// drawn markers and can be overlaid onto anything downstream.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/adrn-blog/transparent-animation/internal/config"
	"github.com/adrn-blog/transparent-animation/internal/trail"
)

// Style describes how markers are drawn.
type Style struct {
	Color  colorful.Color
	Radius float64 // pixels at output resolution
}

// DefaultStyle returns the configured marker style.
func DefaultStyle() Style {
	c, err := colorful.Hex(config.MarkerColor)
	if err != nil {
		panic("config.MarkerColor: " + err.Error())
	}
	return Style{Color: c, Radius: config.MarkerRadius}
}

// Canvas maps world coordinates around the unit circle onto a square pixel
// grid and renders marker sets into transparent frames. Markers are stamped
// at a supersampled resolution and downscaled for smooth edges.
type Canvas struct {
	size   int
	super  int
	scale  float64 // world units to output pixels
	style  Style
	mask   *image.Alpha // disc coverage mask at supersampled resolution
	maskR  float64
	tint   [256]*image.Uniform // marker color per opacity step
	bounds image.Rectangle
}

// NewCanvas creates a square canvas of size pixels per side. margin is extra
// world space beyond the unit circle on every side, and super is the
// supersampling factor (1 disables it).
func NewCanvas(size int, margin float64, super int, style Style) *Canvas {
	if super < 1 {
		super = 1
	}
	c := &Canvas{
		size:   size,
		super:  super,
		scale:  float64(size) / (2 * (1 + margin)),
		style:  style,
		bounds: image.Rect(0, 0, size, size),
	}
	c.maskR = style.Radius * float64(super)
	c.mask = discMask(c.maskR)
	return c
}

// Size returns the output frame side length in pixels.
func (c *Canvas) Size() int { return c.size }

// Pixel maps a world position to output pixel coordinates.
func (c *Canvas) Pixel(p trail.Point) (float64, float64) {
	half := float64(c.size) / 2
	return half + p.X*c.scale, half - p.Y*c.scale
}

// Frame renders the marker set into a fresh, fully transparent image with
// straight (non-premultiplied) alpha, ready for encoders that expect raw
// RGBA. Markers are stamped in slice order, so trail slots (oldest first)
// end up underneath the head.
func (c *Canvas) Frame(markers []trail.Marker) *image.NRGBA {
	if c.super == 1 {
		img := image.NewNRGBA(c.bounds)
		for _, m := range markers {
			if !m.Drawn {
				continue
			}
			c.stamp(img, m)
		}
		return img
	}
	s := c.size * c.super
	img := image.NewRGBA(image.Rect(0, 0, s, s))
	for _, m := range markers {
		if !m.Drawn {
			continue
		}
		c.stamp(img, m)
	}
	out := image.NewNRGBA(c.bounds)
	xdraw.CatmullRom.Scale(out, c.bounds, img, img.Bounds(), xdraw.Src, nil)
	return out
}

func (c *Canvas) stamp(img draw.Image, m trail.Marker) {
	x, y := c.Pixel(m.Pos)
	x *= float64(c.super)
	y *= float64(c.super)
	d := c.mask.Bounds().Dx()
	rect := image.Rect(0, 0, d, d).Add(image.Pt(int(x-c.maskR), int(y-c.maskR)))
	draw.DrawMask(img, rect, c.uniform(m.Opacity), image.Point{}, c.mask, image.Point{}, draw.Over)
}

// uniform returns the marker color with the given opacity folded into its
// alpha, cached per 8-bit opacity step.
func (c *Canvas) uniform(opacity float64) *image.Uniform {
	a := int(opacity*255 + 0.5)
	if a < 0 {
		a = 0
	} else if a > 255 {
		a = 255
	}
	if c.tint[a] == nil {
		r, g, b := c.style.Color.RGB255()
		c.tint[a] = image.NewUniform(color.NRGBA{R: r, G: g, B: b, A: uint8(a)})
	}
	return c.tint[a]
}

// discMask builds an alpha coverage mask for a filled disc of radius r,
// with a half-pixel soft edge.
func discMask(r float64) *image.Alpha {
	d := int(math.Ceil(2 * r))
	mask := image.NewAlpha(image.Rect(0, 0, d, d))
	cx := float64(d) / 2
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cx
			cov := r + 0.5 - math.Hypot(dx, dy)
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			mask.SetAlpha(x, y, color.Alpha{A: uint8(cov*255 + 0.5)})
		}
	}
	return mask
}
