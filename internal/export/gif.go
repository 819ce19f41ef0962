package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
)

// maxPaletteEntries is GIF's color table limit, transparent entry included.
const maxPaletteEntries = 256

// WriteGIF renders the sequence and encodes it as a looping animated GIF.
// GIF transparency is 1-bit, so anti-aliased edges and partial trail fades
// are quantized; this is the fallback format for viewers without APNG or
// alpha-video support.
func WriteGIF(w io.Writer, s *Sequence, frameRate int) error {
	delay := 100 / frameRate
	if delay < 1 {
		delay = 1
	}
	frames := s.All()
	pal := buildPalette(frames)

	out := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		out.Image = append(out.Image, toPaletted(frame, pal))
		out.Delay = append(out.Delay, delay)
		out.Disposal = append(out.Disposal, gif.DisposalBackground)
	}
	if err := gif.EncodeAll(w, out); err != nil {
		return fmt.Errorf("gif encode: %w", err)
	}
	logger.Info().Int("frames", len(frames)).Int("colors", len(pal)).Msg("wrote GIF")
	return nil
}

// buildPalette collects the colors used across all frames, transparent
// first. Frames drawn from a handful of marker tints stay well under the
// 256-entry limit; anything beyond it falls back to nearest-match.
func buildPalette(frames []image.Image) color.Palette {
	pal := color.Palette{color.RGBA{}}
	seen := map[color.RGBA]bool{{}: true}
	for _, frame := range frames {
		b := frame.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.RGBAModel.Convert(frame.At(x, y)).(color.RGBA)
				if c.A == 0 {
					c = color.RGBA{}
				}
				if seen[c] {
					continue
				}
				if len(pal) >= maxPaletteEntries {
					return pal
				}
				seen[c] = true
				pal = append(pal, c)
			}
		}
	}
	return pal
}

func toPaletted(frame image.Image, pal color.Palette) *image.Paletted {
	b := frame.Bounds()
	out := image.NewPaletted(b, pal)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(frame.At(x, y)).(color.RGBA)
			if c.A == 0 {
				out.SetColorIndex(x, y, 0)
				continue
			}
			out.Set(x, y, c)
		}
	}
	return out
}
