// Package export serializes the rendered animation into alpha-preserving
// artifacts: animated PNG, GIF, or a QuickTime video encoded by an external
// ffmpeg process. Every writer drives the frame updater through strictly
// increasing frame indices, once per frame.
package export

import (
	"image"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/adrn-blog/transparent-animation/internal/render"
	"github.com/adrn-blog/transparent-animation/internal/trail"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger()

// Sequence couples a canvas with a frame updater and a frame count. It is
// the render side of an export: writers ask it for frame i and it returns
// the composited image.
type Sequence struct {
	Canvas  *render.Canvas
	Updater *trail.Updater
	Frames  int
}

// NewSequence builds a sequence covering the updater's whole trajectory.
func NewSequence(c *render.Canvas, u *trail.Updater) *Sequence {
	u.Init()
	return &Sequence{Canvas: c, Updater: u, Frames: u.FrameCount()}
}

// Render returns the composited frame for index i.
func (s *Sequence) Render(i int) *image.NRGBA {
	return s.Canvas.Frame(s.Updater.Update(i))
}

// All renders every frame in order.
func (s *Sequence) All() []image.Image {
	frames := make([]image.Image, s.Frames)
	step := s.Frames / 8
	if step == 0 {
		step = 1
	}
	for i := range frames {
		frames[i] = s.Render(i)
		if (i+1)%step == 0 {
			logger.Debug().Int("frame", i+1).Int("total", s.Frames).Msg("rendered")
		}
	}
	return frames
}
