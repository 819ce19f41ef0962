// Command trailexport renders the orbit-trail animation headlessly and
// writes it out with a transparent background: a ProRes 4444 QuickTime file
// when ffmpeg is available, otherwise an animated PNG.
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/adrn-blog/transparent-animation/internal/config"
	"github.com/adrn-blog/transparent-animation/internal/export"
	"github.com/adrn-blog/transparent-animation/internal/render"
	"github.com/adrn-blog/transparent-animation/internal/trail"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger()

func run(ctx context.Context) error {
	canvas := render.NewCanvas(config.CanvasSize, config.CanvasMargin, config.Supersample, render.DefaultStyle())
	seq := export.NewSequence(canvas, trail.NewUpdater(trail.Circle(config.FrameCount), config.TrailCount))

	err := export.WriteVideo(ctx, config.VideoFile, seq, export.DefaultVideoOptions(config.FrameRate))
	if err == nil {
		logger.Info().Str("path", config.VideoFile).Msg("export complete")
		return nil
	}
	logger.Warn().Err(err).Msg("video export failed, falling back to APNG")

	// A fresh sequence: the video writer may have consumed part of this one.
	seq = export.NewSequence(canvas, trail.NewUpdater(trail.Circle(config.FrameCount), config.TrailCount))
	if err := export.WriteAPNG(config.APNGFile, seq, config.FrameRate); err != nil {
		return err
	}
	logger.Info().Str("path", config.APNGFile).Msg("export complete")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("export failed")
	}
}
