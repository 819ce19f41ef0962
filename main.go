package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/adrn-blog/transparent-animation/internal/config"
	"github.com/adrn-blog/transparent-animation/internal/export"
	"github.com/adrn-blog/transparent-animation/internal/render"
	"github.com/adrn-blog/transparent-animation/internal/trail"
)

const checkerCell = 16

type game struct {
	// animation
	path    []trail.Point
	updater *trail.Updater
	canvas  *render.Canvas
	style   render.Style
	markers []trail.Marker
	frame   int
	tick    int

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	paused    bool
	lastSaved string
	lastErr   error
}

func NewGame() *game {
	path := trail.Circle(config.FrameCount)
	updater := trail.NewUpdater(path, config.TrailCount)
	style := render.DefaultStyle()
	g := &game{
		path:    path,
		updater: updater,
		canvas:  render.NewCanvas(config.CanvasSize, config.CanvasMargin, config.Supersample, style),
		style:   style,
		prevKey: map[ebiten.Key]bool{},
	}
	g.markers = updater.Init()
	return g
}

func (g *game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if justPressed(ebiten.KeyR) {
		g.restart()
	}
	if justPressed(ebiten.KeyE) {
		if err := g.exportDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.step()

	return nil
}

// restart rewinds the animation to the first frame; the next step
// recomputes the marker set from there.
func (g *game) restart() {
	g.frame = 0
	g.tick = 0
}

// step advances the frame index once per TicksPerFrame ticks (unless
// paused) and recomputes the marker set for the current frame.
func (g *game) step() {
	if !g.paused {
		g.tick++
		if g.tick%config.TicksPerFrame == 0 {
			g.frame = (g.frame + 1) % config.FrameCount
		}
	}
	g.markers = g.updater.Update(g.frame)
}

func (g *game) Draw(screen *ebiten.Image) {
	g.drawCheckerboard(screen)
	g.drawMarkers(screen)

	status := fmt.Sprintf("frame %d/%d", g.frame+1, config.FrameCount)
	if g.paused {
		status += " - Paused (Space to play)"
	} else {
		status += " - Space: pause"
	}
	status += " | R: restart | E: export | Esc/Q: quit"
	if g.lastSaved != "" {
		status += " | Saved: " + g.lastSaved
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// drawCheckerboard fills the backdrop with the usual alpha checkerboard, so
// the preview shows where exported frames will be transparent.
func (g *game) drawCheckerboard(screen *ebiten.Image) {
	light := color.RGBA{R: 190, G: 190, B: 190, A: 255}
	dark := color.RGBA{R: 140, G: 140, B: 140, A: 255}
	for y := 0; y < config.WindowHeight; y += checkerCell {
		for x := 0; x < config.WindowWidth; x += checkerCell {
			c := light
			if (x/checkerCell+y/checkerCell)%2 == 1 {
				c = dark
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), checkerCell, checkerCell, c, false)
		}
	}
}

func (g *game) drawMarkers(screen *ebiten.Image) {
	r, gc, b := g.style.Color.RGB255()
	for _, m := range g.markers {
		if !m.Drawn {
			continue
		}
		x, y := g.canvas.Pixel(m.Pos)
		col := color.RGBA{
			R: uint8(float64(r) * m.Opacity),
			G: uint8(float64(gc) * m.Opacity),
			B: uint8(float64(b) * m.Opacity),
			A: uint8(m.Opacity*255 + 0.5),
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(g.style.Radius), col, true)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// exportDialog asks for a destination and writes the animation there. The
// extension picks the format: .mov for ProRes 4444 video, .gif for GIF,
// anything else becomes an animated PNG.
func (g *game) exportDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Export Animation"),
		zenity.Filename(config.VideoFile),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "Animation",
			Patterns: []string{"*.mov", "*.png", "*.gif"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	// Export runs over its own updater so the preview's marker state is
	// untouched.
	seq := export.NewSequence(g.canvas, trail.NewUpdater(g.path, config.TrailCount))

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mov":
		err = export.WriteVideo(context.Background(), filename, seq, export.DefaultVideoOptions(config.FrameRate))
	case ".gif":
		var f *os.File
		if f, err = os.Create(filename); err == nil {
			err = export.WriteGIF(f, seq, config.FrameRate)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
	default:
		err = export.WriteAPNG(filename, seq, config.FrameRate)
	}
	if err != nil {
		return err
	}
	g.lastSaved = filepath.Base(filename)
	g.lastErr = nil
	return nil
}

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Orbit Trail - Space: Play/Pause, R: Restart, E: Export, Esc/Q: Quit")

	g := NewGame()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
