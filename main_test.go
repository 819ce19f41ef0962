package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/adrn-blog/transparent-animation/internal/config"
)

func TestStepAdvancesFrames(t *testing.T) {
	g := NewGame()
	for i := 0; i < 3*config.TicksPerFrame; i++ {
		g.step()
	}
	if g.frame != 3 {
		t.Errorf("frame = %d after %d ticks, want 3", g.frame, 3*config.TicksPerFrame)
	}
	head := g.markers[len(g.markers)-1]
	if !head.Drawn {
		t.Fatal("head undrawn after stepping")
	}
	if diff := cmp.Diff(g.path[3], head.Pos); diff != "" {
		t.Errorf("head position (-want +got):\n%s", diff)
	}
}

func TestStepPausedHoldsFrame(t *testing.T) {
	g := NewGame()
	for i := 0; i < 4*config.TicksPerFrame; i++ {
		g.step()
	}
	g.paused = true
	for i := 0; i < 10; i++ {
		g.step()
	}
	if g.frame != 4 {
		t.Errorf("frame = %d while paused, want 4", g.frame)
	}
}

func TestRestartRewindsAnimation(t *testing.T) {
	g := NewGame()
	for i := 0; i < 20*config.TicksPerFrame; i++ {
		g.step()
	}
	g.restart()
	if g.frame != 0 || g.tick != 0 {
		t.Fatalf("restart left frame=%d tick=%d", g.frame, g.tick)
	}
	// The marker set picks the rewound frame back up on the next step.
	g.step()
	head := g.markers[len(g.markers)-1]
	if diff := cmp.Diff(g.path[0], head.Pos); diff != "" {
		t.Errorf("head after restart (-want +got):\n%s", diff)
	}
}
