// Package trail generates a closed circular trajectory and maintains the
// marker set for one animation frame at a time: a head marker at the current
// trajectory sample plus a fixed number of fading trail markers lagging
// behind it.
package trail

import "math"

// Point is a 2D position in world coordinates.
type Point struct {
	X, Y float64
}

// Circle returns n samples of the unit circle, one full revolution,
// starting at the top (0, 1) and running clockwise.
func Circle(n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: math.Sin(t), Y: math.Cos(t)}
	}
	return pts
}

// Marker is the visual state of one drawable dot. A marker with Drawn false
// is omitted from the frame entirely.
type Marker struct {
	Pos     Point
	Opacity float64
	Drawn   bool
}

// Updater owns the marker set and recomputes it for each frame index.
// The trajectory is immutable after construction; the markers are mutated
// in place by Update, which has exactly one caller per frame.
type Updater struct {
	path    []Point
	markers []Marker // trail slots oldest to newest, head last
}

// NewUpdater builds an updater over path with trailCount trail slots.
// Each trail slot gets a fixed fade opacity assigned once here, linearly
// spaced between transparent (oldest) and opaque (newest); the head is
// fully opaque.
func NewUpdater(path []Point, trailCount int) *Updater {
	u := &Updater{
		path:    path,
		markers: make([]Marker, trailCount+1),
	}
	for j := 0; j < trailCount; j++ {
		u.markers[j].Opacity = float64(j+1) / float64(trailCount+1)
	}
	u.markers[trailCount].Opacity = 1
	return u
}

// FrameCount returns the length of the trajectory.
func (u *Updater) FrameCount() int { return len(u.path) }

// TrailCount returns the number of trail slots.
func (u *Updater) TrailCount() int { return len(u.markers) - 1 }

// Init clears every marker to the undrawn state and returns the marker set,
// so the animation driver can blit an empty first frame.
func (u *Updater) Init() []Marker {
	for j := range u.markers {
		u.markers[j].Pos = Point{}
		u.markers[j].Drawn = false
	}
	return u.markers
}

// Update recomputes the marker set for frame index i and returns it, trail
// slots oldest to newest with the head last. The head takes path[i]; trail
// slot j takes path[i-k+1+j] for k trail slots, so the newest slot coincides
// with the head. Slots whose source index is negative are left undrawn for
// this frame; they fade in over the first k frames rather than clamping to
// the start of the path.
func (u *Updater) Update(i int) []Marker {
	k := len(u.markers) - 1
	u.markers[k].Pos = u.path[i]
	u.markers[k].Drawn = true
	for j := 0; j < k; j++ {
		src := i - k + 1 + j
		if src < 0 {
			u.markers[j].Pos = Point{}
			u.markers[j].Drawn = false
			continue
		}
		u.markers[j].Pos = u.path[src]
		u.markers[j].Drawn = true
	}
	return u.markers
}
