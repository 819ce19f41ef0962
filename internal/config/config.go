package config

const (
	WindowWidth  = 640
	WindowHeight = 640

	// Animation parameters
	FrameCount    = 128
	TrailCount    = 8
	TicksPerFrame = 2 // preview runs at 60 ticks/s, animation at 30 frames/s
	FrameRate     = 30

	// Canvas parameters
	CanvasSize   = 640
	CanvasMargin = 0.25
	Supersample  = 2
	MarkerRadius = 12.0
	MarkerColor  = "#1f77b4"

	// Export defaults
	VideoFile = "trail.mov"
	APNGFile  = "trail.png"
	GIFFile   = "trail.gif"
)
