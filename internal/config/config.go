package config

const (
	WindowWidth  = 1200
	WindowHeight = 800
	WindowTitle  = "Celestial Scene - drag sliders, right-drag to orbit, wheel to zoom, Space: pause, L: load layout, Esc/Q: quit"

	TPS = 60

	// Navigation button viewport, anchored to the bottom-right corner
	NavButtonSize = 100
	ButtonMargin  = 24

	// Slider hit area around the projected track, in pixels
	SliderGrabRadius = 18

	// Zoom step per wheel notch, in scene units
	ZoomStep = 0.5
	// Orbit step per terminal key press, in radians
	OrbitKeyStep = 0.15

	// HSV hue of the scene's cyan glow
	GlowHue = 190.0

	// Ambient drone
	SampleRate     = 44100
	DroneBaseHz    = 55.0
	DroneSpreadHz  = 55.0
	DroneMaxVolume = 0.12

	// Terminal host: pixels assumed per character cell when classifying width
	CellWidthPx  = 8
	CellHeightPx = 16
	TermFrameMs  = 33
)
