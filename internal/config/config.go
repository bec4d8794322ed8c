package config

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Camera
	CameraFovY      = 75.0 // degrees
	CameraNear      = 1.0
	CameraFar       = 5000.0
	CameraStartZ    = 500.0
	CameraPanScale  = 100.0
	ZoomStep        = 10.0
	SunSpinPerFrame = 0.01

	// Starfield
	StarCount      = 1000
	StarHalfExtent = 1000.0
	StarPointSize  = 1.5

	// Zoom buttons, anchored to the bottom right corner
	ButtonWidth   = 32
	ButtonHeight  = 32
	ButtonMargin  = 10
	ButtonSpacing = 8

	// Info panel
	PanelX       = 12
	PanelY       = 12
	PanelWidth   = 260
	PanelPadding = 8
	LineHeight   = 16

	// Pick chime
	ChimeSampleRate = 44100
	ChimeFrequency  = 660.0
	ChimeDuration   = 0.18 // seconds
	ChimeVolume     = 0.25
)
