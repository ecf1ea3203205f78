package main

import "image/color"

const (
	// --- Window ---
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 800
	DefaultWindowTitle  = "Image Board"

	// --- Grid & Background ---
	GridSizeSmall = 50.0
	GridSizeLarge = 250.0

	// --- Images ---
	ShadowOffset    = 4.0
	BorderThickness = 2.0

	// --- Persistence ---
	DefaultAutosaveSeconds = 5
	// DefaultMaxBlobBytes mirrors a browser local storage quota.
	DefaultMaxBlobBytes = 64 << 20
)

var (
	// --- Colors ---
	ColorBackground  = color.RGBA{30, 30, 35, 255}
	ColorGridMinor   = color.RGBA{45, 45, 52, 255}
	ColorGridMajor   = color.RGBA{60, 60, 70, 255}
	ColorOriginCross = color.RGBA{255, 100, 100, 150}
	ColorShadow      = color.RGBA{0, 0, 0, 100}
	ColorImageHover  = color.RGBA{0, 120, 255, 255}
	ColorImageActive = color.RGBA{50, 205, 50, 255}
	ColorPlaceholder = color.RGBA{80, 40, 40, 255}
	ColorHelpText    = color.RGBA{160, 160, 170, 255}
)
