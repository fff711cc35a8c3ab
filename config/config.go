// Package config holds the fixed presentation constants: window and grid
// geometry, overlay layout, colors, and protocol tuning. Everything here is
// decided at build time; there is no runtime configuration file.
package config

import (
	"image/color"
	"time"
)

// WindowConfig describes the host surface.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// GridConfig maps cell coordinates to pixels.
type GridConfig struct {
	// CellSize is the edge length of one grid cell in pixels. Every sprite
	// draw transform and every cell hit-test uses this single value.
	CellSize int
}

// MenuConfig describes the menu overlay layout. Button rectangles derived
// from these values are the sole authority for click-to-option resolution.
type MenuConfig struct {
	OriginX float64
	OriginY float64

	BackdropTexture uint8
	BackdropScale   float64

	// Per-option row geometry, relative to the menu origin.
	RowInsetX float64
	RowInsetY float64
	RowStride float64
	ButtonW   float64
	ButtonH   float64

	TextColor color.Color
}

// ModalConfig describes the modal overlay layout.
type ModalConfig struct {
	BackdropTexture uint8
	BackdropScale   float64
	TextInsetX      float64
	TextInsetY      float64
	TextColor       color.Color
}

// LogConfig places the accumulated output text.
type LogConfig struct {
	X         float64
	Y         float64
	TextColor color.Color
}

// PointerConfig describes the pointer indicator marker.
type PointerConfig struct {
	Size          float32
	Color         color.RGBA
	PulseSecs     float32
	PulseMinAlpha float32
}

// ProtocolConfig tunes the channel layer.
type ProtocolConfig struct {
	// ChannelCapacity is the buffer size of every topic channel.
	ChannelCapacity int
	// InfoTimeout bounds the wait for an info_response after an info
	// request. A timeout resolves as the no-answer case: the modal is
	// left unchanged.
	InfoTimeout time.Duration
}

var (
	Window   WindowConfig
	Grid     GridConfig
	Menu     MenuConfig
	Modal    ModalConfig
	Log      LogConfig
	Pointer  PointerConfig
	Protocol ProtocolConfig
)

func init() {
	Window = WindowConfig{
		Width:  800,
		Height: 600,
		Title:  "gridface",
	}

	Grid = GridConfig{
		CellSize: 32,
	}

	Menu = MenuConfig{
		OriginX:         0,
		OriginY:         200,
		BackdropTexture: 0,
		BackdropScale:   5,
		RowInsetX:       10,
		RowInsetY:       10,
		RowStride:       20,
		ButtonW:         96,
		ButtonH:         15,
		TextColor:       color.White,
	}

	Modal = ModalConfig{
		BackdropTexture: 0,
		BackdropScale:   5,
		TextInsetX:      10,
		TextInsetY:      10,
		TextColor:       color.White,
	}

	Log = LogConfig{
		X:         200,
		Y:         0,
		TextColor: color.White,
	}

	Pointer = PointerConfig{
		Size:          20,
		Color:         color.RGBA{255, 0, 0, 255},
		PulseSecs:     0.75,
		PulseMinAlpha: 0.55,
	}

	Protocol = ProtocolConfig{
		ChannelCapacity: 64,
		InfoTimeout:     2 * time.Second,
	}
}
