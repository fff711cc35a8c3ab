// Package presenter owns the per-frame presentation state and the three
// phases that touch it: channel-drain update, pointer dispatch, and drawing.
// One State exists per session; it lives on the render thread and is passed
// by pointer through the phases, never shared with another goroutine.
package presenter

import (
	"github.com/burrowgames/gridface/config"
	"github.com/burrowgames/gridface/messaging"
	"github.com/burrowgames/gridface/shared/messages"
	"github.com/burrowgames/gridface/textures"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// drawSprite is one precomputed draw entry: the resolved image plus the
// screen-space transform derived from the sprite's cell coordinate.
type drawSprite struct {
	img  *ebiten.Image
	geom ebiten.GeoM
}

// Rect is a pixel-space rectangle. Containment is strict on all four edges;
// a point exactly on an edge is outside.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) lies strictly inside r.
func (r Rect) Contains(px, py float64) bool {
	return r.X < px && px < r.X+r.W && r.Y < py && py < r.Y+r.H
}

// Modal is a transient text overlay anchored to a screen position. At most
// one is visible; a click resolution replaces or clears it, never queues one.
type Modal struct {
	X, Y float64
	Text string
}

// State is the single presentation state instance. Only the frame loop
// mutates it.
type State struct {
	registry *messaging.Registry
	textures *textures.Registry
	settings Settings

	// Most recent sprite batch, plus its per-layer draw lists. The UI list
	// is supported but normally empty.
	sprites    []messages.Sprite
	background []drawSprite
	movables   []drawSprite
	ui         []drawSprite

	logText string

	currentMenu []string
	// menuButtons is recomputed from scratch every time the menu is drawn
	// and is the sole authority for click-to-option resolution.
	menuButtons        []Rect
	selectedMenuOption int // -1 until a click resolves against menuButtons

	modal *Modal

	pointerX, pointerY float64
	// cursor is the host pointer query, injectable for tests.
	cursor func() (int, int)

	pulse        *gween.Sequence
	pointerAlpha float32
}

// NewState wires a presentation state over its collaborators.
func NewState(registry *messaging.Registry, tex *textures.Registry, settings Settings) *State {
	pulse := gween.NewSequence(
		gween.New(1, config.Pointer.PulseMinAlpha, config.Pointer.PulseSecs, ease.Linear),
		gween.New(config.Pointer.PulseMinAlpha, 1, config.Pointer.PulseSecs, ease.Linear),
	)
	pulse.SetLoop(-1)

	return &State{
		registry:           registry,
		textures:           tex,
		settings:           settings,
		selectedMenuOption: -1,
		cursor:             ebiten.CursorPosition,
		pulse:              pulse,
		pointerAlpha:       1,
	}
}
