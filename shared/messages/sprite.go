package messages

// Layer assigns a sprite to one of the three draw lists, back to front.
type Layer uint8

const (
	LayerBackground Layer = iota
	LayerMovables
	LayerUI
)

// Sprite is one cell-aligned visual produced by the logic process. Identity is
// positional; sprites compare by value and carry no stable id.
type Sprite struct {
	PosX      int   `codec:"px"`
	PosY      int   `codec:"py"`
	Layer     Layer `codec:"l"`
	TextureID uint8 `codec:"t"`
}

// InteractionMode is the externally-owned state that decides how a sprite
// click is interpreted. The presentation layer only ever reads it.
type InteractionMode uint8

const (
	ModeAttack InteractionMode = iota
	ModeWatch
)

// CellCoord is a grid position sent with an info request.
type CellCoord struct {
	X uint16 `codec:"x"`
	Y uint16 `codec:"y"`
}
