package presenter

import (
	"fmt"
	"image/color"

	"github.com/burrowgames/gridface/config"
	"github.com/burrowgames/gridface/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var drawOp = &ebiten.DrawImageOptions{}

// textBaseline offsets a top-left text anchor to the baseline text.Draw wants.
const textBaseline = 12

// Draw composes the frame, back to front: sprite layers, menu overlay, log
// text, modal overlay, pointer indicator. Any failure here is fatal to the
// session; the caller propagates it out of the run loop.
func (s *State) Draw(screen *ebiten.Image) error {
	if s.settings.ShowFPSTitle {
		ebiten.SetWindowTitle(fmt.Sprintf("fps: %.0f", ebiten.ActualFPS()))
	} else {
		ebiten.SetWindowTitle(config.Window.Title)
	}

	screen.Fill(color.Black)

	for _, list := range [][]drawSprite{s.background, s.movables, s.ui} {
		for i := range list {
			drawOp.GeoM = list[i].geom
			screen.DrawImage(list[i].img, drawOp)
		}
	}

	if len(s.currentMenu) > 0 {
		if err := s.drawMenu(screen, config.Menu.OriginX, config.Menu.OriginY); err != nil {
			return err
		}
	}

	text.Draw(screen, s.logText, fonts.UISmall.Get(),
		int(config.Log.X), int(config.Log.Y)+textBaseline, config.Log.TextColor)

	if s.modal != nil {
		if err := s.drawModal(screen, s.modal.X, s.modal.Y, s.modal.Text); err != nil {
			return err
		}
	}

	if s.settings.ShowPointer {
		c := config.Pointer.Color
		c.A = uint8(float32(c.A) * s.pointerAlpha)
		vector.DrawFilledRect(screen,
			float32(s.pointerX), float32(s.pointerY),
			config.Pointer.Size, config.Pointer.Size,
			c, false)
	}

	return nil
}

// drawMenu renders the menu backdrop and one text line per option. Drawing is
// what defines the clickable rectangles: the previous frame's buttons are
// discarded and one rect per option is recorded in option order.
func (s *State) drawMenu(screen *ebiten.Image, x, y float64) error {
	backdrop, err := s.textures.Get(config.Menu.BackdropTexture)
	if err != nil {
		return err
	}
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(config.Menu.BackdropScale, config.Menu.BackdropScale)
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(backdrop, drawOp)

	s.rebuildMenuButtons(x, y)

	face := fonts.UIRegular.Get()
	for i, option := range s.currentMenu {
		r := s.menuButtons[i]
		text.Draw(screen, option, face, int(r.X), int(r.Y)+textBaseline, config.Menu.TextColor)
	}
	return nil
}

// rebuildMenuButtons discards any rectangles from a previous frame and
// records one per current option, in option order.
func (s *State) rebuildMenuButtons(x, y float64) {
	s.menuButtons = s.menuButtons[:0]
	for i := range s.currentMenu {
		s.menuButtons = append(s.menuButtons, menuButtonRect(x, y, i))
	}
}

// drawModal renders the modal backdrop and its text at the anchor position.
func (s *State) drawModal(screen *ebiten.Image, x, y float64, content string) error {
	backdrop, err := s.textures.Get(config.Modal.BackdropTexture)
	if err != nil {
		return err
	}
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(config.Modal.BackdropScale, config.Modal.BackdropScale)
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(backdrop, drawOp)

	text.Draw(screen, content, fonts.UIRegular.Get(),
		int(x+config.Modal.TextInsetX), int(y+config.Modal.TextInsetY)+textBaseline, config.Modal.TextColor)
	return nil
}

// menuButtonRect is the clickable rectangle of option row i for a menu drawn
// at (x, y).
func menuButtonRect(x, y float64, i int) Rect {
	return Rect{
		X: x + config.Menu.RowInsetX,
		Y: y + float64(i)*config.Menu.RowStride + config.Menu.RowInsetY,
		W: config.Menu.ButtonW,
		H: config.Menu.ButtonH,
	}
}
