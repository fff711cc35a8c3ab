package presenter

import (
	"log"
	"math"

	"github.com/burrowgames/gridface/config"
	"github.com/burrowgames/gridface/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HandleInput reacts to this frame's buffered input. A primary-button release
// runs click dispatch; other buttons are ignored. The settings hotkeys toggle
// and persist the pointer marker and FPS title.
func (s *State) HandleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.settings.ShowPointer = !s.settings.ShowPointer
		SaveSettings(&s.settings)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		s.settings.ShowFPSTitle = !s.settings.ShowFPSTitle
		SaveSettings(&s.settings)
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		px, py := s.cursor()
		return s.dispatchClick(float64(px), float64(py))
	}
	return nil
}

// dispatchClick resolves one pointer release. Menu buttons win over sprites;
// when a menu button matches, dispatch ends there regardless of outcome.
func (s *State) dispatchClick(x, y float64) error {
	if idx, ok := buttonIndexAt(s.menuButtons, x, y); ok {
		s.selectedMenuOption = idx
		payload, err := messages.EncodeMenuIndex(idx)
		if err != nil {
			return err
		}
		return s.registry.Send(messages.TopicSelectResponse, payload)
	}

	hits := spritesAt(s.sprites, x, y)
	if len(hits) == 0 {
		return nil
	}
	return s.hoverQuery(x, y, hits)
}

// hoverQuery is the one-shot request/response exchange behind a sprite click.
// It reads the latest reported interaction mode; in watch mode it asks the
// logic process to describe the clicked cell and waits for the answer, which
// becomes the modal text. No mode pending means no reaction.
func (s *State) hoverQuery(x, y float64, hits []messages.Sprite) error {
	msg, ok, err := s.registry.TryTake(messages.TopicGameplayState)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	mode, err := messages.DecodeMode(msg.Content)
	if err != nil {
		return err
	}
	if mode != messages.ModeWatch {
		return nil
	}

	cell := float64(config.Grid.CellSize)
	coord := messages.CellCoord{
		X: uint16(math.Floor(x / cell)),
		Y: uint16(math.Floor(y / cell)),
	}
	payload, err := messages.EncodeCell(coord)
	if err != nil {
		return err
	}

	// A previous query may have timed out and been answered late; whatever
	// is still buffered belongs to that request, not this one.
	for {
		_, ok, err := s.registry.TryTake(messages.TopicInfoResponse)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}

	if err := s.registry.Send(messages.TopicInfo, payload); err != nil {
		return err
	}

	// At most one request is ever outstanding; the frame loop stalls here
	// until the logic side answers or the timeout resolves as no-answer.
	resp, ok, err := s.registry.Take(messages.TopicInfoResponse, config.Protocol.InfoTimeout)
	if err != nil {
		return err
	}
	if !ok {
		log.Printf("[presenter] info request for cell (%d,%d) timed out", coord.X, coord.Y)
		return nil
	}

	if len(hits) > 0 {
		s.modal = &Modal{X: x, Y: y, Text: string(resp.Content)}
	} else {
		s.modal = nil
	}
	return nil
}

// buttonIndexAt returns the first menu button strictly containing the point,
// in recorded order. Overlapping buttons resolve to the lowest index.
func buttonIndexAt(buttons []Rect, x, y float64) (int, bool) {
	for i, b := range buttons {
		if b.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// spritesAt returns the sprites whose grid cell strictly contains the point.
func spritesAt(sprites []messages.Sprite, x, y float64) []messages.Sprite {
	cell := config.Grid.CellSize
	var hits []messages.Sprite
	for _, sp := range sprites {
		minX, minY := float64(sp.PosX*cell), float64(sp.PosY*cell)
		if minX < x && x < minX+float64(cell) && minY < y && y < minY+float64(cell) {
			hits = append(hits, sp)
		}
	}
	return hits
}
