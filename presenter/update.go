package presenter

import (
	"strings"

	"github.com/burrowgames/gridface/config"
	"github.com/burrowgames/gridface/shared/faults"
	"github.com/burrowgames/gridface/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
)

const tickDelta = 1.0 / 60.0

// Update is the frame update pipeline. It drains at most one buffered message
// per recognized topic, applies the topic-specific mutation, then refreshes
// the pointer position. It never blocks: a topic with nothing pending keeps
// its prior state.
func (s *State) Update() error {
	if _, ok, err := s.registry.TryTake(messages.TopicClear); err != nil {
		return err
	} else if ok {
		s.logText = ""
	}

	if msg, ok, err := s.registry.TryTake(messages.TopicStdout); err != nil {
		return err
	} else if ok {
		s.logText = s.logText + "\n" + string(msg.Content)
	}

	if msg, ok, err := s.registry.TryTake(messages.TopicSelect); err != nil {
		return err
	} else if ok {
		if len(msg.Content) == 0 {
			s.currentMenu = nil
		} else {
			s.currentMenu = strings.Split(string(msg.Content), messages.MenuDelimiter)
		}
	}

	if msg, ok, err := s.registry.TryTake(messages.TopicSprite); err != nil {
		return err
	} else if ok {
		if err := s.applySpriteBatch(msg.Content); err != nil {
			return err
		}
	}

	px, py := s.cursor()
	s.pointerX, s.pointerY = float64(px), float64(py)

	alpha, _, _ := s.pulse.Update(tickDelta)
	s.pointerAlpha = alpha

	return nil
}

// applySpriteBatch replaces the full sprite batch and partitions it by layer,
// precomputing each sprite's screen transform from its cell coordinate.
func (s *State) applySpriteBatch(payload []byte) error {
	batch, err := messages.DecodeSprites(payload)
	if err != nil {
		return err
	}

	cell := config.Grid.CellSize
	s.background = s.background[:0]
	s.movables = s.movables[:0]
	s.ui = s.ui[:0]

	for _, sp := range batch {
		img, err := s.textures.Get(sp.TextureID)
		if err != nil {
			return err
		}

		var geom ebiten.GeoM
		geom.Translate(float64(sp.PosX*cell), float64(sp.PosY*cell))
		entry := drawSprite{img: img, geom: geom}

		switch sp.Layer {
		case messages.LayerBackground:
			s.background = append(s.background, entry)
		case messages.LayerMovables:
			s.movables = append(s.movables, entry)
		case messages.LayerUI:
			s.ui = append(s.ui, entry)
		default:
			return faults.Decodef("presenter.applySpriteBatch", "sprite layer %d out of range", sp.Layer)
		}
	}

	s.sprites = batch
	return nil
}
