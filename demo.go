package main

import (
	"fmt"
	"log"

	"github.com/burrowgames/gridface/messaging"
	"github.com/burrowgames/gridface/shared/messages"
)

// runDemoDriver stands in for the logic process when no remote address is
// given: it seeds a small dungeon, a menu, and answers info requests, so the
// window is exercisable standalone.
func runDemoDriver(p *messaging.Pipes) {
	send := func(topic string, content []byte) {
		p.In[topic] <- messages.Message{Topic: topic, Content: content}
	}

	const (
		goblinX, goblinY   = 5, 4
		warriorX, warriorY = 2, 2
	)

	batch := make([]messages.Sprite, 0, 66)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			batch = append(batch, messages.Sprite{PosX: x, PosY: y, Layer: messages.LayerBackground, TextureID: 10})
		}
	}
	batch = append(batch,
		messages.Sprite{PosX: warriorX, PosY: warriorY, Layer: messages.LayerMovables, TextureID: 200},
		messages.Sprite{PosX: goblinX, PosY: goblinY, Layer: messages.LayerMovables, TextureID: 201},
	)

	payload, err := messages.EncodeSprites(batch)
	if err != nil {
		log.Printf("[demo] sprite batch: %v", err)
		return
	}
	send(messages.TopicSprite, payload)

	send(messages.TopicSelect, []byte("Attack:Watch:Flee"))
	send(messages.TopicStdout, []byte("entered the demo dungeon"))
	send(messages.TopicStdout, []byte("click a tile to inspect it"))

	mode, err := messages.EncodeMode(messages.ModeWatch)
	if err != nil {
		log.Printf("[demo] mode: %v", err)
		return
	}
	send(messages.TopicGameplayState, mode)

	describe := func(c messages.CellCoord) string {
		switch {
		case c.X == goblinX && c.Y == goblinY:
			return "Goblin"
		case c.X == warriorX && c.Y == warriorY:
			return "Warrior"
		default:
			return "Mossy ground"
		}
	}

	go func() {
		for msg := range p.Out[messages.TopicInfo] {
			cell, err := messages.DecodeCell(msg.Content)
			if err != nil {
				log.Printf("[demo] info request: %v", err)
				continue
			}
			send(messages.TopicInfoResponse, []byte(describe(cell)))
			// Each click consumes the reported mode; report it again.
			send(messages.TopicGameplayState, mode)
		}
	}()

	go func() {
		for msg := range p.Out[messages.TopicSelectResponse] {
			idx, err := messages.DecodeMenuIndex(msg.Content)
			if err != nil {
				log.Printf("[demo] select response: %v", err)
				continue
			}
			send(messages.TopicStdout, []byte(fmt.Sprintf("menu option %d chosen", idx)))
		}
	}()
}
