package presenter

import (
	"testing"

	"github.com/burrowgames/gridface/messaging"
	"github.com/burrowgames/gridface/shared/faults"
	"github.com/burrowgames/gridface/shared/messages"
	"github.com/burrowgames/gridface/textures"
)

func newTestState(t *testing.T) (*State, *messaging.Pipes) {
	t.Helper()

	pipes := messaging.NewPipes(messages.InboundTopics(), messages.OutboundTopics(), 8)
	tex := textures.New()
	// Draw-list entries hold the registered image pointer; nil is fine for
	// transform and partition assertions.
	for _, id := range []uint8{0, 10, 11, 12, 200, 201} {
		tex.Insert(id, nil)
	}

	s := NewState(pipes.Registry(), tex, DefaultSettings())
	s.cursor = func() (int, int) { return 0, 0 }
	return s, pipes
}

func push(t *testing.T, pipes *messaging.Pipes, topic string, content []byte) {
	t.Helper()
	select {
	case pipes.In[topic] <- messages.Message{Topic: topic, Content: content}:
	default:
		t.Fatalf("inbound channel for %q full", topic)
	}
}

func TestUpdate_StdoutAppendsWithLeadingNewline(t *testing.T) {
	s, pipes := newTestState(t)

	push(t, pipes, messages.TopicStdout, []byte("a"))
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.logText != "\na" {
		t.Fatalf("after first append, log = %q, want %q", s.logText, "\na")
	}

	push(t, pipes, messages.TopicStdout, []byte("b"))
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.logText != "\na\nb" {
		t.Errorf("after second append, log = %q, want %q", s.logText, "\na\nb")
	}
}

func TestUpdate_DrainsAtMostOneMessagePerTopic(t *testing.T) {
	s, pipes := newTestState(t)

	push(t, pipes, messages.TopicStdout, []byte("a"))
	push(t, pipes, messages.TopicStdout, []byte("b"))
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.logText != "\na" {
		t.Errorf("one frame must consume one message, log = %q", s.logText)
	}
}

func TestUpdate_ClearResetsLog(t *testing.T) {
	s, pipes := newTestState(t)
	s.logText = "\nlots\nof\nhistory"

	push(t, pipes, messages.TopicClear, nil)
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.logText != "" {
		t.Errorf("clear must empty the log, got %q", s.logText)
	}
}

func TestUpdate_SelectReplacesMenu(t *testing.T) {
	s, pipes := newTestState(t)

	push(t, pipes, messages.TopicSelect, []byte("Attack:Flee"))
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(s.currentMenu) != 2 || s.currentMenu[0] != "Attack" || s.currentMenu[1] != "Flee" {
		t.Fatalf("unexpected menu: %v", s.currentMenu)
	}

	push(t, pipes, messages.TopicSelect, nil)
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(s.currentMenu) != 0 {
		t.Errorf("empty select payload must clear the menu, got %v", s.currentMenu)
	}
}

func TestUpdate_SpriteBatchPartitionAndTransform(t *testing.T) {
	s, pipes := newTestState(t)

	payload, err := messages.EncodeSprites([]messages.Sprite{
		{PosX: 0, PosY: 0, Layer: messages.LayerBackground, TextureID: 10},
		{PosX: 1, PosY: 1, Layer: messages.LayerMovables, TextureID: 200},
	})
	if err != nil {
		t.Fatalf("EncodeSprites: %v", err)
	}
	push(t, pipes, messages.TopicSprite, payload)

	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(s.background) != 1 || len(s.movables) != 1 || len(s.ui) != 0 {
		t.Fatalf("partition = %d/%d/%d, want 1/1/0",
			len(s.background), len(s.movables), len(s.ui))
	}

	if x, y := s.background[0].geom.Apply(0, 0); x != 0 || y != 0 {
		t.Errorf("background transform = (%v,%v), want (0,0)", x, y)
	}
	if x, y := s.movables[0].geom.Apply(0, 0); x != 32 || y != 32 {
		t.Errorf("movables transform = (%v,%v), want (32,32)", x, y)
	}
	if len(s.sprites) != 2 {
		t.Errorf("batch must be retained for hit-testing, got %d sprites", len(s.sprites))
	}
}

func TestUpdate_ReplacesPriorBatchEntirely(t *testing.T) {
	s, pipes := newTestState(t)

	first, _ := messages.EncodeSprites([]messages.Sprite{
		{PosX: 0, PosY: 0, Layer: messages.LayerBackground, TextureID: 10},
		{PosX: 3, PosY: 3, Layer: messages.LayerMovables, TextureID: 201},
	})
	push(t, pipes, messages.TopicSprite, first)
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	second, _ := messages.EncodeSprites([]messages.Sprite{
		{PosX: 5, PosY: 5, Layer: messages.LayerMovables, TextureID: 200},
	})
	push(t, pipes, messages.TopicSprite, second)
	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(s.background) != 0 || len(s.movables) != 1 {
		t.Errorf("old batch must not survive, partition = %d/%d",
			len(s.background), len(s.movables))
	}
}

func TestUpdate_NoPendingMessagesRetainsState(t *testing.T) {
	s, _ := newTestState(t)
	s.logText = "\nkept"
	s.currentMenu = []string{"Attack"}

	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.logText != "\nkept" || len(s.currentMenu) != 1 {
		t.Errorf("absence of data must retain prior state: log=%q menu=%v", s.logText, s.currentMenu)
	}
}

func TestUpdate_LeavesDispatchTopicsBuffered(t *testing.T) {
	s, pipes := newTestState(t)

	mode, _ := messages.EncodeMode(messages.ModeWatch)
	push(t, pipes, messages.TopicGameplayState, mode)

	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// gameplay_state belongs to the hover protocol, not the update drain.
	if _, ok, _ := s.registry.TryTake(messages.TopicGameplayState); !ok {
		t.Error("update pipeline must not consume gameplay_state")
	}
}

func TestUpdate_RefreshesPointerPosition(t *testing.T) {
	s, _ := newTestState(t)
	s.cursor = func() (int, int) { return 123, 45 }

	if err := s.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if s.pointerX != 123 || s.pointerY != 45 {
		t.Errorf("pointer = (%v,%v), want (123,45)", s.pointerX, s.pointerY)
	}
}

func TestUpdate_MalformedSpritePayloadIsDecodeFault(t *testing.T) {
	s, pipes := newTestState(t)

	push(t, pipes, messages.TopicSprite, []byte{0xc1})
	err := s.Update()
	if err == nil {
		t.Fatal("expected an error for a malformed sprite payload")
	}
	if kind, ok := faults.KindOf(err); !ok || kind != faults.Decode {
		t.Errorf("expected decode fault, got %v", err)
	}
}

func TestUpdate_UnknownTextureIDIsContractViolation(t *testing.T) {
	s, pipes := newTestState(t)

	payload, _ := messages.EncodeSprites([]messages.Sprite{
		{PosX: 0, PosY: 0, Layer: messages.LayerBackground, TextureID: 77},
	})
	push(t, pipes, messages.TopicSprite, payload)

	err := s.Update()
	if err == nil {
		t.Fatal("expected an error for an unregistered texture id")
	}
	if kind, ok := faults.KindOf(err); !ok || kind != faults.Contract {
		t.Errorf("expected contract violation, got %v", err)
	}
}
