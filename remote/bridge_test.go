package remote

import (
	"errors"
	"testing"

	"github.com/burrowgames/gridface/messaging"
	"github.com/burrowgames/gridface/shared/messages"
)

func TestBridge_StateLifecycle(t *testing.T) {
	pipes := messaging.NewPipes([]string{messages.TopicStdout}, nil, 4)
	b := NewBridge(pipes)

	if b.State() != StateDisconnected {
		t.Fatalf("new bridge state = %v, want StateDisconnected", b.State())
	}
	if b.LastError() != nil {
		t.Fatalf("new bridge has error: %v", b.LastError())
	}

	b.setError(errors.New("connection failed"))
	if b.State() != StateError {
		t.Errorf("state after failure = %v, want StateError", b.State())
	}
	if b.LastError() == nil {
		t.Error("expected the failure to be retained")
	}

	b.Disconnect()
	if b.State() != StateDisconnected {
		t.Errorf("state after Disconnect = %v, want StateDisconnected", b.State())
	}
	if b.conn != nil {
		t.Error("Disconnect must clear the connection")
	}
}

func TestDeliver_ForwardsToTopicPipe(t *testing.T) {
	pipes := messaging.NewPipes([]string{messages.TopicStdout}, nil, 4)
	b := NewBridge(pipes)

	b.deliver(Envelope{Topic: messages.TopicStdout, Content: []byte("hi")})

	select {
	case msg := <-pipes.In[messages.TopicStdout]:
		if msg.Topic != messages.TopicStdout || string(msg.Content) != "hi" {
			t.Errorf("unexpected message: %+v", msg)
		}
	default:
		t.Fatal("expected the envelope in the stdout pipe")
	}
}

func TestDeliver_FullBufferKeepsLatest(t *testing.T) {
	pipes := messaging.NewPipes([]string{messages.TopicGameplayState}, nil, 1)
	b := NewBridge(pipes)

	b.deliver(Envelope{Topic: messages.TopicGameplayState, Content: []byte{1}})
	b.deliver(Envelope{Topic: messages.TopicGameplayState, Content: []byte{2}})

	msg := <-pipes.In[messages.TopicGameplayState]
	if len(msg.Content) != 1 || msg.Content[0] != 2 {
		t.Errorf("expected the newer message to win, got %v", msg.Content)
	}
	select {
	case extra := <-pipes.In[messages.TopicGameplayState]:
		t.Errorf("pipe should hold a single message, also got %v", extra.Content)
	default:
	}
}

func TestDeliver_UnknownTopicIsDropped(t *testing.T) {
	pipes := messaging.NewPipes([]string{messages.TopicStdout}, nil, 4)
	b := NewBridge(pipes)

	b.deliver(Envelope{Topic: "not_wired", Content: []byte("x")})

	select {
	case msg := <-pipes.In[messages.TopicStdout]:
		t.Errorf("unexpected delivery: %+v", msg)
	default:
	}
}
