// Package remote carries topic messages over a websocket when the logic
// process runs outside this one. The bridge moves opaque envelopes between
// the connection and the topic pipes; it never interprets payloads.
package remote

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/burrowgames/gridface/messaging"
	"github.com/burrowgames/gridface/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

// Envelope is the wire form of one topic message.
type Envelope struct {
	Topic   string
	Content []byte
}

type BridgeState int

const (
	StateDisconnected BridgeState = iota
	StateConnecting
	StateConnected
	StateError
)

// Bridge connects the local topic pipes to a remote logic process.
// Router callbacks run on necs goroutines; shared fields sit behind mu.
type Bridge struct {
	mu sync.RWMutex

	state     BridgeState
	lastError error
	conn      *websocket.Conn

	pipes     *messaging.Pipes
	pumpsOnce sync.Once
}

func NewBridge(pipes *messaging.Pipes) *Bridge {
	return &Bridge{pipes: pipes, state: StateDisconnected}
}

// Connect dials the logic process in a background goroutine. Inbound
// envelopes are forwarded into the topic pipes; outbound pipes are pumped to
// the connection.
func (b *Bridge) Connect(address string) {
	b.mu.Lock()
	b.state = StateConnecting
	b.lastError = nil
	b.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[remote] connected to logic process")
		b.mu.Lock()
		b.state = StateConnected
		b.mu.Unlock()
		b.startPumps()
	})

	router.On(func(_ *router.NetworkClient, env Envelope) {
		b.deliver(env)
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[remote] disconnected: %v", err)
		b.mu.Lock()
		if b.state != StateError {
			b.state = StateDisconnected
		}
		b.conn = nil
		b.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[remote] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			b.mu.Lock()
			b.conn = conn
			b.mu.Unlock()
		})
		if err != nil {
			b.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

// deliver forwards one inbound envelope into its topic pipe. A full buffer
// drops the oldest pending message in favor of the new one; for the topics
// this layer consumes, the latest value is always the one that matters.
func (b *Bridge) deliver(env Envelope) {
	ch, ok := b.pipes.In[env.Topic]
	if !ok {
		log.Printf("[remote] dropping envelope for unconfigured topic %q", env.Topic)
		return
	}

	msg := messages.Message{Topic: env.Topic, Content: env.Content}
	for {
		select {
		case ch <- msg:
			return
		default:
		}
		select { // make room, discard stale
		case <-ch:
		default:
		}
	}
}

// startPumps drains every outbound topic pipe to the connection, one
// goroutine per topic. Each pipe has a single consumer for the lifetime of
// the process, so the pumps start exactly once.
func (b *Bridge) startPumps() {
	b.pumpsOnce.Do(func() {
		for topic, ch := range b.pipes.Out {
			go func(topic string, ch chan messages.Message) {
				for msg := range ch {
					if err := b.send(Envelope{Topic: msg.Topic, Content: msg.Content}); err != nil {
						log.Printf("[remote] send on %q failed: %v", topic, err)
					}
				}
			}(topic, ch)
		}
	})
}

func (b *Bridge) send(env Envelope) error {
	b.mu.RLock()
	conn := b.conn
	b.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(env)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

// Disconnect closes the connection and resets the router.
func (b *Bridge) Disconnect() {
	b.mu.Lock()
	conn := b.conn
	b.state = StateDisconnected
	b.conn = nil
	b.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (b *Bridge) State() BridgeState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

func (b *Bridge) LastError() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastError
}

func (b *Bridge) setError(err error) {
	b.mu.Lock()
	b.state = StateError
	b.lastError = err
	b.mu.Unlock()
}
