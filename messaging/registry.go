// Package messaging owns the topic channel registry, the sole communication
// surface between the presentation layer and the logic process. Each topic is
// a single-producer/single-consumer byte pipe; there is no delivery ordering
// guarantee across different topics.
package messaging

import (
	"time"

	"github.com/burrowgames/gridface/shared/faults"
	"github.com/burrowgames/gridface/shared/messages"
)

// Pipes holds both ends of every topic channel. The presentation side consumes
// In and produces Out through a Registry; the logic side (or the remote
// bridge) does the opposite directly on the maps.
type Pipes struct {
	In  map[string]chan messages.Message
	Out map[string]chan messages.Message
}

// NewPipes builds buffered channels for the given topic sets.
func NewPipes(inTopics, outTopics []string, capacity int) *Pipes {
	p := &Pipes{
		In:  make(map[string]chan messages.Message, len(inTopics)),
		Out: make(map[string]chan messages.Message, len(outTopics)),
	}
	for _, topic := range inTopics {
		p.In[topic] = make(chan messages.Message, capacity)
	}
	for _, topic := range outTopics {
		p.Out[topic] = make(chan messages.Message, capacity)
	}
	return p
}

// Registry returns the presentation-side view of the pipes.
func (p *Pipes) Registry() *Registry {
	return &Registry{inbound: p.In, outbound: p.Out}
}

// Registry maps topic names to their channel endpoints. It is built once at
// construction; looking up a topic it was not built with is a contract
// violation, not a runtime condition.
type Registry struct {
	inbound  map[string]chan messages.Message
	outbound map[string]chan messages.Message
}

// TryTake returns the next buffered message for topic without blocking.
// ok is false when nothing is pending, which is the expected steady state.
func (r *Registry) TryTake(topic string) (msg messages.Message, ok bool, err error) {
	ch, known := r.inbound[topic]
	if !known {
		return messages.Message{}, false, faults.Contractf("registry.TryTake", "topic %q not configured", topic)
	}
	select {
	case m := <-ch:
		return m, true, nil
	default:
		return messages.Message{}, false, nil
	}
}

// Take blocks until a message arrives on topic or the timeout elapses.
// ok is false on timeout; the caller decides what a no-answer means.
func (r *Registry) Take(topic string, timeout time.Duration) (msg messages.Message, ok bool, err error) {
	ch, known := r.inbound[topic]
	if !known {
		return messages.Message{}, false, faults.Contractf("registry.Take", "topic %q not configured", topic)
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case m := <-ch:
		return m, true, nil
	case <-timer.C:
		return messages.Message{}, false, nil
	}
}

// Send enqueues a message for the external consumer of topic. It blocks when
// the channel buffer is full; a slow consumer slows the frame loop rather
// than dropping protocol messages.
func (r *Registry) Send(topic string, content []byte) error {
	ch, known := r.outbound[topic]
	if !known {
		return faults.Contractf("registry.Send", "topic %q not configured", topic)
	}
	ch <- messages.Message{Topic: topic, Content: content}
	return nil
}
