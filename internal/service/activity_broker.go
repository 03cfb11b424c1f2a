package service

import (
	"sync"

	"github.com/noah-isme/folio-go-api/internal/dto"
)

const brokerBuffer = 16

// ActivityBroker fans freshly recorded activity out to in-process
// subscribers (the websocket stream). Slow subscribers lose events instead
// of blocking the recorder.
type ActivityBroker struct {
	mu   sync.RWMutex
	subs map[chan dto.ActivityResponse]struct{}
}

// NewActivityBroker constructs an empty broker.
func NewActivityBroker() *ActivityBroker {
	return &ActivityBroker{subs: make(map[chan dto.ActivityResponse]struct{})}
}

// Subscribe registers a listener. The returned cancel func must be called
// exactly once; the channel is closed by it.
func (b *ActivityBroker) Subscribe() (<-chan dto.ActivityResponse, func()) {
	ch := make(chan dto.ActivityResponse, brokerBuffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
		b.mu.Unlock()
	}

	return ch, cancel
}

// Publish delivers the event to every subscriber without blocking.
func (b *ActivityBroker) Publish(event dto.ActivityResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
