package events

import (
	"pvc/internal/providers"
	"sync"
)

const (
	EventCheckPost = "pvcCheckPost"
	// Wildcard listeners receive every event.
	Wildcard = "*"
)

// Event mirrors a bubbling CustomEvent: Detail is the full response body.
type Event struct {
	Name    string
	Bubbles bool
	Detail  map[string]any
}

type Listener func(Event)

type BridgeInterface interface {
	Subscribe(name string, listener Listener) func()
	Notify(name string, detail map[string]any) int
}

type subscription struct {
	id       uint64
	listener Listener
}

// Bridge dispatches synchronously, in registration order.
type Bridge struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[string][]subscription
	logger    providers.Logger
}

func NewBridge(logger providers.Logger) *Bridge {
	return &Bridge{
		listeners: make(map[string][]subscription),
		logger:    logger,
	}
}

// Subscribe registers listener for name and returns a function removing it.
func (b *Bridge) Subscribe(name string, listener Listener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.listeners[name] = append(b.listeners[name], subscription{id: id, listener: listener})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.listeners[name]
		for i, s := range subs {
			if s.id == id {
				b.listeners[name] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Notify delivers one event to the listeners of name and then to wildcard
// listeners, returning how many were called. Listeners may subscribe or
// unsubscribe while being notified; the change applies to the next event.
func (b *Bridge) Notify(name string, detail map[string]any) int {
	b.mu.RLock()
	subs := append([]subscription(nil), b.listeners[name]...)
	if name != Wildcard {
		subs = append(subs, b.listeners[Wildcard]...)
	}
	b.mu.RUnlock()

	event := Event{Name: name, Bubbles: true, Detail: detail}
	for _, s := range subs {
		b.dispatch(s.listener, event)
	}
	b.logger.Debugf(providers.TypeEvent, "Dispatched %s to %d listeners", name, len(subs))
	return len(subs)
}

func (b *Bridge) dispatch(listener Listener, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Errorf(providers.TypeEvent, "Listener for %s panicked: %v", event.Name, r)
		}
	}()
	listener(event)
}
