package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"selectlist/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType][]subscription

	eventChan chan DomainEvent
	closeOnce sync.Once
	quit      chan struct{}
	done      chan struct{}
}

// New creates a new event bus and starts its dispatcher
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	go b.dispatch()
	return b
}

// Publish publishes an event to all subscribers. Events are dropped rather
// than blocking the publisher when the queue is full.
func (b *bus) Publish(event DomainEvent) {
	select {
	case b.eventChan <- event:
	default:
		log.Printf("eventbus: queue full, dropping %s", event.Type())
	}
}

// Subscribe registers a handler for events of the given type and returns an
// unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Close stops the dispatcher. Events still queued are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		<-b.done
	})
}

// dispatch delivers queued events to subscribers in order. Handlers run on
// the dispatcher goroutine, so subscribers see events in publish order.
func (b *bus) dispatch() {
	defer close(b.done)

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			handlers := make([]EventHandler, len(subs))
			for i, s := range subs {
				handlers[i] = s.handler
			}
			b.mu.RUnlock()

			for _, h := range handlers {
				b.invoke(h, event)
			}

		case <-b.quit:
			return
		}
	}
}

// invoke calls a handler, containing any panic to the one event.
func (b *bus) invoke(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("eventbus: handler panic for %s: %v\n%s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}
