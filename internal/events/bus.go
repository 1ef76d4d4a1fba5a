package events

import (
	"log/slog"
	"sync"

	"github.com/mcoot/battleship-go/internal/model"
)

// Handler receives published events
type Handler func(model.Event)

type subscriber struct {
	id      int
	types   map[model.EventType]bool // nil means every type
	handler Handler
}

// Bus delivers game events to subscribers in the order they subscribed.
// Delivery is synchronous: Publish returns once every handler has run.
type Bus struct {
	mu          sync.RWMutex
	subscribers []*subscriber
	nextID      int
	logger      *slog.Logger
}

// NewBus creates an empty Bus
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		logger: logger.With(slog.String("component", "events")),
	}
}

// Subscribe registers a handler for the given event types, or for every
// event when no types are given. The returned function removes it.
func (b *Bus) Subscribe(handler Handler, types ...model.EventType) (unsubscribe func()) {
	sub := &subscriber{handler: handler}
	if len(types) > 0 {
		sub.types = make(map[model.EventType]bool, len(types))
		for _, t := range types {
			sub.types[t] = true
		}
	}

	b.mu.Lock()
	b.nextID++
	sub.id = b.nextID
	b.subscribers = append(b.subscribers, sub)
	count := len(b.subscribers)
	b.mu.Unlock()

	b.logger.Debug("event subscriber registered", slog.Int("total_subscribers", count))

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(sub.id) })
	}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subscribers {
		if sub.id == id {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			return
		}
	}
}

// Publish hands the event to every interested subscriber.
// A panicking handler is logged and skipped.
func (b *Bus) Publish(event model.Event) {
	b.mu.RLock()
	targets := make([]*subscriber, 0, len(b.subscribers))
	for _, sub := range b.subscribers {
		if sub.types == nil || sub.types[event.Type] {
			targets = append(targets, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range targets {
		b.deliver(sub, event)
	}
}

func (b *Bus) deliver(sub *subscriber, event model.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				slog.String("event_type", string(event.Type)),
				slog.String("game_id", string(event.GameID)),
				slog.Any("panic", r),
			)
		}
	}()
	sub.handler(event)
}

// SubscriberCount returns the number of registered handlers
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Publisher is the publishing side of the bus
type Publisher interface {
	Publish(event model.Event)
}

var _ Publisher = (*Bus)(nil)
