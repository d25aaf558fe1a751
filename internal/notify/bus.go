// Package notify provides the explicit state-change notification layer:
// stores publish events, the command layer (and tests) subscribe. This
// replaces the implicit field-level reactivity of the original UI with a
// plain publish/subscribe bus.
package notify

import (
	"sync"
	"time"
)

// Severity classifies a user-facing notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// DefaultDuration is the auto-dismiss duration when a caller passes zero.
const DefaultDuration = 3 * time.Second

// Notification is a transient user-facing message.
type Notification struct {
	Message  string
	Severity Severity
	Duration time.Duration
}

// Event topics.
const (
	TopicNotification = "notification"  // payload: Notification
	TopicStateChanged = "state.changed" // payload: string (store name)
	TopicAuthExpired  = "auth.expired"  // payload: nil
)

// Event is one published occurrence on the bus.
type Event struct {
	Topic   string
	Payload any
}

// Handler receives events for a subscribed topic.
type Handler func(Event)

// Bus is a synchronous in-process publish/subscribe dispatcher. Handlers
// run on the publisher's goroutine, matching the cooperative single-writer
// model the stores assume.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]Handler)}
}

// Subscribe registers a handler for topic and returns an unsubscribe func.
func (b *Bus) Subscribe(topic string, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// Publish delivers the event to every handler subscribed to its topic.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	ev := Event{Topic: topic, Payload: payload}
	for _, h := range handlers {
		h(ev)
	}
}
